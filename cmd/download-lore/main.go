// Command download-lore fetches fighter bio pages and writes lore drafts
// as JSONL for manual review before they enter the fighter table. Each
// input line is a URL optionally followed by the fighter's name:
//
//	https://example.com/fighters/ana-silva Ana Silva
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const maxBodyBytes = 2 << 20

// loreDraft is one fetched page, ready for editing into fighter lore.
type loreDraft struct {
	FighterName string    `json:"fighter_name"`
	URL         string    `json:"url"`
	FetchedAt   time.Time `json:"fetched_at"`
	Text        string    `json:"text"`
}

func main() {
	var (
		input   = flag.String("input", "", "Path to the URL list file (required)")
		output  = flag.String("output", "testdata/lore/drafts.jsonl", "Output JSONL path")
		maxText = flag.Int("max-text", 4000, "Truncate extracted text to this many characters")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	entries, err := readURLList(*input)
	if err != nil {
		log.Fatalf("read url list: %v", err)
	}
	if len(entries) == 0 {
		log.Fatal("no urls found")
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	outFile, err := os.Create(*output)
	if err != nil {
		log.Fatal("Failed to create output file:", err)
	}
	defer outFile.Close()

	encoder := json.NewEncoder(outFile)
	downloaded := 0

	for _, entry := range entries {
		text, err := fetchVisibleText(entry.url)
		if err != nil {
			log.Printf("Failed to fetch %s: %v", entry.url, err)
			continue
		}
		if len(text) > *maxText {
			text = text[:*maxText]
		}

		draft := loreDraft{
			FighterName: entry.name,
			URL:         entry.url,
			FetchedAt:   time.Now().UTC(),
			Text:        text,
		}
		if err := encoder.Encode(draft); err != nil {
			log.Printf("Failed to encode draft: %v", err)
			continue
		}

		downloaded++
		// Be nice to the source sites
		time.Sleep(200 * time.Millisecond)
	}

	log.Printf("Downloaded %d/%d pages to %s", downloaded, len(entries), *output)
}

type urlEntry struct {
	url  string
	name string
}

func readURLList(path string) ([]urlEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []urlEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		entry := urlEntry{url: fields[0]}
		if len(fields) > 1 {
			entry.name = strings.Join(fields[1:], " ")
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

func fetchVisibleText(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return extractText(string(body)), nil
}

// extractText returns the visible text of an HTML document, skipping
// script and style subtrees and collapsing runs of whitespace.
func extractText(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
