package vocab

// Shared theme vocabulary used by both fighters and content. Wide and
// deliberately permissive: trigger matching is plain substring containment,
// so false positives from word overlap are accepted in exchange for recall.
var sharedThemes = []ThemeEntry{
	// Combat and fighting style
	{"aggression", []string{"aggressive", "relentless", "overwhelming", "barrage", "assault", "furious", "intense", "combat", "ceaseless", "unending", "constant pressure"}},
	{"precision", []string{"precise", "surgical", "methodical", "calculated", "accurate", "technical", "skilled", "disciplined", "deadly accuracy", "surgical precision"}},
	{"strategy", []string{"strategic", "tactical", "smart", "calculated", "game plan", "intelligent", "cunning", "clever", "tactical brilliance", "strategic approach"}},
	{"brutal_power", []string{"brutal", "devastating", "crushing", "overpowering", "destructive", "savage", "ruthless", "merciless"}},
	{"technical_mastery", []string{"technical", "masterful", "skilled", "expert", "proficient", "polished", "refined", "crafted"}},
	{"explosive_speed", []string{"explosive", "lightning", "rapid", "swift", "quick", "fast", "blazing", "sudden"}},
	{"pressure_fighting", []string{"pressure", "forward", "pressing", "advancing", "pushing", "overwhelming", "relentless pressure"}},
	{"counter_striking", []string{"counter", "counter-striker", "reactive", "waiting", "patient", "opportunistic", "counter-attack"}},

	// Narrative arcs and story types
	{"underdog", []string{"underdog", "comeback", "against odds", "overcame", "defied expectations", "unlikely", "surprise", "underestimated"}},
	{"redemption", []string{"redemption", "second chance", "returned", "bounced back", "make amends", "forgiven", "renewed", "rebirth"}},
	{"rivalry", []string{"rival", "competition", "faced", "battled", "opponent", "challenge", "confrontation", "enemy", "nemesis"}},
	{"triumph", []string{"champion", "victory", "dominated", "won", "success", "conquer", "achievement", "glory", "conquered"}},
	{"struggle", []string{"struggled", "hardship", "difficulty", "challenged", "obstacle", "adversity", "trial", "tribulation", "hardship"}},
	{"legacy", []string{"legacy", "career", "veteran", "experienced", "heritage", "tradition", "history", "legend", "veteran savvy"}},
	{"survival", []string{"survived", "endured", "persevered", "persist", "escape", "endurance", "resilience", "toughness", "endured"}},
	{"rise_to_glory", []string{"rising", "emerging", "ascending", "climbing", "progress", "development", "growth", "breakthrough", "climbing"}},
	{"fall_from_grace", []string{"fallen", "decline", "downfall", "lost", "defeated", "broken", "crushed", "fallen champion"}},
	{"revenge", []string{"revenge", "vengeance", "avenge", "retaliation", "payback", "retribution", "settle the score"}},
	{"proving_grounds", []string{"proving", "test", "trial", "challenge", "demonstrate", "show", "establish", "validate"}},
	{"master_apprentice", []string{"master", "apprentice", "student", "teacher", "mentor", "learning", "teaching", "passing knowledge"}},

	// Emotional and psychological states
	{"determination", []string{"determined", "focused", "driven", "committed", "dedicated", "persistent", "unwavering", "single-minded"}},
	{"resilience", []string{"resilient", "tough", "durable", "unyielding", "unbreakable", "strong", "hardy", "indomitable"}},
	{"courage", []string{"courage", "brave", "fearless", "bold", "daring", "valiant", "heroic", "gallant", "fearless"}},
	{"discipline", []string{"disciplined", "controlled", "composed", "calm", "steady", "measured", "restrained", "composed"}},
	{"rage", []string{"rage", "fury", "anger", "wrath", "furious", "enraged", "incensed", "livid"}},
	{"calm_under_pressure", []string{"calm", "composed", "steady", "unflappable", "cool", "collected", "unshaken"}},
	{"mental_toughness", []string{"mental toughness", "fortitude", "grit", "resolve", "willpower", "strength of mind"}},
	{"vulnerability", []string{"vulnerable", "exposed", "weak", "fragile", "susceptible", "open", "defenseless"}},

	// Social and relationship dynamics
	{"brotherhood", []string{"team", "together", "loyal", "unit", "bond", "alliance", "partnership", "fellowship", "brotherhood"}},
	{"leadership", []string{"leader", "captain", "guided", "command", "mentor", "influence", "authority", "inspiration", "leads"}},
	{"isolation", []string{"alone", "solitary", "independent", "lone", "isolated", "self-reliant", "autonomous", "loner"}},
	{"betrayal", []string{"betrayed", "betrayal", "treachery", "deception", "backstab", "disloyal", "treason", "double-cross"}},
	{"loyalty", []string{"loyal", "faithful", "devoted", "dedicated", "committed", "allegiance", "fidelity"}},
	{"rivalry_turned_respect", []string{"respect", "mutual respect", "honor", "acknowledgment", "recognition", "worthy opponent"}},
	{"family_legacy", []string{"family", "heritage", "lineage", "bloodline", "ancestry", "generations", "family tradition"}},

	// Physical attributes
	{"power", []string{"powerful", "forceful", "strong", "mighty", "dominant", "overpowering", "crushing", "devastating power"}},
	{"speed", []string{"fast", "quick", "swift", "rapid", "lightning", "explosive", "agile", "nimble", "blazing speed"}},
	{"endurance", []string{"endurance", "stamina", "lasting", "durable", "persistent", "long-lasting", "sustained", "cardio"}},
	{"versatility", []string{"versatile", "adaptable", "flexible", "well-rounded", "diverse", "multi-faceted", "complete", "all-around"}},
	{"physical_dominance", []string{"dominant", "overpowering", "imposing", "commanding", "overwhelming", "superior"}},
	{"size_advantage", []string{"tall", "large", "big", "imposing", "massive", "giant", "towering"}},
	{"speed_advantage", []string{"quick", "fast", "agile", "nimble", "lightning-fast", "blur", "speed demon"}},
	{"reach_advantage", []string{"reach", "long arms", "extended", "range", "distance control", "reach advantage"}},

	// Mental and tactical approaches
	{"patience", []string{"patient", "waiting", "biding", "methodical", "careful", "deliberate", "thoughtful", "patient approach"}},
	{"instinct", []string{"instinct", "intuitive", "natural", "innate", "inborn", "gut feeling", "reactive", "natural instinct"}},
	{"innovation", []string{"innovative", "creative", "unconventional", "unique", "original", "novel", "experimental", "creative approach"}},
	{"calculated_risk", []string{"calculated", "risk", "gamble", "bold move", "strategic risk", "daring play"}},
	{"adaptability", []string{"adapt", "adjust", "modify", "change", "evolve", "flexible", "versatile", "adapts"}},
	{"game_planning", []string{"game plan", "strategy", "tactical", "planned", "prepared", "strategic approach"}},

	// Conflict and resolution
	{"conflict", []string{"conflict", "struggle", "battle", "war", "fight", "clash", "confrontation", "dispute", "combat"}},
	{"resolution", []string{"resolution", "solution", "resolve", "conclusion", "ending", "settlement", "closure", "resolution"}},
	{"transformation", []string{"transformed", "changed", "evolved", "metamorphosis", "growth", "development", "shift", "evolution"}},
	{"unfinished_business", []string{"unfinished", "unresolved", "pending", "outstanding", "remaining", "left to do"}},
	{"decisive_moment", []string{"decisive", "critical", "pivotal", "turning point", "moment of truth", "crucial"}},

	// Values and morality
	{"honor", []string{"honor", "honorable", "dignity", "integrity", "respect", "noble", "principled", "code of honor"}},
	{"justice", []string{"justice", "fair", "righteous", "moral", "ethical", "right", "correct", "just"}},
	{"sacrifice", []string{"sacrifice", "sacrificed", "gave up", "forfeited", "surrendered", "yielded", "self-sacrifice"}},
	{"corruption", []string{"corrupt", "corruption", "dishonest", "unethical", "immoral", "unscrupulous"}},
	{"redemption_through_struggle", []string{"redemption", "atone", "make amends", "redeem", "forgiveness", "second chance"}},

	// Time and journey
	{"journey", []string{"journey", "path", "road", "quest", "adventure", "voyage", "expedition", "pilgrimage", "road traveled"}},
	{"destiny", []string{"destiny", "fate", "destined", "meant to be", "predetermined", "inevitable", "written in the stars"}},
	{"past", []string{"past", "history", "memories", "remembered", "former", "previous", "old", "back in the day"}},
	{"future", []string{"future", "ahead", "coming", "next", "forward", "prospect", "potential", "what lies ahead"}},
	{"present_moment", []string{"now", "present", "current", "moment", "here and now", "living in the moment"}},

	// Career and achievement
	{"championship_quest", []string{"championship", "title", "belt", "crown", "champion", "title shot", "championship run"}},
	{"comeback_story", []string{"comeback", "return", "come back", "resurgence", "revival", "returning", "back in action"}},
	{"rookie_rise", []string{"rookie", "newcomer", "debut", "first", "beginning", "starting out", "fresh"}},
	{"veteran_wisdom", []string{"veteran", "experienced", "seasoned", "wise", "knowledgeable", "been there", "seen it all"}},
	{"peak_performance", []string{"peak", "prime", "best", "top form", "at their best", "peak performance"}},
	{"decline", []string{"decline", "fading", "past prime", "slowing", "diminishing", "waning"}},

	// Fighting style specific narratives
	{"volume_striker_narrative", []string{"volume", "output", "strikes per minute", "relentless", "overwhelming", "constant pressure"}},
	{"precision_striker_narrative", []string{"precision", "accuracy", "surgical", "calculated", "methodical", "precise"}},
	{"grappler_narrative", []string{"grappling", "ground", "takedown", "submission", "mat work", "ground control"}},
	{"knockout_artist", []string{"knockout", "ko", "finish", "stoppage", "lights out", "put to sleep"}},
	{"decision_fighter", []string{"decision", "points", "judges", "scorecards", "unanimous", "split"}},
	{"finisher", []string{"finish", "end", "conclude", "stop", "terminate", "put away"}},

	// Additional narrative themes
	{"hometown_hero", []string{"hometown", "local", "hometown hero", "hometown favorite", "local legend"}},
	{"immigrant_story", []string{"immigrant", "immigration", "came to", "moved to", "from another country"}},
	{"college_athlete", []string{"college", "university", "collegiate", "ncaa", "college wrestling", "college football"}},
	{"military_background", []string{"military", "army", "navy", "marines", "air force", "served", "veteran"}},
	{"street_fighting", []string{"street", "underground", "backyard", "bare knuckle", "street fighting"}},
	{"martial_arts_lineage", []string{"lineage", "master", "grandmaster", "tradition", "martial arts family"}},
	{"injury_comeback", []string{"injury", "injured", "recovery", "rehab", "came back from injury", "recovered"}},
	{"weight_class_journey", []string{"weight", "cutting weight", "weight class", "moved up", "moved down"}},
	{"coaching_philosophy", []string{"coach", "training", "camp", "gym", "team", "training camp"}},
	{"family_support", []string{"family", "parents", "wife", "children", "kids", "supportive family"}},
	{"financial_struggle", []string{"struggle", "poverty", "poor", "money", "financial", "worked", "job"}},
	{"early_losses", []string{"early", "started", "began", "first fights", "early career"}},
	{"title_contender", []string{"contender", "ranked", "top", "number one", "championship"}},
	{"gatekeeper", []string{"gatekeeper", "test", "prove", "challenger", "established"}},
	{"fan_favorite", []string{"fan", "popular", "beloved", "favorite", "crowd favorite"}},
	{"controversial", []string{"controversy", "controversial", "trash talk", "outspoken", "polarizing"}},
	{"quiet_professional", []string{"quiet", "humble", "professional", "respectful", "soft-spoken"}},
	{"showman", []string{"showman", "entertainer", "personality", "charismatic", "showmanship"}},
	{"training_partner", []string{"training partner", "sparring", "helped train", "training with"}},
	{"late_bloomer", []string{"late", "older", "started late", "began late", "later in life"}},
	{"early_prodigy", []string{"young", "prodigy", "started young", "early start", "child"}},
	{"cross_training", []string{"cross training", "multiple disciplines", "various arts", "diverse training"}},
	{"specialist", []string{"specialist", "specialized", "expert in", "master of", "focused on"}},
	{"well_rounded", []string{"well rounded", "complete", "versatile", "all around", "diverse"}},

	// Content and story themes shared across both domains
	{"competition", []string{"competition", "compete", "competitive", "tournament", "championship", "contest", "match"}},
	{"family", []string{"family", "familial", "parent", "child", "sibling", "brother", "sister", "mother", "father"}},
	{"friendship", []string{"friendship", "friend", "friends", "companionship", "buddy", "ally", "companion"}},
	{"romance", []string{"romance", "romantic", "love", "relationship", "dating", "couple", "partner"}},
	{"adventure", []string{"adventure", "adventurous", "quest", "journey", "exploration", "expedition"}},
	{"mystery", []string{"mystery", "mysterious", "secret", "hidden", "unknown", "puzzle", "enigma"}},
	{"thriller", []string{"thriller", "thrilling", "suspense", "tense", "edge of seat", "nail-biting"}},
	{"comedy", []string{"comedy", "comic", "funny", "humor", "humorous", "laugh", "joke"}},
	{"drama", []string{"drama", "dramatic", "emotional", "intense", "serious", "powerful"}},
	{"action", []string{"action", "action-packed", "exciting", "thrilling", "fast-paced", "intense"}},
	{"horror", []string{"horror", "horrifying", "scary", "frightening", "terrifying", "fear"}},
	{"sci_fi", []string{"science fiction", "sci-fi", "futuristic", "space", "technology", "alien"}},
	{"fantasy", []string{"fantasy", "magical", "magic", "supernatural", "mythical", "legendary"}},
	{"western", []string{"western", "cowboy", "frontier", "wild west", "ranch", "outlaw"}},
	{"crime", []string{"crime", "criminal", "heist", "robbery", "gang", "mafia", "underworld"}},
	{"war", []string{"war", "warfare", "battle", "military", "soldier", "combat", "conflict"}},
	{"sports", []string{"sports", "athletic", "game", "match", "team", "player", "competition"}},
	{"biography", []string{"biography", "biographical", "life story", "true story", "based on"}},
	{"documentary", []string{"documentary", "real", "factual", "non-fiction"}},
	{"superhero", []string{"superhero", "superheroes", "powers", "superhuman", "hero", "villain"}},
	{"coming_of_age", []string{"coming of age", "growing up", "maturation", "youth", "teenage"}},
	{"road_trip", []string{"road trip", "journey", "travel", "adventure", "on the road"}},
	{"heist", []string{"heist", "robbery", "steal", "thief", "criminal", "caper"}},
	{"revenge_tale", []string{"revenge", "vengeance", "retaliation", "payback", "settle score"}},
	{"survival_story", []string{"survival", "survive", "endure", "persevere", "overcome"}},
	{"fish_out_of_water", []string{"fish out of water", "out of place", "unfamiliar", "new environment"}},
	{"buddy_cop", []string{"buddy cop", "partners", "duo", "team up", "partnership"}},
	{"found_family", []string{"found family", "chosen family", "adoptive", "unlikely family"}},
	{"time_travel", []string{"time travel", "time machine", "past", "future", "temporal"}},
	{"parallel_universe", []string{"parallel universe", "alternate reality", "multiverse", "dimension"}},
	{"post_apocalyptic", []string{"post-apocalyptic", "apocalypse", "aftermath", "ruins", "survival"}},
	{"dystopian", []string{"dystopian", "dystopia", "oppressive", "totalitarian", "future society"}},
	{"utopian", []string{"utopian", "utopia", "perfect", "ideal", "paradise"}},
	{"space_opera", []string{"space opera", "space", "galaxy", "starship", "cosmic"}},
	{"cyberpunk", []string{"cyberpunk", "cyber", "hacker", "digital", "virtual", "neon"}},
	{"steampunk", []string{"steampunk", "steam", "victorian", "industrial", "mechanical"}},
	{"noir", []string{"noir", "film noir", "dark", "gritty", "detective", "mystery"}},
	{"romantic_comedy", []string{"romantic comedy", "rom-com", "romance", "comedy", "love story"}},
	{"musical", []string{"musical", "music", "song", "dance", "singing", "performance"}},
	{"historical", []string{"historical", "history", "period piece", "era", "past"}},
	{"contemporary", []string{"contemporary", "modern", "present day", "current", "today"}},
	{"period_drama", []string{"period drama", "historical drama", "period piece", "era"}},
	{"courtroom", []string{"courtroom", "legal", "lawyer", "trial", "judge", "jury"}},
	{"medical", []string{"medical", "doctor", "hospital", "medicine", "health", "surgery"}},
	{"educational", []string{"educational", "learning", "teach", "education", "school"}},
	{"inspirational", []string{"inspirational", "inspiring", "motivational", "uplifting", "encouraging"}},
	{"heartwarming", []string{"heartwarming", "touching", "emotional", "sweet", "tender"}},
	{"tearjerker", []string{"tearjerker", "sad", "emotional", "crying", "touching"}},
	{"uplifting", []string{"uplifting", "positive", "hopeful", "encouraging", "inspiring"}},
	{"dark", []string{"dark", "darkness", "grim", "bleak", "somber", "serious"}},
	{"lighthearted", []string{"lighthearted", "light", "fun", "cheerful", "bright", "happy"}},
	{"intense", []string{"intense", "intensity", "powerful", "strong", "forceful"}},
	{"subtle", []string{"subtle", "understated", "gentle", "quiet", "soft"}},
	{"epic", []string{"epic", "grand", "large scale", "sweeping", "vast", "massive"}},
	{"intimate", []string{"intimate", "personal", "close", "small scale"}},
	{"ensemble", []string{"ensemble", "multiple characters", "group", "cast", "many"}},
	{"character_study", []string{"character study", "character driven", "focused", "deep"}},
	{"plot_driven", []string{"plot driven", "story focused", "narrative", "action"}},
	{"atmospheric", []string{"atmospheric", "mood", "tone", "ambiance", "feeling"}},
	{"visually_stunning", []string{"visually stunning", "beautiful", "cinematic", "stunning"}},
	{"dialogue_heavy", []string{"dialogue heavy", "talkative", "conversation", "speech"}},
	{"minimal_dialogue", []string{"minimal dialogue", "quiet", "visual", "silent"}},
	{"fast_paced", []string{"fast paced", "quick", "rapid", "swift", "brisk"}},
	{"slow_burn", []string{"slow burn", "gradual", "slow", "methodical", "patient"}},
	{"non_linear", []string{"non-linear", "out of order", "flashback", "time jumps"}},
	{"linear", []string{"linear", "chronological", "order", "sequence", "timeline"}},
	{"experimental", []string{"experimental", "avant-garde", "unconventional", "unique"}},
	{"traditional", []string{"traditional", "classic", "conventional", "standard"}},
	{"subversive", []string{"subversive", "challenging", "rebellious", "defiant"}},
	{"mainstream", []string{"mainstream", "popular", "commercial", "accessible"}},
	{"indie", []string{"indie", "independent", "small", "artistic", "creative"}},
	{"blockbuster", []string{"blockbuster", "big budget", "major", "large scale"}},
	{"cult_classic", []string{"cult classic", "cult", "niche", "dedicated fans"}},
	{"award_winner", []string{"award winner", "acclaimed", "prized", "honored"}},
	{"underrated", []string{"underrated", "overlooked", "hidden gem", "unsung"}},
	{"overrated", []string{"overrated", "hyped", "overhyped", "disappointing"}},
	{"nostalgic", []string{"nostalgic", "nostalgia", "remember", "past", "memory"}},
	{"futuristic", []string{"futuristic", "future", "ahead", "forward", "tomorrow"}},
	{"retro", []string{"retro", "vintage", "old", "classic", "throwback"}},
	{"modern", []string{"modern", "contemporary", "current", "today", "now"}},
	{"timeless", []string{"timeless", "eternal", "enduring", "classic", "evergreen"}},
	{"dated", []string{"dated", "old", "outdated", "past", "obsolete"}},
	{"relevant", []string{"relevant", "current", "topical", "timely", "now"}},
	{"escapist", []string{"escapist", "escape", "fantasy", "getaway", "retreat"}},
	{"realistic", []string{"realistic", "real", "true to life", "authentic", "genuine"}},
	{"surreal", []string{"surreal", "dreamlike", "unreal", "fantastical", "bizarre"}},
	{"grounded", []string{"grounded", "realistic", "down to earth", "practical"}},
	{"fantastical", []string{"fantastical", "fantasy", "magical", "unreal", "wondrous"}},
	{"gritty", []string{"gritty", "rough", "harsh", "tough", "raw"}},
	{"polished", []string{"polished", "smooth", "refined", "elegant", "sophisticated"}},
	{"raw", []string{"raw", "unfiltered", "honest", "real", "authentic"}},
	{"stylized", []string{"stylized", "artistic", "designed", "crafted", "aesthetic"}},
	{"naturalistic", []string{"naturalistic", "natural", "real", "authentic", "genuine"}},
	{"melodramatic", []string{"melodramatic", "dramatic", "over the top", "exaggerated"}},
	{"understated", []string{"understated", "subtle", "quiet", "restrained", "minimal"}},
	{"complex", []string{"complex", "complicated", "layered", "multifaceted", "intricate"}},
	{"simple", []string{"simple", "straightforward", "clear", "easy", "basic"}},
	{"deep", []string{"deep", "profound", "meaningful", "significant", "important"}},
	{"surface_level", []string{"surface level", "shallow", "superficial", "light"}},
	{"thought_provoking", []string{"thought provoking", "provocative", "challenging", "stimulating"}},
	{"mindless", []string{"mindless", "simple", "easy", "light", "entertaining"}},
	{"challenging", []string{"challenging", "difficult", "complex", "demanding", "hard"}},
	{"accessible", []string{"accessible", "easy", "simple", "clear", "understandable"}},
	{"niche", []string{"niche", "specialized", "specific", "targeted", "focused"}},
	{"universal", []string{"universal", "broad", "general", "wide", "all"}},
	{"mature", []string{"mature", "adult", "serious", "grown up", "sophisticated"}},
	{"family_friendly", []string{"family friendly", "all ages", "suitable", "appropriate"}},
	{"adult", []string{"adult", "mature", "grown up", "serious", "sophisticated"}},
	{"youth_focused", []string{"youth focused", "young", "teen", "adolescent", "juvenile"}},
	{"all_ages", []string{"all ages", "everyone", "universal", "family", "general"}},
}

// Genre expansion: each genre maps to several related themes, applied for
// every genre on the row.
var genreThemes = map[string][]string{
	"action":      {"action", "aggression", "power", "courage", "explosive_speed", "intense", "fast_paced"},
	"drama":       {"drama", "deep", "complex", "thought_provoking", "emotional", "intense"},
	"comedy":      {"comedy", "lighthearted", "uplifting", "accessible", "family_friendly"},
	"thriller":    {"thriller", "suspense", "intense", "challenging", "dark"},
	"sci-fi":      {"sci_fi", "futuristic", "space_opera", "innovation", "fantastical"},
	"horror":      {"horror", "dark", "gritty", "intense", "challenging"},
	"fantasy":     {"fantasy", "fantastical", "escapist", "adventure"},
	"western":     {"western", "historical", "gritty", "raw", "legacy", "survival"},
	"crime":       {"crime", "mystery", "dark", "gritty", "corruption"},
	"sports":      {"sports", "competition", "rivalry", "triumph", "determination"},
	"family":      {"family", "family_friendly", "all_ages", "heartwarming", "uplifting"},
	"adventure":   {"adventure", "journey", "quest", "exploration"},
	"romance":     {"romance", "romantic_comedy", "heartwarming", "uplifting"},
	"mystery":     {"mystery", "suspense", "thriller", "challenging"},
	"war":         {"war", "conflict", "brotherhood", "survival", "courage"},
	"biography":   {"biography", "realistic", "grounded", "deep", "thought_provoking"},
	"documentary": {"documentary", "realistic", "grounded", "thought_provoking"},
	"musical":     {"musical", "uplifting", "heartwarming", "lighthearted"},
	"superhero":   {"superhero", "action", "courage", "justice", "power"},
	"historical":  {"historical", "period_drama", "legacy", "past"},
}

// Type expansion: ordered and exclusive, the first matching rule wins.
var typeThemes = []TypeRule{
	{[]string{"sports"}, []string{"competition", "rivalry", "triumph", "struggle", "determination", "resilience", "championship_quest"}},
	{[]string{"action"}, []string{"aggression", "conflict", "power", "courage", "explosive_speed", "pressure_fighting", "intense"}},
	{[]string{"drama"}, []string{"struggle", "transformation", "redemption", "journey", "deep", "complex", "thought_provoking"}},
	{[]string{"western"}, []string{"legacy", "survival", "honor", "justice", "historical", "gritty", "raw"}},
	{[]string{"comedy"}, []string{"comedy", "lighthearted", "uplifting", "accessible", "family_friendly"}},
	{[]string{"thriller"}, []string{"thriller", "suspense", "intense", "challenging", "dark"}},
	{[]string{"sci-fi", "science fiction"}, []string{"sci_fi", "futuristic", "space_opera", "innovation", "fantastical"}},
	{[]string{"horror"}, []string{"horror", "dark", "gritty", "intense", "challenging"}},
	{[]string{"fantasy"}, []string{"fantasy", "fantastical", "escapist", "adventure"}},
	{[]string{"crime"}, []string{"crime", "mystery", "dark", "gritty", "corruption", "justice"}},
	{[]string{"documentary"}, []string{"documentary", "realistic", "grounded", "thought_provoking", "deep"}},
	{[]string{"reality"}, []string{"competition", "rivalry", "survival", "realistic"}},
}

// Archetype expansion shared by content and fighters.
var archetypeThemes = map[string][]string{
	"warrior":   {"aggression", "courage", "competition", "power", "knockout_artist", "finisher"},
	"protector": {"courage", "justice", "honor", "leadership", "discipline"},
	"survivor":  {"survival", "resilience", "determination", "endurance", "pressure_fighting"},
	"leader":    {"leadership", "brotherhood", "power", "determination", "discipline", "mental_toughness"},
	"underdog":  {"underdog", "struggle", "resilience", "proving_grounds", "pressure_fighting"},
	"veteran":   {"veteran_wisdom", "legacy", "mature", "experience", "calm_under_pressure"},
	"prodigy":   {"rookie_rise", "rise_to_glory", "youth_focused", "speed", "explosive_speed"},
	"rebel":     {"rebel", "defiance", "innovation", "nonconformist", "adaptability"},
	"mentor":    {"master_apprentice", "leadership", "wisdom", "teaching", "veteran_wisdom"},
	"loner":     {"isolation", "independence", "self_reliance", "adaptability"},
}

// Description pattern rules applied to content descriptions, each
// independently.
var descriptionRules = []PatternRule{
	{Any: []string{"family", "parent", "child", "sibling", "brother", "sister"}, Themes: []string{"family", "family_support", "brotherhood", "loyalty"}},
	{Any: []string{"young", "teen", "teenager", "youth", "adolescent"}, Themes: []string{"youth_focused", "coming_of_age", "rookie_rise"}},
	{Any: []string{"old", "veteran", "experienced", "seasoned", "elder"}, Themes: []string{"veteran_wisdom", "legacy", "mature"}},
	{Any: []string{"fight", "battle", "war", "combat", "conflict"}, Themes: []string{"conflict", "aggression", "competition", "rivalry"}},
	{Any: []string{"journey", "quest", "adventure", "travel", "road"}, Themes: []string{"journey", "adventure", "road_trip"}},
	{Any: []string{"mystery", "secret", "hidden", "unknown"}, Themes: []string{"mystery", "unfinished_business"}},
	{Any: []string{"love", "romance", "relationship", "dating"}, Themes: []string{"romance", "friendship"}},
	{Any: []string{"comedy", "funny", "humor", "laugh"}, Themes: []string{"comedy", "lighthearted", "uplifting"}},
	{Any: []string{"dark", "grim", "bleak", "serious", "intense"}, Themes: []string{"dark", "gritty", "intense", "challenging"}},
	{Any: []string{"hero", "heroic", "save", "protect", "defend"}, Themes: []string{"courage", "heroic", "protector", "justice"}},
	{Any: []string{"revenge", "vengeance", "avenge", "payback"}, Themes: []string{"revenge", "revenge_tale", "rivalry"}},
	{Any: []string{"redemption", "forgive", "second chance", "return"}, Themes: []string{"redemption", "redemption_through_struggle", "comeback_story"}},
	{Any: []string{"underdog", "unlikely", "against odds", "surprise"}, Themes: []string{"underdog", "proving_grounds"}},
	{Any: []string{"champion", "victory", "win", "triumph", "success"}, Themes: []string{"triumph", "championship_quest", "peak_performance"}},
	{Any: []string{"survive", "endure", "persevere", "overcome"}, Themes: []string{"survival", "survival_story", "resilience", "determination"}},
	{Any: []string{"transform", "change", "evolve", "grow"}, Themes: []string{"transformation", "rise_to_glory", "journey"}},
	{Any: []string{"betray", "treachery", "deception", "backstab"}, Themes: []string{"betrayal", "corruption"}},
	{Any: []string{"team", "together", "united", "group"}, Themes: []string{"brotherhood", "friendship", "found_family"}},
	{Any: []string{"alone", "isolated", "lonely", "solitary"}, Themes: []string{"isolation", "loner"}},
	{Any: []string{"future", "futuristic", "sci-fi", "space", "technology"}, Themes: []string{"sci_fi", "futuristic", "space_opera", "future"}},
	{Any: []string{"past", "historical", "period", "era", "ancient"}, Themes: []string{"historical", "period_drama", "past"}},
	{Any: []string{"fantasy", "magic", "magical", "supernatural"}, Themes: []string{"fantasy", "fantastical", "escapist"}},
	{Any: []string{"thriller", "suspense", "tense", "edge"}, Themes: []string{"thriller", "intense", "challenging"}},
	{Any: []string{"horror", "scary", "frightening", "terrifying"}, Themes: []string{"horror", "dark", "gritty"}},
}

// Title rules: hardcoded franchise and keyword associations, each
// independently applicable ("star trek" and "trek" both fire on the same
// title).
var titleRules = []PatternRule{
	{Any: []string{"star trek"}, Themes: []string{"sci_fi", "space_opera", "brotherhood", "adventure", "exploration"}},
	{Any: []string{"trek"}, Themes: []string{"journey", "adventure", "quest"}},
	{Any: []string{"gun", "maverick"}, Themes: []string{"action", "courage", "rebel", "determination"}},
	{Any: []string{"yellowstone", "1883", "1923"}, Themes: []string{"western", "family_legacy", "survival", "historical"}},
	{Any: []string{"ncis"}, Themes: []string{"crime", "mystery", "brotherhood", "justice"}},
	{Any: []string{"halo"}, Themes: []string{"sci_fi", "action", "war", "competition"}},
	{Any: []string{"godfather"}, Themes: []string{"crime", "family_legacy", "betrayal", "power"}},
	{Any: []string{"mission"}, Themes: []string{"action", "adventure", "thriller", "competition"}},
	{Any: []string{"avatar"}, Themes: []string{"sci_fi", "fantasy", "adventure", "transformation"}},
	{Any: []string{"survivor"}, Themes: []string{"competition", "survival", "strategy", "rivalry"}},
	{Any: []string{"nfl", "football"}, Themes: []string{"sports", "competition", "rivalry", "triumph"}},
	{Any: []string{"ufc", "fight"}, Themes: []string{"sports", "competition", "aggression", "rivalry", "triumph"}},
}

// Lore pattern rules applied to fighter lore on top of vocabulary
// extraction.
var loreRules = []PatternRule{
	{Any: []string{"overwhelms", "barrage", "relentless"}, Themes: []string{"aggression", "pressure_fighting"}},
	{Any: []string{"surgical", "precision", "accurate"}, Themes: []string{"precision", "technical_mastery"}},
	{Any: []string{"ground", "takedown", "grappling"}, Themes: []string{"grappler_narrative", "strategy"}},
	{Any: []string{"hunt", "target"}, All: []string{"head"}, Themes: []string{"knockout_artist", "courage"}},
	{Any: []string{"veteran", "experienced", "years old"}, Themes: []string{"veteran_wisdom", "legacy"}},
	{Any: []string{"young"}, Themes: []string{"rookie_rise", "rise_to_glory"}},
	{Any: []string{"just"}, All: []string{"years old"}, Themes: []string{"rookie_rise", "rise_to_glory"}},
	{Any: []string{"comeback", "returned", "bounced back"}, Themes: []string{"comeback_story", "resilience"}},
	{Any: []string{"champion", "championship"}, Themes: []string{"championship_quest", "triumph"}},
}

// Archetype keyword tables. Content descriptions use the short table, lore
// uses the wider fighter-specific one.
var contentArchetypes = []ArchetypeEntry{
	{"warrior", []string{"warrior", "fighter", "soldier", "champion"}},
	{"protector", []string{"protector", "guardian", "defender"}},
	{"survivor", []string{"survivor", "endures", "survived"}},
	{"leader", []string{"leader", "captain", "commands"}},
	{"underdog", []string{"underdog", "unlikely", "against odds"}},
	{"veteran", []string{"veteran", "experienced", "seasoned"}},
	{"prodigy", []string{"prodigy", "talented", "gifted"}},
	{"rebel", []string{"rebel", "rebellious", "defiant"}},
	{"mentor", []string{"mentor", "teacher", "coach"}},
	{"loner", []string{"alone", "solitary", "independent"}},
}

var fighterArchetypes = []ArchetypeEntry{
	{"warrior", []string{"warrior", "fighter", "combatant", "soldier", "champion", "gladiator"}},
	{"protector", []string{"protector", "guardian", "defender", "shield", "safeguard", "protects", "defending"}},
	{"survivor", []string{"survivor", "endures", "perseveres", "endured", "survived", "survives", "endurance"}},
	{"leader", []string{"leader", "captain", "guides", "commands", "leads", "leading", "leadership"}},
	{"underdog", []string{"underdog", "against odds", "unlikely", "underestimated", "overcame", "defied"}},
	{"veteran", []string{"veteran", "experienced", "seasoned", "old guard", "veteran savvy", "been there"}},
	{"prodigy", []string{"prodigy", "talented", "gifted", "natural", "phenomenon", "rising star", "young talent"}},
	{"rebel", []string{"rebel", "rebellious", "defiant", "nonconformist", "maverick", "rebellion"}},
	{"mentor", []string{"mentor", "teacher", "coach", "instructor", "guide", "teaching", "coaching"}},
	{"loner", []string{"alone", "solitary", "independent", "lone", "isolated", "self-reliant", "lone wolf"}},
	{"hunter", []string{"hunter", "hunts", "seeks", "pursues", "targets", "hunting", "head-hunting"}},
	{"guardian", []string{"guardian", "protects", "defends", "safeguards", "shields", "guards"}},
	{"challenger", []string{"challenger", "challenges", "tests", "proves", "demonstrates", "challenging"}},
	{"phoenix", []string{"phoenix", "rises", "rebirth", "reborn", "resurrected", "renewed"}},
	{"tactician", []string{"tactical", "strategic", "calculating", "planner", "strategist", "tactician", "game plan"}},
	{"berserker", []string{"berserker", "furious", "rage", "fury", "uncontrolled", "wild", "savage", "relentless"}},
	{"samurai", []string{"samurai", "honor", "code", "discipline", "bushido", "honorable"}},
	{"gladiator", []string{"gladiator", "arena", "combat", "battle", "warrior", "fighter"}},
	{"outlaw", []string{"outlaw", "renegade", "rogue", "outcast", "exile", "banished"}},
	{"noble", []string{"noble", "honorable", "dignified", "principled", "upright", "righteous"}},
}

var defaultTable = func() *Table {
	t := newTable(sharedThemes)
	t.GenreThemes = genreThemes
	t.TypeThemes = typeThemes
	t.ArchetypeThemes = archetypeThemes
	t.DescriptionRules = descriptionRules
	t.TitleRules = titleRules
	t.LoreRules = loreRules
	t.ContentArchetypes = contentArchetypes
	t.FighterArchetypes = fighterArchetypes
	return t
}()
