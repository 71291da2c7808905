package tools

// BloomLevel describes one level of Bloom's taxonomy with the question stems
// and response frames offered to students at that level.
type BloomLevel struct {
	Level          string `json:"level"`
	Description    string `json:"description"`
	QuestionStems  string `json:"question_stems"`
	ResponseFrames string `json:"response_frames"`
}

// BloomLevels is ordered as presented in the HOT Questions form.
var BloomLevels = []BloomLevel{
	{
		Level:          "REMEMBER",
		Description:    "Recall facts and basic concepts",
		QuestionStems:  "What is...? Where is...? When did...? What would you find...?",
		ResponseFrames: "It is... You would find this in/at...",
	},
	{
		Level:          "UNDERSTAND",
		Description:    "Explain ideas or concepts",
		QuestionStems:  "How would you explain...? What does this mean...? Can you give an example of...?",
		ResponseFrames: "I can explain this by... This means that...",
	},
	{
		Level:          "APPLY",
		Description:    "Use information in new situations",
		QuestionStems:  "How would you use...? How would you solve...? What would happen if...?",
		ResponseFrames: "I would use this by... To solve this I would...",
	},
	{
		Level:          "ANALYZE",
		Description:    "Draw connections among ideas",
		QuestionStems:  "Why did this happen...? What evidence shows...? How are these different...?",
		ResponseFrames: "This happened because... The evidence is... ___ is different from ___ because...",
	},
	{
		Level:          "CREATE",
		Description:    "Produce new or original work",
		QuestionStems:  "How could you make...? What would you design...? How could you adapt...?",
		ResponseFrames: "I could make this by... I would design ___ with...",
	},
	{
		Level:          "EVALUATE",
		Description:    "Justify a stand or decision",
		QuestionStems:  "Do you think this is good...? What would you choose...? Why is this method best...?",
		ResponseFrames: "I think this is good/bad because... I would choose ___ because...",
	},
}

// LookupBloom returns the taxonomy entry for level.
func LookupBloom(level string) (BloomLevel, bool) {
	for _, b := range BloomLevels {
		if b.Level == level {
			return b, true
		}
	}
	return BloomLevel{}, false
}

func bloomLevelNames() []string {
	names := make([]string, len(BloomLevels))
	for i, b := range BloomLevels {
		names[i] = b.Level
	}
	return names
}

// StrategyCategories lists the lesson phases in plan order.
var StrategyCategories = []string{"Starter", "Instruction", "Assessment", "Dialogic", "Consolidation"}

// Strategies holds the teaching strategies a lesson plan samples from.
var Strategies = map[string][]string{
	"Starter": {
		"Show an image related to the topic and ask students to describe what they see.",
		"Use a mnemonic to help students remember key vocabulary words.",
		"Have students act out a key concept using gestures (Total Physical Response).",
		"Use real objects or pictures to introduce the vocabulary in context.",
		"Ask a thought-provoking question to activate prior knowledge.",
	},
	"Instruction": {
		"Use word mapping: Define, give examples, and create connections.",
		"Use sentence frames: Students complete structured sentences using new words.",
		"Create a comic strip incorporating key vocabulary in context.",
		"Collaborative storytelling: Each student adds a sentence using a target word.",
		"Read a short, engaging passage and ask students to identify key vocabulary words.",
	},
	"Assessment": {
		"Quickfire Q&A: Students explain a word in pairs in 30 seconds.",
		"Exit Ticket: Students write a sentence using a key word.",
		"Create a mind map linking words to related concepts.",
		"Match words with definitions in a timed challenge.",
		"Fill-in-the-blank using words from the lesson.",
	},
	"Dialogic": {
		"Turn & Talk: In pairs, students explain a word in their own words.",
		"Think-Pair-Share: Discuss how they'd use the word in real life.",
		"Role-play: Students use key words in a real-world scenario.",
		"Socratic questioning and Socratic circles: Encourage discussion and critical thinking.",
		"Pose-pause-bounce-pounce: Build on peer ideas collaboratively.",
	},
	"Consolidation": {
		"Summarize the lesson in three key words and explain why.",
		"Draw a picture representing the meaning of a key word.",
		"Word Ladder: Change one letter at a time to form new words.",
		"Vocabulary Bingo: Call definitions, students mark words.",
		"Create a KWL Chart (What I Know, What I Want to Know, What I Learned).",
	},
}
