package tools

func assessmentTools() []*Tool {
	return []*Tool{
		{
			Name:        "MCQ Generator",
			Category:    CategoryAssessment,
			Description: "Write multiple-choice questions for a reading age.",
			ResultTitle: "Generated Questions",
			Fields: []Field{
				required(textField("topic", "Main Topic", "e.g., Photosynthesis, World War II")),
				textField("keywords", "Key Words (comma-separated)", "e.g., chlorophyll, sunlight, glucose"),
				numberField("num_questions", "Number of Questions", 3, 10, 1, 5),
				numberField("reading_age", "Reading Age", 6, 18, 1, 10),
			},
			snapshot: []string{"topic", "keywords", "num_questions", "reading_age"},
			sources: map[string]string{"": `
You are an MCQ generator. Create {{.num_questions}} multiple-choice questions (MCQs) about "{{.topic}}" for children with a reading age of {{.reading_age}}.
{{with .keywords}}Use these keywords: {{.}}.
{{end}}Keep language simple and easy to understand, but still address the key concepts.

For each question, produce exactly the following lines:
Q: [Write a clear, simple question]
A: [Option A] | [Option B] | [Option C] | [Option D]
Correct: [One letter: A, B, C, or D]
Explanation: [Brief reason why the correct answer is correct]
Concepts: [Comma-separated main ideas or key words]

Important:
- Do NOT label your options inside the 'A:' line with A:, B:, C:, D:. Just separate them with " | ".
- Make sure every question has exactly 4 options.
- Ensure questions test understanding, not just recall.
- Use age-appropriate language for reading age {{.reading_age}}.
`},
		},
		{
			Name:        "HOT Questions",
			Category:    CategoryAssessment,
			Description: "Pose a higher-order thinking question at a chosen Bloom's level.",
			ResultTitle: "Generated HOT Question",
			Fields: []Field{
				required(textField("lesson_objective", "Lesson Objective", "e.g., Understand the causes of climate change")),
				selectField("bloom_level", "Bloom's Taxonomy Level", bloomLevelNames()),
				selectField("subject", "Subject", []string{"english", "math", "science", "other"}),
				selectField("complexity", "Complexity Level", []string{"primary", "lower_secondary", "upper_secondary", "igcse"}),
				languageField(),
			},
			snapshot: []string{"lesson_objective", "bloom_level", "subject", "complexity", "language"},
			enrich:   enrichBloom,
			sources: map[string]string{"": `
You are an AI assistant helping teachers create HOT questions.
Generate a **higher-order thinking (HOT) question** based on the following details:

- **Language**: {{.language}}
- **Lesson Objective**: {{.lesson_objective}}
- **Bloom's Taxonomy Level**: {{.bloom_level}}
- **Complexity Level**: {{.complexity}}

Use these question stems:
**{{.question_stems}}**

Use these sentence frames:
**{{.response_frames}}**

Include guidance for students using these strategies:
- Understand the question: Identify what the question is asking them to do (analyze, evaluate, compare, etc.)
- Break down the question: Separate complex questions into smaller parts
- Think critically: Analyze information closely and evaluate different perspectives
- Provide evidence: Support answers with specific examples or logical arguments
- Consider counterarguments: Acknowledge opposing viewpoints

### Generate the final HOT Question and at least **3 sentence stems** that would help students structure their answers. The question should match the complexity level.
**Respond in {{.language}} only.**

Format your response as:
Q: <Your HOT Question>
Stems:
1) <Sentence Stem 1>
2) <Sentence Stem 2>
3) <Sentence Stem 3>
`},
		},
		{
			Name:        "Text Dependent Questions",
			Category:    CategoryAssessment,
			Description: "Ask questions that send students back to a passage for evidence.",
			ResultTitle: "Generated Text-Dependent Questions",
			Fields: []Field{
				truncated(required(areaField("passage", "Passage/Text", "Paste the reading passage or text here..."))),
				selectField("grade_level", "Grade Level", gradeBands),
				numberField("num_questions", "Number of Questions", 3, 10, 1, 5),
				multiField("question_types", "Question Types",
					[]string{"Key Details", "Vocabulary in Context", "Text Structure", "Author's Purpose", "Inference", "Main Idea", "Evidence-Based"},
					[]string{"Key Details", "Vocabulary in Context", "Inference"}),
				languageField(),
			},
			snapshot: []string{"passage", "grade_level", "question_types", "num_questions"},
			sources: map[string]string{"": `
Create {{.num_questions}} text-dependent questions in {{.language}} for the following passage, appropriate for {{.grade_level}} students.
{{- with .question_types}}
Focus on these question types: {{join .}}.{{end}}

Passage:
---
{{.passage}}
---

For each question:
1. Clearly indicate the question type (e.g., Key Details, Inference, etc.)
2. Write a clear, focused question that requires students to refer back to the text
3. Provide the correct answer and cite specific text evidence that supports it
4. Include a brief explanation of why this is the correct answer

Format each question as follows:
[Question Type] Question: [The question]
Answer: [Correct answer]
Text Evidence: [Relevant quote or reference from the text]
Explanation: [Brief explanation]
`},
		},
		{
			Name:        "DOK Questions",
			Category:    CategoryAssessment,
			Description: "Generate questions across Depth of Knowledge levels.",
			ResultTitle: "Generated DOK Questions",
			Fields: []Field{
				required(textField("topic", "Topic/Content", "e.g., Fractions, Romeo and Juliet, Ecosystems")),
				selectField("subject", "Subject", []string{"Mathematics", "English Language Arts", "Science", "Social Studies", "History", "Other"}),
				selectField("grade_level", "Grade Level", gradeBands),
				multiField("dok_levels", "DOK Levels",
					[]string{"Level 1: Recall", "Level 2: Skills/Concepts", "Level 3: Strategic Thinking", "Level 4: Extended Thinking"},
					[]string{"Level 1: Recall", "Level 2: Skills/Concepts", "Level 3: Strategic Thinking"}),
				languageField(),
				areaField("standards", "Standards/Learning Objectives (Optional)", "List any specific standards or learning objectives to target"),
			},
			snapshot: []string{"topic", "subject", "grade_level", "dok_levels"},
			sources: map[string]string{"": `
Create Depth of Knowledge (DOK) questions in {{.language}} about {{.topic}} for {{.grade_level}} students in {{.subject}}.
{{with .standards}}
Target these standards/objectives: {{.}}
{{end}}
Generate 2 questions for each of these DOK levels: {{join .dok_levels}}

For each question:
1. Clearly indicate the DOK level
2. Write a clear, focused question appropriate for that DOK level
3. Provide sample answer(s) or success criteria
4. Include a brief explanation of why this question reflects its DOK level

DOK Level Descriptions:
- Level 1 (Recall): Recall of information, basic facts, definitions, simple procedures
- Level 2 (Skills/Concepts): Use information, conceptual knowledge, follow procedures, two or more steps
- Level 3 (Strategic Thinking): Reasoning, planning, using evidence, complex thinking, justification
- Level 4 (Extended Thinking): Complex reasoning, planning, developing, thinking, connecting ideas across content

Format each question clearly with headings for the DOK level, question, sample answer, and explanation.
`},
		},
		{
			Name:        "YouTube Video Questions",
			Category:    CategoryAssessment,
			Description: "Prepare before, during and after viewing questions for a video.",
			ResultTitle: "Generated Video Questions",
			Fields: []Field{
				textField("video_url", "YouTube Video URL", "e.g., https://www.youtube.com/watch?v=..."),
				required(textField("video_topic", "Video Topic/Title", "e.g., Photosynthesis Explained")),
				selectField("grade_level", "Grade Level", gradeBands),
				multiField("question_focus", "Question Focus",
					[]string{"Comprehension", "Analysis", "Application", "Prediction", "Evaluation", "Connection to Curriculum"},
					[]string{"Comprehension", "Analysis"}),
				numberField("num_questions", "Number of Questions", 3, 10, 1, 5),
				languageField(),
				areaField("learning_objectives", "Learning Objectives (Optional)", "What should students learn from this video?"),
			},
			snapshot: []string{"video_topic", "video_url", "grade_level", "question_focus", "num_questions"},
			sources: map[string]string{"": `
Create {{.num_questions}} questions in {{.language}} {{with .video_url}}based on the YouTube video at {{.}}{{else}}about {{$.video_topic}}{{end}} suitable for {{.grade_level}} students.
{{with .learning_objectives}}
Learning Objectives: {{.}}
{{end}}
Focus on these question types: {{join .question_focus}}

For each question:
1. Clearly indicate the question type (e.g., Comprehension, Analysis, etc.)
2. Write a clear, focused question that encourages students to engage with the video content
3. Provide sample answer(s) or criteria for successful responses

Include a mix of:
- Before viewing questions (to activate prior knowledge)
- During viewing questions (to maintain engagement)
- After viewing questions (to assess understanding and extend thinking)

Format each question with a clear indication of when it should be asked (before/during/after) and the question type.
`},
		},
	}
}
