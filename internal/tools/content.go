package tools

func contentTools() []*Tool {
	lessonFields := []Field{
		required(textField("lesson_objective", "Lesson Objective", "e.g., Students will understand the water cycle")),
		required(textField("student_action", "Student Action", "e.g., create a diagram explaining each step of the water cycle")),
		numberField("duration", "Duration (minutes)", 30, 180, 5, 60),
		selectField("grade_level", "Grade Level", []string{"Primary 1-3", "Primary 4-6", "Secondary 1-3", "Secondary 4-5"}),
		selectField("subject", "Subject Area", []string{"Mathematics", "Science", "English/Language", "Geography", "History", "Art", "Music", "Physical Education", "Other"}),
		languageField(),
		multiField("resources", "Available Resources", []string{"Whiteboard", "Projector", "Computers", "Tablets", "Textbooks", "Worksheets", "Manipulatives", "Limited Resources"}, nil),
		multiField("activity_focus", "Activity Focus", []string{"Collaborative", "Individual", "Discussion", "Hands-on", "Digital", "Reading", "Writing"}, nil),
	}
	for _, category := range StrategyCategories {
		lessonFields = append(lessonFields, toggleField(strategyToggle(category), category, true))
	}

	return []*Tool{
		{
			Name:        "Text Generator",
			Category:    CategoryContent,
			Description: "Generate a reading passage pitched at a target Lexile level.",
			ResultTitle: "Generated Text",
			Metrics:     MetricsWordCount,
			Fields: []Field{
				numberField("lexile_score", "Lexile Score", 200, 1600, 50, 800),
				languageField(),
				selectField("subject", "Subject", []string{"Science", "History", "Literature", "Social Studies", "General Knowledge"}),
				selectField("text_type", "Text Type", []string{"Informational", "Narrative", "Persuasive", "Procedural", "Descriptive"}),
				listField("vocabulary", "Target Vocabulary (comma-separated)", "e.g., analyze, compare, evaluate, synthesize"),
				required(textField("topic", "Topic", "e.g., Water Cycle, American Revolution")),
			},
			snapshot: []string{"lexile_score", "topic", "subject", "text_type", "vocabulary"},
			enrich:   enrichReadability,
			sources: map[string]string{"": `
Generate a 250-300 word {{lower .text_type}} text about "{{.topic}}" in {{.language}} that:

1. Is appropriate for a Lexile level of {{.lexile_score}}
2. Is related to {{.subject}}
3. Follows these reading metrics:
{{- range .metrics}}
   - {{.}}
{{- end}}
{{with .vocabulary}}
4. Incorporates these vocabulary words: {{join .}}
{{end}}
The text should be engaging, accurate, and educational. Include a title for the text.
Ensure the content is age-appropriate and maintains a natural flow while adhering to the metrics.
`},
		},
		{
			Name:        "Text Rewriter",
			Category:    CategoryContent,
			Description: "Rewrite a text for a different reading level, style or purpose.",
			ResultTitle: "Rewritten Text",
			Metrics:     MetricsRewrite,
			Fields: []Field{
				truncated(required(areaField("original_text", "Original Text", "Paste the text you want to rewrite here..."))),
				selectField("reading_level", "Target Reading Level", []string{"Elementary (Grades 1-5)", "Middle School (Grades 6-8)", "High School (Grades 9-12)", "College", "Advanced"}),
				languageField(),
				selectField("style", "Writing Style", []string{"Simplified", "Academic", "Conversational", "Engaging", "Technical", "Creative"}),
				selectField("purpose", "Purpose", []string{"Instruction", "Explanation", "Retention", "Engagement", "Assessment"}),
			},
			snapshot: []string{"original_text", "reading_level", "style", "purpose"},
			sources: map[string]string{"": `
Rewrite the following text for {{.reading_level}} students in a {{.style}} style for {{.purpose}} purposes in {{.language}}:

---
{{.original_text}}
---

Guidelines:
1. Maintain the core meaning and key information
2. Adjust vocabulary and sentence complexity to match {{.reading_level}} level
3. Use {{.style}} tone and structure
4. Format the text to support {{.purpose}}
5. Ensure the rewritten text is clear, coherent, and effective for the target audience
`},
		},
		{
			Name:        "Academic Content",
			Category:    CategoryContent,
			Description: "Create structured classroom content on a topic.",
			ResultTitle: "Generated Academic Content",
			Fields: []Field{
				required(textField("topic", "Topic", "e.g., Photosynthesis, Civil Rights Movement")),
				selectField("content_type", "Content Type", []string{"Passage/Article", "Overview", "Definition", "Process Explanation", "Timeline", "Comparison", "Analysis", "Problem-Solution"}),
				selectField("grade_level", "Grade Level", gradeCollege),
				selectField("subject", "Subject", []string{"Science", "Mathematics", "History", "Geography", "Literature", "Arts", "Social Studies", "Economics", "Technology", "Languages"}),
				languageField(),
				listField("key_concepts", "Key Concepts to Include (comma-separated)", "e.g., light energy, chloroplasts, glucose, oxygen"),
			},
			snapshot: []string{"topic", "content_type", "grade_level", "subject", "key_concepts"},
			sources: map[string]string{"": `
Create an educational {{.content_type}} about "{{.topic}}" for {{.grade_level}} students in the subject of {{.subject}} in {{.language}}.
{{with .key_concepts}}
Include these key concepts: {{join .}}
{{end}}
Guidelines:
1. Ensure accuracy and educational value
2. Use age-appropriate language for {{.grade_level}} students
3. Structure the content clearly with appropriate subheadings
4. Include at least 3 key takeaways or main points
5. If relevant, include real-world applications or examples
6. Length should be appropriate for a classroom resource (300-500 words)

Format your response with a clear title, introduction, body with appropriate sections, and conclusion.
`},
		},
		{
			Name:        "Lesson Plan Generator",
			Category:    CategoryContent,
			Description: "Plan a timed lesson seeded with teaching strategies for each phase.",
			ResultTitle: "Generated Lesson Plan",
			Fields:      lessonFields,
			snapshot:    []string{"lesson_objective", "student_action", "duration", "grade_level", "subject"},
			enrich:      enrichStrategies,
			sources: map[string]string{"": `
You are an experienced {{.subject}} teacher. Create a detailed {{.duration}}-minute lesson plan for {{.grade_level}} students with this objective:

OBJECTIVE: {{.lesson_objective}}
STUDENT ACTION: {{.student_action}}
{{with .resources}}
Resources available: {{join .}}{{end}}{{with .activity_focus}}
Activity focus: {{join .}}{{end}}
{{with .strategies}}
Please incorporate and adapt these teaching strategies into your plan:
{{lines .}}
{{end}}
Format your lesson plan with these clear sections:
1. 📌 **Starter**: An engaging activity to begin the lesson (5-10 minutes)
2. 🧠 **Instruction**: How you'll present the main content (15-20 minutes)
3. 📝 **Assessment**: How you'll check understanding during the lesson
4. 🗣️ **Dialogic**: How students will discuss and engage with the content
5. ✅ **Consolidation**: How you'll summarize and conclude the lesson
6. 🚀 **S2S**: Suggestions for supporting struggling students and extending learning for advanced students

For each section, provide specific timings, detailed instructions, and necessary resources. The plan should be practical, easy to follow, and written in {{.language}}.
`},
		},
		{
			Name:        "Unit Plan Generator",
			Category:    CategoryContent,
			Description: "Outline a multi-week unit with assessments and differentiation.",
			ResultTitle: "Generated Unit Plan",
			Fields: []Field{
				required(textField("unit_title", "Unit Title", "e.g., Understanding Ecosystems")),
				selectField("subject", "Subject", []string{"Science", "Mathematics", "English/Language Arts", "Social Studies", "History", "Geography", "Art", "Music", "Physical Education", "Other"}),
				selectField("grade_level", "Grade Level", gradeBands),
				selectField("duration", "Unit Duration", []string{"1 week", "2 weeks", "3 weeks", "4 weeks", "6 weeks"}),
				languageField(),
				required(areaField("learning_objectives", "Learning Objectives/Standards", "List 3-5 key learning objectives or standards for this unit")),
				textField("key_resources", "Key Resources Available", "e.g., textbooks, lab equipment, computers, field trip opportunities"),
			},
			snapshot: []string{"unit_title", "subject", "grade_level", "duration", "learning_objectives"},
			sources: map[string]string{"": `
Create a comprehensive unit plan for "{{.unit_title}}" in {{.subject}} for {{.grade_level}} students that spans {{.duration}}. The unit plan should be in {{.language}}.

Learning Objectives:
{{.learning_objectives}}

Resources Available:
{{with .key_resources}}{{.}}{{else}}Standard classroom resources{{end}}

Include in the unit plan:

1. Unit Overview (big ideas and essential questions)
2. Sequence of 4-8 lesson topics with brief descriptions
3. Assessment Plan (formative and summative assessments)
4. Differentiation Strategies for diverse learners
5. Key vocabulary
6. Cross-curricular connections
7. Materials and resources needed

Format the unit plan clearly with headings and bullet points for easy reference.
`},
		},
	}
}
