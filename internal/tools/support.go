package tools

const (
	vocabMCQs       = "Vocabulary MCQs"
	vocabWordMaps   = "Word Maps"
	vocabFrames     = "Sentence Frames"
	vocabActivities = "Vocabulary Activities"
)

func supportTools() []*Tool {
	return []*Tool{
		{
			Name:        "Vocabulary Focus",
			Category:    CategorySupport,
			Description: "Build vocabulary practice in one of four formats.",
			ResultTitle: "Generated Vocabulary Resources",
			Fields: []Field{
				required(listField("vocabulary", "Enter vocabulary words (comma-separated)", "e.g., photosynthesis, ecosystem, habitat, predator")),
				selectField("grade_level", "Grade Level", gradeBands),
				languageField(),
				selectField("output_type", "Output Type", []string{vocabMCQs, vocabWordMaps, vocabFrames, vocabActivities}),
			},
			snapshot: []string{"vocabulary", "grade_level", "output_type", "language"},
			variant:  "output_type",
			sources: map[string]string{
				vocabMCQs: `
You are an MCQ generator for {{.grade_level}} students. Create vocabulary MCQs in {{.language}} for these words: {{join .vocabulary}}

1. Include definition, synonym, and usage questions
2. Format response:
   Q: [Question]
   A: [Option A] | [Option B] | [Option C] | [Option D]
   Correct: [Letter]
   Explanation: [Brief rationale]
   Concepts: [Comma-separated concepts]

Example:
Q: What does "photosynthesis" mean?
A: Plant growth | Light-to-energy | Water process | Gas exchange
Correct: B
Explanation: Photosynthesis changes light energy to chemical energy
Concepts: biology, energy
`,
				vocabWordMaps: `
Create detailed word maps for these vocabulary terms: {{join .vocabulary}}

For each word in {{.language}}, provide:
1. Word: [vocabulary word]
2. Definition: [simple, grade-appropriate definition for {{.grade_level}}]
3. Synonyms: [2-3 synonyms]
4. Antonyms: [2-3 antonyms if applicable]
5. Examples: [2-3 concrete examples]
6. Non-examples: [1-2 non-examples to clarify meaning]
7. Visual cue: [brief description of an image that represents the word]
8. Use in a sentence: [example sentence appropriate for {{.grade_level}}]
9. Word parts: [prefix, root, suffix if applicable]

Format each word map clearly with headings and bullet points.
`,
				vocabFrames: `
Create sentence frames for {{.grade_level}} students to practice using these vocabulary words: {{join .vocabulary}}

For each word in {{.language}}, provide:
1. Basic sentence frame (simple usage)
2. Intermediate sentence frame (more complex usage)
3. Advanced sentence frame (critical thinking)
4. Question frame (to prompt discussion)
5. Comparison frame (to compare concepts)

Each frame should have blanks for students to fill in, but should guide them to use the vocabulary word correctly.

Example for "ecosystem":
Basic: An ecosystem includes living things such as _______ and non-living things such as _______.
Intermediate: In the _______ ecosystem, _______ are producers because they _______.
Advanced: When _______ happens in an ecosystem, it affects _______ because _______.
Question: How might the _______ in this ecosystem be affected if _______?
Comparison: The _______ ecosystem is different from the _______ ecosystem because _______.
`,
				vocabActivities: `
Create 5 engaging vocabulary activities for {{.grade_level}} students to learn these words: {{join .vocabulary}}

Each activity in {{.language}} should:
1. Have a clear title and purpose
2. Include step-by-step instructions
3. Specify materials needed
4. Include examples of how to use the vocabulary words
5. Be appropriate for {{.grade_level}} students
6. Take 10-15 minutes to complete

Include a mix of individual, pair, and group activities that address different learning styles (visual, auditory, kinesthetic).
Each activity should deeply engage students with the meaning and usage of the vocabulary words.
`,
			},
		},
		{
			Name:        "Text Proofreader",
			Category:    CategorySupport,
			Description: "Give feedback and corrections on a piece of writing.",
			ResultTitle: "Proofreading Results",
			Fields: []Field{
				truncated(required(areaField("original_text", "Text to Proofread", "Paste student writing or your text here..."))),
				selectField("grade_level", "Grade/Writing Level", gradeCollege),
				multiField("focus_areas", "Focus Areas",
					[]string{"Grammar", "Spelling", "Punctuation", "Sentence Structure", "Vocabulary", "Clarity", "Organization", "Style"},
					[]string{"Grammar", "Spelling", "Punctuation"}),
				selectField("feedback_tone", "Feedback Tone", []string{"Supportive", "Direct", "Academic", "Detailed", "Simplified"}),
				languageField(),
			},
			snapshot: []string{"original_text", "grade_level", "focus_areas", "feedback_tone"},
			sources: map[string]string{"": `
Proofread the following text in {{.language}} as if it were written by a {{.grade_level}} student.
Use a {{.feedback_tone}} tone in your feedback.

Focus particularly on these areas: {{join .focus_areas}}

Text to proofread:
---
{{.original_text}}
---

Please provide:
1. An overall assessment of the writing (2-3 sentences)
2. Specific corrections for errors (clearly mark what needs to be changed)
3. Positive feedback on strengths (at least 2 points)
4. Suggestions for improvement (2-3 specific, actionable suggestions)
5. A revised/corrected version of the text

Format your response clearly with sections for each type of feedback.
`},
		},
		{
			Name:        "IEP Goal Responder",
			Category:    CategorySupport,
			Description: "Draft SMART IEP goals with benchmarks and supports.",
			ResultTitle: "Generated IEP Goals",
			Fields: []Field{
				truncated(required(areaField("student_needs", "Student Needs/Challenges", "Describe the student's specific needs, challenges, or areas for development..."))),
				selectField("grade_level", "Grade Level", gradeBands),
				multiField("subject_areas", "Subject/Skill Areas",
					[]string{"Reading", "Writing", "Mathematics", "Science", "Social Skills", "Communication", "Executive Function", "Motor Skills", "Behavior", "Self-Regulation"},
					[]string{"Reading", "Writing"}),
				selectField("time_frame", "Time Frame", []string{"Quarter", "Semester", "School Year"}),
				languageField(),
				areaField("current_levels", "Current Performance Levels (Optional)", "Describe what the student can currently do in these areas..."),
			},
			snapshot: []string{"student_needs", "grade_level", "subject_areas", "time_frame"},
			sources: map[string]string{"": `
Create Individualized Education Program (IEP) goals in {{.language}} for a {{.grade_level}} student with the following needs:

Student Needs/Challenges:
{{.student_needs}}
{{with .current_levels}}
Current Performance Levels:
{{.}}
{{end}}
Generate 1-2 SMART goals for each of these areas: {{join .subject_areas}}
Each goal should be designed for a {{.time_frame}} time frame.

For each goal, include:
1. The SMART goal statement (Specific, Measurable, Achievable, Relevant, Time-bound)
2. 2-3 specific benchmarks or short-term objectives that lead to the goal
3. Suggested accommodations or modifications to support the goal
4. 2-3 specific strategies that educators and parents can use to support progress
5. Ideas for measuring and documenting progress

Format each goal clearly with headings and bullet points.
`},
		},
		{
			Name:        "Standards Unpacker",
			Category:    CategorySupport,
			Description: "Break a curriculum standard into skills, I-can statements and assessments.",
			ResultTitle: "Unpacked Standard",
			Fields: []Field{
				truncated(required(areaField("standard_text", "Standard Text", "Paste the educational standard or learning objective here..."))),
				selectField("subject", "Subject Area", []string{"Mathematics", "English Language Arts", "Science", "Social Studies", "Arts", "Physical Education", "Technology", "Other"}),
				selectField("grade_level", "Grade Level", gradeBands),
				selectField("curriculum_framework", "Curriculum Framework (if applicable)", []string{"General", "Common Core", "NGSS", "IGCSE", "IB", "National Curriculum", "Other"}),
				languageField(),
			},
			snapshot: []string{"standard_text", "subject", "grade_level", "curriculum_framework"},
			sources: map[string]string{"": `
Unpack the following {{.subject}} educational standard for {{.grade_level}} students from the {{.curriculum_framework}} framework. Provide your analysis in {{.language}}.

Standard:
{{.standard_text}}

Please provide:
1. A simplified explanation of what this standard means (teacher-friendly language)
2. A breakdown of the key skills and knowledge students need to demonstrate
3. The prerequisite knowledge/skills students should have before addressing this standard
4. 3-4 clear "I can" statements that students could use to understand the standard
5. 2-3 ways to assess mastery of this standard
6. At least 3 specific instructional strategies or activities that would help teach this standard
7. Potential challenges students might face in mastering this standard and how to address them
8. How this standard connects to previous and future learning in the curriculum

Format your response in clear sections with headings for easy reference.
`},
		},
		{
			Name:        "Image Generator",
			Category:    CategorySupport,
			Description: "Write prompts for image generation tools like Adobe Firefly, DALL-E, or Midjourney.",
			ResultTitle: "Image Generation Prompt",
			Fields: []Field{
				required(textField("subject", "Subject/Concept", "e.g., photosynthesis, water cycle, division, historical event")),
				selectField("image_type", "Image Type", []string{"Diagram", "Illustration", "Infographic", "Chart/Graph", "Comic/Cartoon", "Timeline", "Map", "Process Flow"}),
				selectField("style", "Visual Style", []string{"Simple/Clear", "Colorful/Engaging", "Realistic", "Cartoon", "Minimalist", "Hand-drawn", "Technical", "3D"}),
				selectField("audience", "Target Audience", []string{"Early Elementary", "Upper Elementary", "Middle School", "High School", "College", "Adult Learners"}),
				selectField("purpose", "Educational Purpose", []string{"Explain Concept", "Compare/Contrast", "Show Process", "Visualize Data", "Engage Interest", "Assessment", "Review"}),
				areaField("specific_elements", "Specific Elements to Include", "e.g., labels, arrows, specific parts or steps"),
			},
			snapshot: []string{"subject", "image_type", "style", "audience", "purpose"},
			sources: map[string]string{"": `
Create a detailed prompt that can be used with image generation AI tools like DALL-E, Midjourney, or Adobe Firefly to create an educational image.

The prompt should describe:
1. An educational {{.image_type}} about {{.subject}}
2. In a {{.style}} visual style
3. Appropriate for {{.audience}} students
4. Designed to {{.purpose}}
5. Including these specific elements: {{with .specific_elements}}{{.}}{{else}}clear labels and visual cues{{end}}

Provide:
1. A concise image generation prompt (1-3 sentences)
2. A detailed image generation prompt (paragraph with specifics)
3. A list of 3-5 suggestions for how to use this image in teaching
`},
		},
	}
}
