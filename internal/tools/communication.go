package tools

func communicationTools() []*Tool {
	return []*Tool{
		{
			Name:        "Prompt Builder",
			Category:    CategoryCommunication,
			Description: "Assemble a reusable AI prompt from role, outcome and audience.",
			ResultTitle: "Your AI Prompt",
			Local:       true,
			Fields: []Field{
				required(textField("role", "AI Role (e.g., science teacher, language tutor)", "Enter the role for the AI")),
				required(textField("outcome", "Desired Outcome (e.g., lesson plan, quiz, explanation)", "What do you want the AI to create?")),
				required(textField("audience", "Target Audience (e.g., 5th grade students, ESL learners)", "Who is this for?")),
				textField("avoid", "Avoid (optional)", "What should the AI avoid?"),
				areaField("example", "Include Examples or Specific Instructions (optional)", "Any specific format, examples, or instructions?"),
			},
			snapshot: []string{"role", "outcome", "audience", "avoid", "example"},
			sources: map[string]string{"": `Act as a {{.role}}. to produce {{.outcome}}. for {{.audience}}{{with .avoid}}. Avoid: {{.}}{{end}}{{with .example}}. Include: {{.}}{{end}}.`},
		},
		{
			Name:        "Email Responder",
			Category:    CategoryCommunication,
			Description: "Draft a reply to a parent, student or colleague email.",
			ResultTitle: "Generated Email Response",
			Fields: []Field{
				selectField("email_scenario", "Email Scenario", []string{"Parent Concern/Complaint", "Parent Question", "Student Question/Request", "Administrator Communication", "Colleague Collaboration", "Event/Activity Planning", "Other"}),
				truncated(required(areaField("email_content", "Original Email/Context", "Paste the email you received or describe the situation..."))),
				selectField("response_tone", "Response Tone", []string{"Professional", "Supportive", "Firm but Kind", "Enthusiastic", "Formal", "Informative"}),
				multiField("include_elements", "Include Elements",
					[]string{"Greeting", "Acknowledgment", "Information/Answer", "Next Steps", "Resources", "Invitation for Follow-up", "Closing"},
					[]string{"Greeting", "Acknowledgment", "Information/Answer", "Closing"}),
				selectField("response_length", "Response Length", []string{"Brief (1-2 paragraphs)", "Standard (3-4 paragraphs)", "Detailed (5+ paragraphs)"}),
				languageField(),
				areaField("key_points", "Key Points to Include", "List specific points you want to address in your response..."),
			},
			snapshot: []string{"email_scenario", "email_content", "response_tone", "response_length"},
			sources: map[string]string{"": `
Generate a professional email response in {{.language}} for this {{.email_scenario}} scenario:

Original email/context:
---
{{.email_content}}
---

Key points to include:
{{with .key_points}}{{.}}{{else}}Respond appropriately to the email content provided.{{end}}

Write a {{.response_length}} response with a {{.response_tone}} tone.
Include these elements: {{join .include_elements}}

Guidelines:
1. Be professional, clear, and respectful
2. Address the specific concerns or questions raised
3. Maintain appropriate teacher-student or teacher-parent boundaries
4. Provide concrete information or next steps when appropriate
5. Avoid making promises that cannot be kept
6. Use language appropriate for the recipient

Format the email with appropriate spacing and structure.
`},
		},
		{
			Name:        "Email Template Maker",
			Category:    CategoryCommunication,
			Description: "Create newsletters, announcements and invitations for families.",
			ResultTitle: "Generated Email Template",
			Fields: []Field{
				selectField("email_type", "Email Type", []string{"Parent Newsletter", "Class Announcement", "Event Invitation", "Project Information", "Field Trip Details", "Classroom Updates", "Beginning of Year/Term", "End of Year/Term"}),
				selectField("grade_level", "Grade/Class Level", gradeBands),
				selectField("subject_area", "Subject Area (if applicable)", []string{"General", "Mathematics", "Language Arts", "Science", "Social Studies", "Arts", "Physical Education", "Multiple Subjects"}),
				selectField("communication_style", "Communication Style", []string{"Formal", "Conversational", "Enthusiastic", "Informative"}),
				languageField(),
				truncated(required(areaField("key_information", "Key Information to Include", "List the important details, dates, requirements, etc. to include..."))),
			},
			snapshot: []string{"email_type", "grade_level", "subject_area", "communication_style", "key_information"},
			sources: map[string]string{"": `
Create a {{.email_type}} email in {{.language}} for {{.grade_level}} {{.subject_area}} class using a {{.communication_style}} communication style.

Include the following key information:
{{.key_information}}

Guidelines:
1. Create a clear, attention-grabbing subject line
2. Use an appropriate greeting/introduction
3. Present information in a well-organized, easy-to-scan format
4. Include all necessary details (who, what, when, where, why, how)
5. Specify any actions recipients need to take and deadlines
6. Include contact information for questions or clarifications
7. End with an appropriate closing

Format the email with appropriate spacing, bullet points, and structure for easy reading.
`},
		},
		{
			Name:        "Song Generator",
			Category:    CategoryCommunication,
			Description: "Write a classroom song that teaches key concepts.",
			ResultTitle: "Generated Educational Song",
			Fields: []Field{
				required(textField("topic", "Educational Topic", "e.g., Water Cycle, Multiplication, Parts of Speech")),
				selectField("grade_level", "Grade Level", []string{"Early Childhood", "Primary (1-3)", "Primary (4-6)", "Secondary (7-9)", "Secondary (10-12)"}),
				selectField("song_style", "Song Style", []string{"Simple Rhyme", "Nursery Rhyme", "Rap/Hip-Hop", "Pop Song", "Folk Song", "Chant/Call and Response", "Parody of Known Song"}),
				selectField("song_length", "Song Length", []string{"Short (1 verse + chorus)", "Medium (2 verses + chorus)", "Full Song (3+ verses + chorus)"}),
				languageField(),
				areaField("key_concepts", "Key Concepts to Include", "List the important terms, facts, or concepts that should be in the song..."),
				textField("melody_note", "Melody Note (Optional)", "e.g., 'Sung to the tune of Twinkle Twinkle' or 'Original melody'"),
			},
			snapshot: []string{"topic", "grade_level", "song_style", "song_length", "key_concepts"},
			sources: map[string]string{"": `
Create an educational song in {{.language}} about {{.topic}} for {{.grade_level}} students.

Song specifications:
- Style: {{.song_style}}
- Length: {{.song_length}}
- Key concepts to include: {{with .key_concepts}}{{.}}{{else}}{{$.topic}}{{end}}
{{- with .melody_note}}
- Melody note: {{.}}{{end}}

The song should:
1. Be age-appropriate for {{.grade_level}} students
2. Contain accurate educational content about {{.topic}}
3. Use rhyme, rhythm, and repetition to aid memory
4. Be engaging and fun to sing/perform
5. Include movements or actions if appropriate

Format your response with:
1. A catchy title for the song
2. Lyrics clearly formatted with verses and chorus labeled
3. Performance notes (suggested movements, instruments, or teaching tips)
4. Brief explanation of how the song addresses key learning objectives
`},
		},
	}
}
