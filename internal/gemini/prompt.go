package gemini

// instruction is the agent's standing instruction. It must not contain curly
// braces: the agent framework treats {name} as a session-state placeholder.
const instruction = `You are a resume parser. You read resume text and return the candidate's
career data as a single raw JSON object that follows the schema given in the request.
Base everything only on the provided text and never invent data.
Never wrap the JSON in markdown or add any text before or after it.`

const promptHeader = `Extract the following information from this resume text and return ONLY valid JSON.
If a section is not found, use an empty array [] or null.

Resume text:
`

const promptSchema = `

Return a JSON object with this exact structure:
{
    "experiences": [
        {
            "title": "Job Title",
            "company": "Company Name",
            "start_date": "YYYY-MM-DD or null",
            "end_date": "YYYY-MM-DD or null",
            "description": "Job description",
            "achievements": "Key achievements"
        }
    ],
    "educations": [
        {
            "institution": "School/University Name",
            "degree": "Degree Name",
            "start_date": "YYYY-MM-DD or null",
            "end_date": "YYYY-MM-DD or null",
            "description": "Additional details"
        }
    ],
    "skills": [
        "Skill 1",
        "Skill 2"
    ],
    "languages": [
        {
            "language": "Language Name",
            "level": "Proficiency Level (e.g., Native, Fluent, B2, etc.)"
        }
    ],
    "certifications": [
        {
            "name": "Certification Name",
            "issuer": "Issuing Organization",
            "date_obtained": "YYYY-MM-DD or null"
        }
    ],
    "projects": [
        {
            "name": "Project Name",
            "description": "Project description",
            "start_date": "YYYY-MM-DD or null",
            "end_date": "YYYY-MM-DD or null",
            "url": "Project URL or empty string",
            "technologies": "Technologies used",
            "role": "Role in project",
            "achievements": "Project achievements"
        }
    ]
}

Return ONLY the JSON object, no markdown, no code blocks, no explanations.`

// BuildPrompt embeds the resume text verbatim in the extraction request.
func BuildPrompt(resumeText string) string {
	return promptHeader + resumeText + promptSchema
}
