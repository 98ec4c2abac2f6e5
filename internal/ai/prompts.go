package ai

import (
	"fmt"
	"strings"
)

// DefaultSystemPrompt is the system instruction sent with critique
// requests unless overridden by configuration.
const DefaultSystemPrompt = `You are an expert resume reviewer and career coach with deep knowledge of:

- Resume structure, formatting and content best practices
- ATS (Applicant Tracking System) parsing and optimization
- Skills assessment against specific role requirements
- Hiring manager expectations across software, data and infrastructure roles

Ground every observation in the resume text you are given. Do not invent
experience, skills or qualifications the candidate does not claim.`

// DefaultCritiquePromptTemplate is the user prompt template for
// critique requests. Placeholders in order: role, category, role
// description, required skills, resume text, optional job description
// block.
const DefaultCritiquePromptTemplate = `Analyze this resume for a %s position in %s.

Role focus: %s
Required skills: %s

Resume:
%s

%sPlease provide a comprehensive analysis including:
1. Overall assessment (1-2 paragraphs)
2. Professional profile analysis
3. Skills analysis and match with job requirements
4. Experience analysis
5. Education analysis
6. Key strengths (bullet points)
7. Areas for improvement (bullet points)
8. ATS optimization assessment
9. Specific recommendations for improvement
10. Overall resume score (0-100)

Format your response with clear sections using ## headers.`

// BuildCritiquePrompt renders the user prompt for the given input.
func BuildCritiquePrompt(template string, input CritiqueInput) string {
	jobBlock := ""
	if input.JobDescription != "" {
		jobBlock = "Job description:\n" + input.JobDescription + "\n\n"
	}
	return fmt.Sprintf(template,
		input.Role.Role,
		input.Role.Category,
		input.Role.Description,
		formatSkills(input.Role.Skills),
		input.ResumeText,
		jobBlock,
	)
}

func formatSkills(skills []string) string {
	if len(skills) == 0 {
		return "none listed"
	}
	return strings.Join(skills, ", ")
}

// resolvePrompt selects the prompt string by priority: a prompt loaded
// from a file, a prompt defined in configuration, then the default.
func resolvePrompt(loadedFromFile, fromConfig, fromDefault string) string {
	if loadedFromFile != "" {
		return loadedFromFile
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fromDefault
}
