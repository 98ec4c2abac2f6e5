// Package analyzer implements the resume scoring pipeline: contact
// field extraction, skills matching, format and section analysis, ATS
// scoring and improvement suggestions.
package analyzer

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1?[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9-]+`)
)

// ExtractFields pulls contact details out of resume text. Missing
// fields come back as empty strings. The structured fields (summary,
// education, experience, projects, grouped skills) are returned empty;
// only contact details are extracted heuristically.
func ExtractFields(text string) types.ExtractedFields {
	return types.ExtractedFields{
		Name:       extractName(text),
		Email:      emailRe.FindString(text),
		Phone:      phoneRe.FindString(text),
		LinkedIn:   linkedinRe.FindString(text),
		GitHub:     githubRe.FindString(text),
		Education:  []types.EducationEntry{},
		Experience: []types.ExperienceEntry{},
		Projects:   []types.ProjectEntry{},
		Skills: types.SkillGroups{
			Technical: []string{},
			Soft:      []string{},
			Language:  []string{},
			Tool:      []string{},
		},
	}
}

// extractName returns the first non-blank line that looks like a name:
// no email, no phone number, no social profile mention.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		if phoneRe.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
			continue
		}
		return line
	}
	return ""
}
