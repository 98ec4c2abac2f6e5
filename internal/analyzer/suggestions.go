package analyzer

import (
	"strings"

	"resumelens/internal/types"
)

// BuildSuggestions derives improvement advice from the extracted
// fields, the skills match and the detected sections. The summary,
// experience and education lists are populated only by AI analysis.
func BuildSuggestions(fields types.ExtractedFields, match types.SkillsMatch, sections types.SectionFlags) types.Suggestions {
	s := types.Suggestions{
		Contact:    []string{},
		Skills:     []string{},
		Format:     []string{},
		Summary:    []string{},
		Experience: []string{},
		Education:  []string{},
	}

	if fields.Email == "" {
		s.Contact = append(s.Contact, "Add your email address")
	}
	if fields.Phone == "" {
		s.Contact = append(s.Contact, "Add your phone number")
	}
	if fields.LinkedIn == "" {
		s.Contact = append(s.Contact, "Add your LinkedIn profile")
	}

	if len(match.Missing) > 0 {
		s.Skills = append(s.Skills, "Consider adding these skills: "+strings.Join(match.Missing, ", "))
	}

	if !sections.Summary {
		s.Format = append(s.Format, "Add a professional summary section")
	}
	if !sections.Experience {
		s.Format = append(s.Format, "Add a work experience section")
	}
	if !sections.Education {
		s.Format = append(s.Format, "Add an education section")
	}
	if !sections.Skills {
		s.Format = append(s.Format, "Add a skills section")
	}

	return s
}
