package analyzer

import (
	"strings"

	"resumelens/internal/types"
)

const (
	pointsPerSection = 20
	baseFormatBonus  = 20
)

// AnalyzeFormat detects the standard resume sections and derives the
// section and format scores.
func AnalyzeFormat(text string) types.FormatAnalysis {
	lower := strings.ToLower(text)

	sections := types.SectionFlags{
		Summary:    containsAny(lower, "summary", "objective"),
		Experience: containsAny(lower, "experience", "work"),
		Education:  containsAny(lower, "education", "academic"),
		Skills:     containsAny(lower, "skills", "technologies"),
	}

	sectionScore := 0
	for _, present := range []bool{sections.Summary, sections.Experience, sections.Education, sections.Skills} {
		if present {
			sectionScore += pointsPerSection
		}
	}

	formatScore := sectionScore + baseFormatBonus
	if formatScore > 100 {
		formatScore = 100
	}

	return types.FormatAnalysis{
		Sections:     sections,
		SectionScore: sectionScore,
		FormatScore:  formatScore,
	}
}

func containsAny(lower string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
