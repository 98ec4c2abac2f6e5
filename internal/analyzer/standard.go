package analyzer

import (
	"math"

	"resumelens/internal/types"
)

// Analyze runs the full standard pipeline over extracted resume text
// for a given role. The resume score equals the ATS score until AI
// analysis replaces it.
func Analyze(text string, role types.RoleDefinition) types.AnalysisResult {
	fields := ExtractFields(text)
	match := MatchSkills(text, role.Skills)
	format := AnalyzeFormat(text)
	ats := ATSScore(text, format)

	overall := int(math.Round(
		float64(ats+match.Score+format.FormatScore+format.SectionScore) / 4,
	))

	return types.AnalysisResult{
		Fields:       fields,
		SkillsMatch:  match,
		Format:       format,
		ATSScore:     ats,
		ResumeScore:  ats,
		OverallScore: overall,
		Suggestions:  BuildSuggestions(fields, match, format.Sections),
	}
}
