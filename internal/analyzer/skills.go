package analyzer

import (
	"math"
	"strings"

	"resumelens/internal/types"
)

// MatchSkills checks each required skill against the resume text with a
// case-insensitive substring search. Matched and missing preserve the
// order of the required list.
func MatchSkills(text string, required []string) types.SkillsMatch {
	lower := strings.ToLower(text)

	matched := []string{}
	missing := []string{}
	for _, skill := range required {
		if strings.Contains(lower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 0
	if len(required) > 0 {
		score = int(math.Round(100 * float64(len(matched)) / float64(len(required))))
	}

	return types.SkillsMatch{
		Matched: matched,
		Missing: missing,
		Score:   score,
	}
}
