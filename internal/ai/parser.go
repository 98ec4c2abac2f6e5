package ai

import (
	"regexp"
	"strconv"
	"strings"

	"resumelens/internal/types"
)

var scoreRe = regexp.MustCompile(`(?i)(?:score|rating|grade)[:\s]*(\d{1,3})`)

var (
	strengthsHeadingRe  = regexp.MustCompile(`(?i)strengths?`)
	weaknessesHeadingRe = regexp.MustCompile(`(?i)(?:weaknesses?|areas for improvement)`)

	strengthsTerminatorRe  = regexp.MustCompile(`(?i)(?:weaknesses?|areas for improvement|recommendations)`)
	weaknessesTerminatorRe = regexp.MustCompile(`(?i)(?:recommendations|strengths?)`)
)

// ParseCritique extracts structured data from free-form model
// feedback. A score of -1 means no score label was found; callers fall
// back to the ATS score. Recommendations are kept in the raw feedback
// only; no reliable heading format has emerged for them yet.
func ParseCritique(feedback string) types.AIAnalysis {
	analysis := types.AIAnalysis{
		Score:           -1,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
		RawFeedback:     feedback,
	}

	if m := scoreRe.FindStringSubmatch(feedback); m != nil {
		if score, err := strconv.Atoi(m[1]); err == nil {
			analysis.Score = score
		}
	}

	analysis.Strengths = extractBullets(feedback, strengthsHeadingRe, strengthsTerminatorRe)
	analysis.Weaknesses = extractBullets(feedback, weaknessesHeadingRe, weaknessesTerminatorRe)

	return analysis
}

// extractBullets returns the bulleted lines between a section heading
// and the next terminating heading (or end of text).
func extractBullets(feedback string, heading, terminator *regexp.Regexp) []string {
	loc := heading.FindStringIndex(feedback)
	if loc == nil {
		return []string{}
	}

	section := feedback[loc[1]:]
	if end := terminator.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}

	bullets := []string{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isBulletLine(line) {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

func isBulletLine(line string) bool {
	if strings.Contains(line, "•") {
		return true
	}
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}
