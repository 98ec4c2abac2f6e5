package analyzer

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var atsPhoneRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

const longResumeThreshold = 500

// ATSScore estimates how well applicant tracking systems would parse
// the resume. It starts from the format score and awards bonuses for
// parseable contact details, a phone number, enough content and an
// experience section. The experience check is case sensitive; the
// section detection in AnalyzeFormat is not, so a resume with an
// upper-cased EXPERIENCE heading earns the section points without the
// ATS bonus.
func ATSScore(text string, format types.FormatAnalysis) int {
	score := format.FormatScore

	if strings.Contains(text, "@") && strings.Contains(text, ".com") {
		score += 10
	}
	if atsPhoneRe.MatchString(text) {
		score += 10
	}
	if len(text) > longResumeThreshold {
		score += 10
	}
	if strings.Contains(text, "experience") || strings.Contains(text, "work") {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
