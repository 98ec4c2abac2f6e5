package analyzer

import (
	"reflect"
	"testing"

	"resumelens/internal/types"
)

const sampleResume = `Jane Smith
jane.smith@example.com
(555) 123-4567
linkedin.com/in/janesmith

SUMMARY
Backend engineer with six years of experience building APIs.

EXPERIENCE
Backend Developer, Acme Corp
Built services in Python and Node.js backed by SQL and MongoDB.

EDUCATION
BSc Computer Science

SKILLS
Python, Node.js, SQL, MongoDB, Express.js
`

func devRole() types.RoleDefinition {
	return types.RoleDefinition{
		Category:    "Software Development",
		Role:        "Backend Developer",
		Description: "Develops server-side logic and APIs",
		Skills:      []string{"Node.js", "Python", "Java", "C#", "SQL", "MongoDB", "Express.js"},
	}
}

func TestAnalyze(t *testing.T) {
	result := Analyze(sampleResume, devRole())

	if result.Fields.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", result.Fields.Name, "Jane Smith")
	}
	if result.Fields.Email != "jane.smith@example.com" {
		t.Errorf("Email = %q", result.Fields.Email)
	}

	// 5 of 7 skills present: Node.js, Python, SQL, MongoDB, Express.js
	if result.SkillsMatch.Score != 71 {
		t.Errorf("skills score = %d, want 71", result.SkillsMatch.Score)
	}
	if len(result.SkillsMatch.Missing) != 2 {
		t.Errorf("missing = %v, want Java and C#", result.SkillsMatch.Missing)
	}

	if result.Format.SectionScore != 80 {
		t.Errorf("section score = %d, want 80", result.Format.SectionScore)
	}
	if result.Format.FormatScore != 100 {
		t.Errorf("format score = %d, want 100", result.Format.FormatScore)
	}

	if result.ATSScore != 100 {
		t.Errorf("ats score = %d, want 100", result.ATSScore)
	}
	if result.ResumeScore != result.ATSScore {
		t.Errorf("resume score %d should equal ats score %d before AI analysis", result.ResumeScore, result.ATSScore)
	}

	// round((100 + 71 + 100 + 80) / 4) = 88
	if result.OverallScore != 88 {
		t.Errorf("overall score = %d, want 88", result.OverallScore)
	}

	if len(result.Suggestions.Contact) != 0 {
		t.Errorf("unexpected contact suggestions: %v", result.Suggestions.Contact)
	}
	if len(result.Suggestions.Skills) != 1 {
		t.Errorf("expected one skills suggestion, got %v", result.Suggestions.Skills)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first := Analyze(sampleResume, devRole())
	second := Analyze(sampleResume, devRole())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyzeSparseResume(t *testing.T) {
	result := Analyze("just some text", devRole())

	if result.Fields.Name != "just some text" {
		t.Errorf("Name = %q", result.Fields.Name)
	}
	if result.SkillsMatch.Score != 0 {
		t.Errorf("skills score = %d, want 0", result.SkillsMatch.Score)
	}
	if result.Format.FormatScore != 20 {
		t.Errorf("format score = %d, want 20", result.Format.FormatScore)
	}
	if result.ATSScore != 20 {
		t.Errorf("ats score = %d, want 20", result.ATSScore)
	}
	if len(result.Suggestions.Contact) != 3 {
		t.Errorf("expected 3 contact suggestions, got %v", result.Suggestions.Contact)
	}
	if len(result.Suggestions.Format) != 4 {
		t.Errorf("expected 4 format suggestions, got %v", result.Suggestions.Format)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	role := devRole()
	for b.Loop() {
		Analyze(sampleResume, role)
	}
}
