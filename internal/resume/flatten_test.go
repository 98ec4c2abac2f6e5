package resume

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestFlatten(t *testing.T) {
	r := types.Resume{
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Phone:    "555-123-4567",
		LinkedIn: "linkedin.com/in/janesmith",
		Summary:  "Backend engineer.",
		Experience: []types.ExperienceEntry{
			{
				Title:       "Backend Developer",
				Company:     "Acme Corp",
				Duration:    "2020-2024",
				Description: []string{"Built APIs in Python", "Managed SQL databases"},
			},
		},
		Education: []types.EducationEntry{
			{Degree: "BSc Computer Science", Institution: "State University", Year: "2019"},
		},
		Skills: []string{"Python", "SQL", "Docker"},
	}

	text := Flatten(r)

	for _, want := range []string{
		"Jane Smith",
		"jane@example.com",
		"SUMMARY",
		"EXPERIENCE",
		"Backend Developer - Acme Corp (2020-2024)",
		"• Built APIs in Python",
		"EDUCATION",
		"BSc Computer Science - State University (2019)",
		"SKILLS",
		"Python, SQL, Docker",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("flattened text missing %q:\n%s", want, text)
		}
	}
}

func TestFlattenSkipsEmptySections(t *testing.T) {
	text := Flatten(types.Resume{Name: "Jane Smith"})

	if text != "Jane Smith" {
		t.Errorf("expected only the name, got:\n%q", text)
	}
	for _, header := range []string{"SUMMARY", "EXPERIENCE", "EDUCATION", "SKILLS"} {
		if strings.Contains(text, header) {
			t.Errorf("unexpected %s header in:\n%s", header, text)
		}
	}
}

func TestFlattenEmptyResume(t *testing.T) {
	if got := Flatten(types.Resume{}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
