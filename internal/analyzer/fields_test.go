package analyzer

import "testing"

func TestExtractFields(t *testing.T) {
	tests := []struct {
		name string
		text string
		want struct {
			name, email, phone, linkedin, github string
		}
	}{
		{
			name: "complete header",
			text: "Jane Smith\njane.smith@example.com\n(555) 123-4567\nlinkedin.com/in/janesmith\ngithub.com/janesmith\n\nSUMMARY\nBackend engineer.",
			want: struct{ name, email, phone, linkedin, github string }{
				name:     "Jane Smith",
				email:    "jane.smith@example.com",
				phone:    "(555) 123-4567",
				linkedin: "linkedin.com/in/janesmith",
				github:   "github.com/janesmith",
			},
		},
		{
			name: "name after contact lines",
			text: "jane@example.com\n555-123-4567\nJane Smith\nSkills: Go",
			want: struct{ name, email, phone, linkedin, github string }{
				name:  "Jane Smith",
				email: "jane@example.com",
				phone: "555-123-4567",
			},
		},
		{
			name: "mixed case profile urls",
			text: "Jane Smith\nLinkedIn.COM/in/jane-smith\nGitHub.com/jane-smith",
			want: struct{ name, email, phone, linkedin, github string }{
				name:     "Jane Smith",
				linkedin: "LinkedIn.COM/in/jane-smith",
				github:   "GitHub.com/jane-smith",
			},
		},
		{
			name: "no qualifying name line",
			text: "jane@example.com\nlinkedin.com/in/jane",
			want: struct{ name, email, phone, linkedin, github string }{
				email:    "jane@example.com",
				linkedin: "linkedin.com/in/jane",
			},
		},
		{
			name: "empty text",
			text: "",
			want: struct{ name, email, phone, linkedin, github string }{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFields(tt.text)
			if got.Name != tt.want.name {
				t.Errorf("Name = %q, want %q", got.Name, tt.want.name)
			}
			if got.Email != tt.want.email {
				t.Errorf("Email = %q, want %q", got.Email, tt.want.email)
			}
			if got.Phone != tt.want.phone {
				t.Errorf("Phone = %q, want %q", got.Phone, tt.want.phone)
			}
			if got.LinkedIn != tt.want.linkedin {
				t.Errorf("LinkedIn = %q, want %q", got.LinkedIn, tt.want.linkedin)
			}
			if got.GitHub != tt.want.github {
				t.Errorf("GitHub = %q, want %q", got.GitHub, tt.want.github)
			}
		})
	}
}

func TestExtractFieldsStructuredPlaceholders(t *testing.T) {
	got := ExtractFields("Jane Smith\njane@example.com")

	if got.Portfolio != "" {
		t.Errorf("Portfolio = %q, want empty", got.Portfolio)
	}
	if got.Summary != "" {
		t.Errorf("Summary = %q, want empty", got.Summary)
	}
	if got.Education == nil || len(got.Education) != 0 {
		t.Errorf("Education = %v, want empty non-nil slice", got.Education)
	}
	if got.Experience == nil || len(got.Experience) != 0 {
		t.Errorf("Experience = %v, want empty non-nil slice", got.Experience)
	}
	if got.Projects == nil || len(got.Projects) != 0 {
		t.Errorf("Projects = %v, want empty non-nil slice", got.Projects)
	}
	for group, skills := range map[string][]string{
		"technical": got.Skills.Technical,
		"soft":      got.Skills.Soft,
		"language":  got.Skills.Language,
		"tool":      got.Skills.Tool,
	} {
		if skills == nil || len(skills) != 0 {
			t.Errorf("Skills.%s = %v, want empty non-nil slice", group, skills)
		}
	}
}

func TestExtractNameSkipsSocialLines(t *testing.T) {
	text := "Find me on GitHub\nJane Smith"
	got := ExtractFields(text)
	if got.Name != "Jane Smith" {
		t.Errorf("Name = %q, want %q", got.Name, "Jane Smith")
	}
}
