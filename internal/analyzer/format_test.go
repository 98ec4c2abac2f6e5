package analyzer

import "testing"

func TestAnalyzeFormat(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		wantSummary      bool
		wantExperience   bool
		wantEducation    bool
		wantSkills       bool
		wantSectionScore int
		wantFormatScore  int
	}{
		{
			name:             "all four sections",
			text:             "SUMMARY\n...\nEXPERIENCE\n...\nEDUCATION\n...\nSKILLS\n...",
			wantSummary:      true,
			wantExperience:   true,
			wantEducation:    true,
			wantSkills:       true,
			wantSectionScore: 80,
			wantFormatScore:  100,
		},
		{
			name:             "alternate headings",
			text:             "Objective\nWork history\nAcademic background\nTechnologies used",
			wantSummary:      true,
			wantExperience:   true,
			wantEducation:    true,
			wantSkills:       true,
			wantSectionScore: 80,
			wantFormatScore:  100,
		},
		{
			name:             "two sections",
			text:             "Experience at Acme\nEducation: BSc",
			wantExperience:   true,
			wantEducation:    true,
			wantSectionScore: 40,
			wantFormatScore:  60,
		},
		{
			name:            "no sections",
			text:            "just a paragraph about myself",
			wantFormatScore: 20,
		},
		{
			name:            "empty text",
			text:            "",
			wantFormatScore: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeFormat(tt.text)
			if got.Sections.Summary != tt.wantSummary {
				t.Errorf("Summary = %v, want %v", got.Sections.Summary, tt.wantSummary)
			}
			if got.Sections.Experience != tt.wantExperience {
				t.Errorf("Experience = %v, want %v", got.Sections.Experience, tt.wantExperience)
			}
			if got.Sections.Education != tt.wantEducation {
				t.Errorf("Education = %v, want %v", got.Sections.Education, tt.wantEducation)
			}
			if got.Sections.Skills != tt.wantSkills {
				t.Errorf("Skills = %v, want %v", got.Sections.Skills, tt.wantSkills)
			}
			if got.SectionScore != tt.wantSectionScore {
				t.Errorf("SectionScore = %d, want %d", got.SectionScore, tt.wantSectionScore)
			}
			if got.FormatScore != tt.wantFormatScore {
				t.Errorf("FormatScore = %d, want %d", got.FormatScore, tt.wantFormatScore)
			}
		})
	}
}
