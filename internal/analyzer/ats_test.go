package analyzer

import (
	"strings"
	"testing"
)

func TestATSScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "empty text gets base format score",
			text: "",
			want: 20,
		},
		{
			name: "email bonus needs both at sign and dot com",
			text: "reach me at jane@example.com",
			want: 30,
		},
		{
			name: "at sign without dot com earns nothing",
			text: "jane@example.org",
			want: 20,
		},
		{
			name: "phone bonus",
			text: "call 555-123-4567",
			want: 30,
		},
		{
			name: "lowercase experience earns section and keyword bonus",
			text: "experience",
			want: 50,
		},
		{
			name: "uppercase heading earns section points only",
			text: "EXPERIENCE",
			want: 40,
		},
		{
			name: "long resume bonus",
			text: strings.Repeat("lorem ipsum ", 50),
			want: 30,
		},
		{
			name: "capped at 100",
			text: "SUMMARY experience EDUCATION SKILLS jane@example.com 555-123-4567 " + strings.Repeat("achievement ", 50),
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := AnalyzeFormat(tt.text)
			got := ATSScore(tt.text, format)
			if got != tt.want {
				t.Errorf("ATSScore = %d, want %d", got, tt.want)
			}
		})
	}
}
