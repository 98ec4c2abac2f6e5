package analyzer

import (
	"reflect"
	"testing"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		required    []string
		wantMatched []string
		wantMissing []string
		wantScore   int
	}{
		{
			name:        "all matched",
			text:        "Experienced with Python, SQL and Docker.",
			required:    []string{"Python", "SQL", "Docker"},
			wantMatched: []string{"Python", "SQL", "Docker"},
			wantMissing: []string{},
			wantScore:   100,
		},
		{
			name:        "case insensitive substring",
			text:        "worked with PYTHON and node.js daily",
			required:    []string{"Python", "Node.js", "Java"},
			wantMatched: []string{"Python", "Node.js"},
			wantMissing: []string{"Java"},
			wantScore:   67,
		},
		{
			name:        "one of three rounds to 33",
			text:        "Python only",
			required:    []string{"Python", "R", "Tableau"},
			wantMatched: []string{"Python"},
			wantMissing: []string{"R", "Tableau"},
			wantScore:   33,
		},
		{
			name:        "none matched",
			text:        "I enjoy gardening",
			required:    []string{"Docker", "Kubernetes"},
			wantMatched: []string{},
			wantMissing: []string{"Docker", "Kubernetes"},
			wantScore:   0,
		},
		{
			name:        "no required skills",
			text:        "anything",
			required:    []string{},
			wantMatched: []string{},
			wantMissing: []string{},
			wantScore:   0,
		},
		{
			name:        "order follows required list",
			text:        "CSS before HTML here: css html",
			required:    []string{"HTML", "CSS"},
			wantMatched: []string{"HTML", "CSS"},
			wantMissing: []string{},
			wantScore:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchSkills(tt.text, tt.required)
			if !reflect.DeepEqual(got.Matched, tt.wantMatched) {
				t.Errorf("Matched = %v, want %v", got.Matched, tt.wantMatched)
			}
			if !reflect.DeepEqual(got.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.wantMissing)
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}
