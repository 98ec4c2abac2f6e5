package catalog

import (
	"testing"

	"resumelens/internal/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		role       string
		wantErr    bool
		wantSkills int
	}{
		{
			name:       "known role",
			category:   "Software Development",
			role:       "Frontend Developer",
			wantSkills: 7,
		},
		{
			name:       "devops role",
			category:   "DevOps",
			role:       "DevOps Engineer",
			wantSkills: 7,
		},
		{
			name:     "unknown category",
			category: "Gardening",
			role:     "Frontend Developer",
			wantErr:  true,
		},
		{
			name:     "unknown role in known category",
			category: "Data Science",
			role:     "Prompt Engineer",
			wantErr:  true,
		},
		{
			name:     "category names are case sensitive",
			category: "software development",
			role:     "Frontend Developer",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Lookup(tt.category, tt.role)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.IsCode(err, errors.ErrCodeUnknownRole) {
					t.Errorf("expected code %s, got %s", errors.ErrCodeUnknownRole, errors.CodeOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(def.Skills) != tt.wantSkills {
				t.Errorf("expected %d skills, got %d", tt.wantSkills, len(def.Skills))
			}
			if def.Category != tt.category || def.Role != tt.role {
				t.Errorf("definition not labelled with request: %+v", def)
			}
			if def.Description == "" {
				t.Error("expected non-empty description")
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	first, err := Lookup("DevOps", "DevOps Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Skills[0] = "mutated"

	second, err := Lookup("DevOps", "DevOps Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Skills[0] == "mutated" {
		t.Error("Lookup shares the underlying skills slice between calls")
	}
}

func TestCategories(t *testing.T) {
	got := Categories()
	want := []string{"Data Science", "DevOps", "Software Development"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRolesIn(t *testing.T) {
	got := RolesIn("Software Development")
	if len(got) != 3 {
		t.Fatalf("expected 3 roles, got %d: %v", len(got), got)
	}
	if got[0] != "Backend Developer" {
		t.Errorf("expected sorted order, got %v", got)
	}

	if unknown := RolesIn("Unknown"); len(unknown) != 0 {
		t.Errorf("expected no roles for unknown category, got %v", unknown)
	}
}

func TestAll(t *testing.T) {
	defs := All()
	if len(defs) != 6 {
		t.Fatalf("expected 6 role definitions, got %d", len(defs))
	}
	for _, def := range defs {
		if def.Category == "" || def.Role == "" || len(def.Skills) == 0 {
			t.Errorf("incomplete definition: %+v", def)
		}
	}
}
