// Package catalog holds the static role catalog used to drive
// skills matching and AI analysis prompts.
package catalog

import (
	"fmt"
	"sort"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

type roleEntry struct {
	description string
	skills      []string
}

var roles = map[string]map[string]roleEntry{
	"Software Development": {
		"Frontend Developer": {
			description: "Builds user interfaces and client-side applications",
			skills:      []string{"JavaScript", "React", "HTML", "CSS", "TypeScript", "Vue.js", "Angular"},
		},
		"Backend Developer": {
			description: "Develops server-side logic and APIs",
			skills:      []string{"Node.js", "Python", "Java", "C#", "SQL", "MongoDB", "Express.js"},
		},
		"Full Stack Developer": {
			description: "Works on both frontend and backend development",
			skills:      []string{"JavaScript", "React", "Node.js", "Python", "SQL", "MongoDB", "Express.js"},
		},
	},
	"Data Science": {
		"Data Scientist": {
			description: "Analyzes complex data to help organizations make decisions",
			skills:      []string{"Python", "R", "SQL", "Machine Learning", "Statistics", "Pandas", "NumPy"},
		},
		"Data Analyst": {
			description: "Interprets data to provide actionable insights",
			skills:      []string{"SQL", "Excel", "Python", "Tableau", "Power BI", "Statistics"},
		},
	},
	"DevOps": {
		"DevOps Engineer": {
			description: "Manages infrastructure and deployment pipelines",
			skills:      []string{"Docker", "Kubernetes", "AWS", "Linux", "CI/CD", "Jenkins", "Terraform"},
		},
	},
}

// Lookup returns the definition for a role within a category.
func Lookup(category, role string) (types.RoleDefinition, error) {
	categoryRoles, ok := roles[category]
	if !ok {
		return types.RoleDefinition{}, errors.NewValidationError(
			errors.ErrCodeUnknownRole,
			fmt.Sprintf("unknown category: %s", category),
			nil,
		).WithContext("category", category)
	}

	entry, ok := categoryRoles[role]
	if !ok {
		return types.RoleDefinition{}, errors.NewValidationError(
			errors.ErrCodeUnknownRole,
			fmt.Sprintf("unknown role %q in category %q", role, category),
			nil,
		).WithContext("category", category).WithContext("role", role)
	}

	def := types.RoleDefinition{
		Category:    category,
		Role:        role,
		Description: entry.description,
		Skills:      make([]string, len(entry.skills)),
	}
	copy(def.Skills, entry.skills)
	return def, nil
}

// Categories returns the category names in sorted order.
func Categories() []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RolesIn returns the role names within a category in sorted order.
// Unknown categories yield an empty slice.
func RolesIn(category string) []string {
	categoryRoles, ok := roles[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(categoryRoles))
	for name := range categoryRoles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every role definition, grouped in category then role order.
func All() []types.RoleDefinition {
	var defs []types.RoleDefinition
	for _, category := range Categories() {
		for _, role := range RolesIn(category) {
			def, err := Lookup(category, role)
			if err != nil {
				continue
			}
			defs = append(defs, def)
		}
	}
	return defs
}
