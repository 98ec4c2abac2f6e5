// Package resume renders structured resume submissions into the plain
// text form the analysis pipeline consumes.
package resume

import (
	"strings"

	"resumelens/internal/types"
)

// Flatten renders a structured resume as plain text with the standard
// section headers, so JSON submissions score the same way uploaded
// documents do.
func Flatten(r types.Resume) string {
	var b strings.Builder

	writeLine := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}

	writeLine(r.Name)
	writeLine(r.Email)
	writeLine(r.Phone)
	writeLine(r.LinkedIn)

	if r.Summary != "" {
		b.WriteString("\nSUMMARY\n")
		b.WriteString(r.Summary)
		b.WriteString("\n")
	}

	if len(r.Experience) > 0 {
		b.WriteString("\nEXPERIENCE\n")
		for _, exp := range r.Experience {
			header := exp.Title
			if exp.Company != "" {
				header += " - " + exp.Company
			}
			if exp.Duration != "" {
				header += " (" + exp.Duration + ")"
			}
			writeLine(header)
			for _, line := range exp.Description {
				writeLine("• " + line)
			}
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, edu := range r.Education {
			header := edu.Degree
			if edu.Institution != "" {
				header += " - " + edu.Institution
			}
			if edu.Year != "" {
				header += " (" + edu.Year + ")"
			}
			writeLine(header)
		}
	}

	if len(r.Skills) > 0 {
		b.WriteString("\nSKILLS\n")
		b.WriteString(strings.Join(r.Skills, ", "))
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}
