package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "AIAnalysisResult", &AIAnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AIAnalysisResult", &AIAnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "RoleList", &RoleListTextFormatter{})
	registry.RegisterFormatter("markdown", "RoleList", &RoleListMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.AIAnalysisResult:
		return "AIAnalysisResult"
	case []types.RoleDefinition:
		return "RoleList"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder
	writeAnalysisText(&output, result)
	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

func writeAnalysisText(output *strings.Builder, result types.AnalysisResult) {
	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %d/100\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("Resume Score:  %d/100\n", result.ResumeScore))
	output.WriteString(fmt.Sprintf("ATS Score:     %d/100\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("Skills Score:  %d/100\n", result.SkillsMatch.Score))
	output.WriteString(fmt.Sprintf("Format Score:  %d/100\n\n", result.Format.FormatScore))

	output.WriteString("=== CONTACT DETAILS ===\n")
	writeFieldLine(output, "Name", result.Fields.Name)
	writeFieldLine(output, "Email", result.Fields.Email)
	writeFieldLine(output, "Phone", result.Fields.Phone)
	writeFieldLine(output, "LinkedIn", result.Fields.LinkedIn)
	writeFieldLine(output, "GitHub", result.Fields.GitHub)
	output.WriteString("\n")

	output.WriteString("=== SKILLS MATCH ===\n")
	if len(result.SkillsMatch.Matched) > 0 {
		output.WriteString(fmt.Sprintf("Matched: %s\n", strings.Join(result.SkillsMatch.Matched, ", ")))
	}
	if len(result.SkillsMatch.Missing) > 0 {
		output.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(result.SkillsMatch.Missing, ", ")))
	}
	output.WriteString("\n")

	output.WriteString("=== SECTIONS ===\n")
	writeSectionLine(output, "Summary", result.Format.Sections.Summary)
	writeSectionLine(output, "Experience", result.Format.Sections.Experience)
	writeSectionLine(output, "Education", result.Format.Sections.Education)
	writeSectionLine(output, "Skills", result.Format.Sections.Skills)
	output.WriteString("\n")

	suggestions := collectSuggestions(result.Suggestions)
	if len(suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}
}

func writeFieldLine(output *strings.Builder, label, value string) {
	if value == "" {
		value = "(not found)"
	}
	output.WriteString(fmt.Sprintf("%-9s %s\n", label+":", value))
}

func writeSectionLine(output *strings.Builder, label string, present bool) {
	marker := "missing"
	if present {
		marker = "found"
	}
	output.WriteString(fmt.Sprintf("%-11s %s\n", label+":", marker))
}

func collectSuggestions(s types.Suggestions) []string {
	var all []string
	all = append(all, s.Contact...)
	all = append(all, s.Skills...)
	all = append(all, s.Format...)
	all = append(all, s.Summary...)
	all = append(all, s.Experience...)
	all = append(all, s.Education...)
	return all
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder
	writeAnalysisMarkdown(&output, result)
	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

func writeAnalysisMarkdown(output *strings.Builder, result types.AnalysisResult) {
	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/100\n\n", result.OverallScore))
	output.WriteString("| Metric | Score |\n|--------|-------|\n")
	output.WriteString(fmt.Sprintf("| Resume | %d |\n", result.ResumeScore))
	output.WriteString(fmt.Sprintf("| ATS | %d |\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("| Skills | %d |\n", result.SkillsMatch.Score))
	output.WriteString(fmt.Sprintf("| Format | %d |\n", result.Format.FormatScore))
	output.WriteString(fmt.Sprintf("| Sections | %d |\n\n", result.Format.SectionScore))

	output.WriteString("## Contact Details\n\n")
	writeMarkdownField(output, "Name", result.Fields.Name)
	writeMarkdownField(output, "Email", result.Fields.Email)
	writeMarkdownField(output, "Phone", result.Fields.Phone)
	writeMarkdownField(output, "LinkedIn", result.Fields.LinkedIn)
	writeMarkdownField(output, "GitHub", result.Fields.GitHub)
	output.WriteString("\n")

	output.WriteString("## Skills Match\n\n")
	if len(result.SkillsMatch.Matched) > 0 {
		output.WriteString(fmt.Sprintf("**Matched:** %s\n\n", strings.Join(result.SkillsMatch.Matched, ", ")))
	}
	if len(result.SkillsMatch.Missing) > 0 {
		output.WriteString(fmt.Sprintf("**Missing:** %s\n\n", strings.Join(result.SkillsMatch.Missing, ", ")))
	}

	suggestions := collectSuggestions(result.Suggestions)
	if len(suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for _, suggestion := range suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		output.WriteString("\n")
	}
}

func writeMarkdownField(output *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	output.WriteString(fmt.Sprintf("- **%s:** %s\n", label, value))
}

// AIAnalysisTextFormatter handles text formatting for AI-assisted analysis results
type AIAnalysisTextFormatter struct{}

func (atf *AIAnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AIAnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AIAnalysisResult, got %T", data)
	}

	var output strings.Builder
	writeAnalysisText(&output, result.AnalysisResult)

	if result.AIEnabled && result.AI != nil {
		output.WriteString("\n=== AI REVIEW ===\n\n")
		if result.ModelUsed != "" {
			output.WriteString(fmt.Sprintf("Model: %s\n\n", result.ModelUsed))
		}
		if len(result.AI.Strengths) > 0 {
			output.WriteString("Strengths:\n")
			for _, strength := range result.AI.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(result.AI.Weaknesses) > 0 {
			output.WriteString("Weaknesses:\n")
			for _, weakness := range result.AI.Weaknesses {
				output.WriteString(fmt.Sprintf("- %s\n", weakness))
			}
			output.WriteString("\n")
		}
		output.WriteString("Full Feedback:\n")
		output.WriteString(result.AI.RawFeedback)
		output.WriteString("\n")
	} else {
		output.WriteString("\nAI review unavailable, showing standard analysis.\n")
	}

	return output.String(), nil
}

func (atf *AIAnalysisTextFormatter) SupportedType() string {
	return "AIAnalysisResult"
}

// AIAnalysisMarkdownFormatter handles markdown formatting for AI-assisted analysis results
type AIAnalysisMarkdownFormatter struct{}

func (amf *AIAnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AIAnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AIAnalysisResult, got %T", data)
	}

	var output strings.Builder
	writeAnalysisMarkdown(&output, result.AnalysisResult)

	if result.AIEnabled && result.AI != nil {
		output.WriteString("## AI Review\n\n")
		if result.ModelUsed != "" {
			output.WriteString(fmt.Sprintf("**Model:** %s\n\n", result.ModelUsed))
		}
		if len(result.AI.Strengths) > 0 {
			output.WriteString("### Strengths\n\n")
			for _, strength := range result.AI.Strengths {
				output.WriteString(fmt.Sprintf("- %s\n", strength))
			}
			output.WriteString("\n")
		}
		if len(result.AI.Weaknesses) > 0 {
			output.WriteString("### Weaknesses\n\n")
			for _, weakness := range result.AI.Weaknesses {
				output.WriteString(fmt.Sprintf("- %s\n", weakness))
			}
			output.WriteString("\n")
		}
		output.WriteString("### Full Feedback\n\n")
		output.WriteString(result.AI.RawFeedback)
		output.WriteString("\n")
	} else {
		output.WriteString("*AI review unavailable, showing standard analysis.*\n")
	}

	return output.String(), nil
}

func (amf *AIAnalysisMarkdownFormatter) SupportedType() string {
	return "AIAnalysisResult"
}

// RoleListTextFormatter handles text formatting for the role catalog
type RoleListTextFormatter struct{}

func (rtf *RoleListTextFormatter) Format(data any) (string, error) {
	roles, ok := data.([]types.RoleDefinition)
	if !ok {
		return "", fmt.Errorf("expected []RoleDefinition, got %T", data)
	}

	var output strings.Builder
	output.WriteString("=== AVAILABLE ROLES ===\n\n")

	lastCategory := ""
	for _, role := range roles {
		if role.Category != lastCategory {
			output.WriteString(fmt.Sprintf("%s\n", role.Category))
			lastCategory = role.Category
		}
		output.WriteString(fmt.Sprintf("  %s: %s\n", role.Role, strings.Join(role.Skills, ", ")))
	}

	return output.String(), nil
}

func (rtf *RoleListTextFormatter) SupportedType() string {
	return "RoleList"
}

// RoleListMarkdownFormatter handles markdown formatting for the role catalog
type RoleListMarkdownFormatter struct{}

func (rmf *RoleListMarkdownFormatter) Format(data any) (string, error) {
	roles, ok := data.([]types.RoleDefinition)
	if !ok {
		return "", fmt.Errorf("expected []RoleDefinition, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Available Roles\n")

	lastCategory := ""
	for _, role := range roles {
		if role.Category != lastCategory {
			output.WriteString(fmt.Sprintf("\n## %s\n\n", role.Category))
			lastCategory = role.Category
		}
		output.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", role.Role, role.Description, strings.Join(role.Skills, ", ")))
	}

	return output.String(), nil
}

func (rmf *RoleListMarkdownFormatter) SupportedType() string {
	return "RoleList"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
