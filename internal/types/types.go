package types

// RoleDefinition describes a target role from the catalog
type RoleDefinition struct {
	Category    string   `json:"category"`
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// SkillGroups buckets extracted skills by kind
type SkillGroups struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Language  []string `json:"language"`
	Tool      []string `json:"tool"`
}

// ExtractedFields holds details pulled from resume text. The contact
// fields come from the heuristic extractor; the structured fields are
// part of the result shape but the extractor leaves them empty.
type ExtractedFields struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	LinkedIn   string            `json:"linkedin"`
	GitHub     string            `json:"github"`
	Portfolio  string            `json:"portfolio"`
	Summary    string            `json:"summary"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     SkillGroups       `json:"skills"`
}

// SkillsMatch represents how the resume covers the role's skill list
type SkillsMatch struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Score   int      `json:"score"` // 0-100
}

// SectionFlags records which standard resume sections were detected
type SectionFlags struct {
	Summary    bool `json:"summary"`
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
}

// FormatAnalysis represents section coverage and formatting quality
type FormatAnalysis struct {
	Sections     SectionFlags `json:"sections"`
	SectionScore int          `json:"sectionScore"` // 0-80, 20 per section
	FormatScore  int          `json:"formatScore"`  // 0-100
}

// Suggestions groups improvement advice by concern
type Suggestions struct {
	Contact    []string `json:"contact"`
	Skills     []string `json:"skills"`
	Format     []string `json:"format"`
	Summary    []string `json:"summary"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

// AnalysisResult is the full output of a standard resume analysis
type AnalysisResult struct {
	Fields       ExtractedFields `json:"fields"`
	SkillsMatch  SkillsMatch     `json:"skillsMatch"`
	Format       FormatAnalysis  `json:"format"`
	ATSScore     int             `json:"atsScore"`
	ResumeScore  int             `json:"resumeScore"`
	OverallScore int             `json:"overallScore"`
	Suggestions  Suggestions     `json:"suggestions"`
}

// AIAnalysis carries the critique parsed from the model response
type AIAnalysis struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	RawFeedback     string   `json:"rawFeedback,omitempty"`
}

// AIAnalysisResult wraps a standard result with model feedback.
// AIEnabled is false when the model call failed and the standard
// result was returned as-is.
type AIAnalysisResult struct {
	AnalysisResult
	AIEnabled bool        `json:"aiEnabled"`
	ModelUsed string      `json:"modelUsed,omitempty"`
	AI        *AIAnalysis `json:"ai,omitempty"`
}

// ExperienceEntry is one job in a structured resume
type ExperienceEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// ProjectEntry is one project in a structured resume
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// EducationEntry is one degree in a structured resume
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Resume is a structured resume submitted as JSON instead of a document
type Resume struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	LinkedIn   string            `json:"linkedin"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Skills     []string          `json:"skills"`
}
