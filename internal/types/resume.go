// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds contact details extracted from the resume header.
// All fields are optional; extraction that fails leaves a field empty.
type PersonalInfo struct {
	FullName  string `json:"full_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Summary holds career-summary fields extracted from the summary/objective section.
type Summary struct {
	CurrentTitle    string   `json:"current_title,omitempty"`
	YearsExperience int      `json:"years_experience"`
	KeySkills       []string `json:"key_skills,omitempty"`
	CareerObjective string   `json:"career_objective,omitempty"`
}

// WorkExperience represents a single employment entry.
// An entry is only retained when both CompanyName and JobTitle are non-trivial.
type WorkExperience struct {
	CompanyName    string   `json:"company_name"`
	JobTitle       string   `json:"job_title"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"` // "Present" sentinel allowed
	JobDescription string   `json:"job_description,omitempty"`
	Achievements   []string `json:"achievements"`
}

// Education represents a single education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	Achievements   string `json:"achievements,omitempty"`
}

// Skill categories.
const (
	SkillCategoryTechnical = "technical"
	SkillCategorySoft      = "soft"
	SkillCategoryIndustry  = "industry"
)

// Skill levels.
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelExpert       = "expert"
)

// Skill represents a single extracted skill with its classification.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"` // technical | soft | industry
	Level    string `json:"level"`    // beginner | intermediate | advanced | expert
}

// ParseResult aggregates everything extracted from one resume.
// Confidence is a 0.0-1.0 float; Suggestions is capped at 5 entries.
type ParseResult struct {
	PersonalInfo     PersonalInfo     `json:"personal_info"`
	Summary          Summary          `json:"summary"`
	Experience       []WorkExperience `json:"experience"`
	Education        []Education      `json:"education"`
	Skills           []Skill          `json:"skills"`
	Confidence       float64          `json:"confidence"`
	Suggestions      []string         `json:"suggestions"`
	DetectedIndustry string           `json:"detected_industry,omitempty"`
}
