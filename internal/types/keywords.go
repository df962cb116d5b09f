package types

// IndustryKeywords is the per-industry taxonomy driving enhancement and
// industry detection. Loaded once at process start and never mutated.
type IndustryKeywords struct {
	ActionVerbs          []string `json:"action_verbs"`
	Skills               []string `json:"skills"`
	Responsibilities     []string `json:"responsibilities"`
	AchievementTemplates []string `json:"achievement_templates"` // contain {X} placeholders
	Certifications       []string `json:"certifications"`
	Tools                []string `json:"tools"`
	Metrics              []string `json:"metrics"`
}

// KeywordSearchResult holds capped, deduplicated matches from a keyword search.
type KeywordSearchResult struct {
	ActionVerbs []string `json:"action_verbs"`
	Skills      []string `json:"skills"`
	Tools       []string `json:"tools"`
}
