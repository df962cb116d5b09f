package types

// ExperienceLevel values accepted by the content enhancer.
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
)

// EnhancementSuggestions groups keyword-bank material surfaced alongside an
// enhanced snippet so callers can offer further edits.
type EnhancementSuggestions struct {
	ActionVerbs    []string `json:"action_verbs,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
}

// EnhancementResult is the output of one enhancement pass.
// Improvements is an ordered log of the transformations that were applied;
// an empty log means the snippet was returned unchanged.
type EnhancementResult struct {
	EnhancedText string                 `json:"enhanced_text"`
	Suggestions  EnhancementSuggestions `json:"suggestions"`
	Improvements []string               `json:"improvements"`
}
