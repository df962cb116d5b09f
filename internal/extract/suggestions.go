package extract

import (
	"fmt"

	"github.com/jonathan/resume-parser/internal/types"
)

// maxSuggestions caps the remediation hint list.
const maxSuggestions = 5

// SuggestionManualEntry is the single suggestion attached to a fallback
// result when parsing fails entirely.
const SuggestionManualEntry = "Unable to parse automatically; please enter information manually"

// GenerateSuggestions derives remediation hints from missing or low-quality
// fields. Rules run in a fixed order and the output is capped, so the
// suggestions for a given ParseResult are deterministic.
func GenerateSuggestions(result *types.ParseResult) []string {
	suggestions := make([]string, 0, maxSuggestions)
	add := func(s string) {
		if len(suggestions) < maxSuggestions {
			suggestions = append(suggestions, s)
		}
	}

	if result.PersonalInfo.FullName == "" {
		add("Add your full name at the top of the resume")
	}
	if result.PersonalInfo.Email == "" {
		add("Add a professional email address")
	}
	if len(result.Experience) == 0 {
		add("Add your work history with company names and job titles")
	}
	for _, entry := range result.Experience {
		if HasPlaceholderAchievements(entry) {
			add(fmt.Sprintf("Add specific achievements for your role at %s", entry.CompanyName))
		}
	}
	if len(result.Education) == 0 {
		add("Add your educational background")
	}
	if len(result.Skills) < fullCreditSkillCount {
		add("Add more skills relevant to your target role")
	}

	return suggestions
}
