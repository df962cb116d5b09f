package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestGenerateSuggestions_EmptyResult(t *testing.T) {
	suggestions := GenerateSuggestions(&types.ParseResult{})

	assert.Len(t, suggestions, 5)
	assert.Contains(t, suggestions, "Add your full name at the top of the resume")
	assert.Contains(t, suggestions, "Add a professional email address")
	assert.Contains(t, suggestions, "Add your work history with company names and job titles")
	assert.Contains(t, suggestions, "Add your educational background")
	assert.Contains(t, suggestions, "Add more skills relevant to your target role")
}

func TestGenerateSuggestions_CompleteResult(t *testing.T) {
	assert.Empty(t, GenerateSuggestions(fullResult()))
}

func TestGenerateSuggestions_PlaceholderEntry(t *testing.T) {
	result := fullResult()
	result.Experience[0].Achievements = []string{placeholderAchievement}

	suggestions := GenerateSuggestions(result)

	assert.Equal(t, []string{"Add specific achievements for your role at Acme Inc"}, suggestions)
}

func TestGenerateSuggestions_CappedAtFive(t *testing.T) {
	result := &types.ParseResult{
		Experience: []types.WorkExperience{
			{CompanyName: "Acme Inc", JobTitle: "Engineer", Achievements: []string{placeholderAchievement}},
			{CompanyName: "Globex Corp", JobTitle: "Engineer", Achievements: []string{placeholderAchievement}},
			{CompanyName: "Initech", JobTitle: "Engineer", Achievements: []string{placeholderAchievement}},
			{CompanyName: "Umbrella Co", JobTitle: "Engineer", Achievements: []string{placeholderAchievement}},
		},
	}

	suggestions := GenerateSuggestions(result)

	assert.Len(t, suggestions, 5, "suggestion list is capped")
}

func TestGenerateSuggestions_Deterministic(t *testing.T) {
	result := &types.ParseResult{PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"}}

	first := GenerateSuggestions(result)
	second := GenerateSuggestions(result)

	assert.Equal(t, first, second, "same input yields the same ordered suggestions")
}
