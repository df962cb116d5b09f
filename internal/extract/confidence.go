package extract

import "github.com/jonathan/resume-parser/internal/types"

// Confidence weights. They sum to 1.0 so the score needs no normalization;
// experience carries the most weight because a resume without work history is
// barely a resume.
const (
	weightName             = 0.15
	weightEmail            = 0.15
	weightPhone            = 0.10
	weightHasExperience    = 0.25
	weightRealAchievements = 0.15
	weightHasEducation     = 0.10
	weightSkills           = 0.10

	// fullCreditSkillCount is the skill count at which the skills component
	// reaches full credit; below it, credit scales linearly.
	fullCreditSkillCount = 5
)

// ScoreConfidence computes the 0.0-1.0 extraction confidence as a weighted
// sum over which fields were populated and how substantively. Adding a
// recognized field to otherwise-identical input never lowers the score.
func ScoreConfidence(result *types.ParseResult) float64 {
	score := 0.0

	if result.PersonalInfo.FullName != "" {
		score += weightName
	}
	if result.PersonalInfo.Email != "" {
		score += weightEmail
	}
	if result.PersonalInfo.Phone != "" {
		score += weightPhone
	}

	if len(result.Experience) > 0 {
		score += weightHasExperience
		if allEntriesHaveRealAchievements(result.Experience) {
			score += weightRealAchievements
		}
	}

	if len(result.Education) > 0 {
		score += weightHasEducation
	}

	skillCount := len(result.Skills)
	if skillCount >= fullCreditSkillCount {
		score += weightSkills
	} else {
		score += weightSkills * float64(skillCount) / float64(fullCreditSkillCount)
	}

	return score
}

// allEntriesHaveRealAchievements reports whether every experience entry
// carries achievements beyond the backfilled placeholder.
func allEntriesHaveRealAchievements(entries []types.WorkExperience) bool {
	for _, entry := range entries {
		if HasPlaceholderAchievements(entry) {
			return false
		}
	}
	return true
}
