// Package industry infers an industry tag from parsed experience and skills
// by scoring the parse result against each industry's keyword set.
package industry

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/keywords"
	"github.com/jonathan/resume-parser/internal/types"
)

// Scoring weights per matched cue.
const (
	pointsPerEntryMatch = 3 // employer/title matches an industry cue
	pointsPerTextMatch  = 1 // industry skill keyword inside a description
	pointsPerSkillMatch = 2 // parsed skill/cert in the industry's lists
)

// Detect scores each known industry against the parse result and returns the
// highest-scoring one. Ties are broken by the bank's sorted industry ID order
// (lexicographic), which keeps detection deterministic; a zero score across
// all industries yields "general".
func Detect(result *types.ParseResult, bank *keywords.Bank) string {
	best := keywords.GeneralIndustry
	bestScore := 0

	// List() is sorted, so earlier IDs win ties by never being displaced
	for _, id := range bank.List() {
		if id == keywords.GeneralIndustry {
			continue
		}
		kw, _ := bank.Get(id)
		score := scoreIndustry(result, id, kw)
		if score > bestScore {
			best = id
			bestScore = score
		}
	}

	return best
}

// scoreIndustry computes one industry's match score.
func scoreIndustry(result *types.ParseResult, id string, kw types.IndustryKeywords) int {
	score := 0

	for _, entry := range result.Experience {
		if entryMatchesIndustry(entry, id, kw) {
			score += pointsPerEntryMatch
		}
		text := strings.ToLower(entry.JobDescription + " " + strings.Join(entry.Achievements, " "))
		for _, skill := range kw.Skills {
			if strings.Contains(text, strings.ToLower(skill)) {
				score += pointsPerTextMatch
			}
		}
	}

	for _, skill := range result.Skills {
		if listContains(kw.Skills, skill.Name) || listContains(kw.Certifications, skill.Name) || listContains(kw.Tools, skill.Name) {
			score += pointsPerSkillMatch
		}
	}

	return score
}

// entryMatchesIndustry checks employer and title against the industry's cue
// terms: the industry ID itself plus its title-ish responsibility words.
func entryMatchesIndustry(entry types.WorkExperience, id string, kw types.IndustryKeywords) bool {
	haystack := strings.ToLower(entry.CompanyName + " " + entry.JobTitle)

	// The industry name appearing in a company name or title is the
	// strongest cue ("Smith Plumbing", "HVAC Technician")
	for _, cue := range industryCues(id) {
		if strings.Contains(haystack, cue) {
			return true
		}
	}
	for _, tool := range kw.Tools {
		if strings.Contains(haystack, strings.ToLower(tool)) {
			return true
		}
	}
	return false
}

// industryCues expands an industry ID into company/title matching terms.
func industryCues(id string) []string {
	cues := []string{strings.ReplaceAll(id, "-", " ")}
	switch id {
	case "technology":
		cues = append(cues, "software", "tech", "engineer", "developer", "it ")
	case "healthcare":
		cues = append(cues, "hospital", "clinic", "medical", "nurse", "health")
	case "finance":
		cues = append(cues, "bank", "financial", "accounting", "capital", "investment")
	case "sales":
		cues = append(cues, "sales", "account executive", "business development")
	case "marketing":
		cues = append(cues, "marketing", "brand", "advertising", "media")
	case "customer-service":
		cues = append(cues, "support", "call center", "customer care")
	case "plumbing":
		cues = append(cues, "plumber", "pipe", "drain")
	case "hvac":
		cues = append(cues, "heating", "cooling", "refrigeration", "air conditioning")
	case "electrical":
		cues = append(cues, "electrician", "electric")
	case "construction":
		cues = append(cues, "builder", "contracting", "construction")
	}
	return cues
}

// listContains is a case-insensitive exact-membership check.
func listContains(list []string, name string) bool {
	lower := strings.ToLower(name)
	for _, item := range list {
		if strings.ToLower(item) == lower {
			return true
		}
	}
	return false
}
