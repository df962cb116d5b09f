package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

var yearsExperiencePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?experience`)

// titleNouns are the job-title nouns the title strategies look for.
var titleNouns = []string{
	"engineer", "developer", "manager", "analyst", "coordinator", "designer",
	"consultant", "specialist", "technician", "administrator", "architect",
	"director", "supervisor", "plumber", "electrician", "nurse", "accountant",
	"representative", "assistant", "scientist",
}

// seniorityPrefixes qualify a title noun when present, e.g. "Senior Software
// Engineer". They are optional; a bare noun phrase still matches.
var seniorityPrefixes = []string{
	"senior", "junior", "lead", "principal", "staff", "chief", "head", "associate",
}

// ExtractSummary populates the career summary. The objective is the trimmed
// SUMMARY section content when one exists; title and years fall back to the
// preamble when the summary is missing or silent.
func ExtractSummary(doc *types.ParsedDocument) types.Summary {
	summary := types.Summary{KeySkills: []string{}}

	scope := doc.Normalized
	if doc.HasSection(sections.SectionSummary) {
		block := doc.Sections[sections.SectionSummary]
		summary.CareerObjective = strings.TrimSpace(block.Content)
		scope = block.Content + "\n" + preamble(doc)
	}

	summary.CurrentTitle = extractTitle(scope)
	if summary.CurrentTitle == "" {
		summary.CurrentTitle = extractTitle(doc.Normalized)
	}
	summary.YearsExperience = extractYears(doc.Normalized)

	return summary
}

// preamble returns the pre-header bucket content, or empty.
func preamble(doc *types.ParsedDocument) string {
	if block, ok := doc.Sections[sections.SectionHeader]; ok {
		return block.Content
	}
	return ""
}

// extractTitle matches a seniority-prefixed job-title noun phrase. The match
// is anchored to a single line so prose sentences do not produce bogus titles.
func extractTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if line == "" || len(line) > 60 {
			continue
		}
		lower := strings.ToLower(line)
		for _, noun := range titleNouns {
			idx := strings.Index(lower, noun)
			if idx < 0 || !isWordBoundary(lower, idx, len(noun)) {
				continue
			}
			// Take the noun plus up to three preceding words on the line
			words := strings.Fields(line[:idx+len(noun)])
			start := 0
			if len(words) > 4 {
				start = len(words) - 4
			}
			phrase := strings.Join(words[start:], " ")
			// Drop leading filler before a seniority prefix if present
			phrase = trimToSeniority(phrase)
			if phrase != "" {
				return titleCase(phrase)
			}
		}
	}
	return ""
}

// trimToSeniority cuts leading words before a recognized seniority prefix so
// "experienced Senior Software Engineer" becomes "Senior Software Engineer".
func trimToSeniority(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		lower := strings.ToLower(strings.Trim(w, ".,"))
		for _, p := range seniorityPrefixes {
			if lower == p {
				return strings.Join(words[i:], " ")
			}
		}
	}
	// No seniority prefix: keep at most the last three words
	if len(words) > 3 {
		words = words[len(words)-3:]
	}
	return strings.Join(words, " ")
}

// extractYears parses "N years of experience" as an integer; absent means 0.
func extractYears(text string) int {
	m := yearsExperiencePattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil || years < 0 {
		return 0
	}
	return years
}

// isWordBoundary reports whether text[idx:idx+n] is delimited by non-letters.
func isWordBoundary(text string, idx, n int) bool {
	if idx > 0 {
		prev := text[idx-1]
		if prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z' {
			return false
		}
	}
	if idx+n < len(text) {
		next := text[idx+n]
		if next >= 'a' && next <= 'z' || next >= 'A' && next <= 'Z' {
			return false
		}
	}
	return true
}
