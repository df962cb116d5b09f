package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

const degreePlaceholder = "Degree to be specified"

var (
	institutionSuffixes = []string{"university", "college", "institute", "school", "academy", "polytechnic"}

	// institutionBlocklist rejects phrases that pattern-match an institution
	// suffix but are resume prose, not school names.
	institutionBlocklist = []string{"current", "experience", "high school diploma", "school of thought", "old school"}

	degreePattern   = regexp.MustCompile(`(?i)\b(Bachelor(?:'?s)?(?:\s+of\s+(?:Science|Arts|Engineering|Business))?|Master(?:'?s)?(?:\s+of\s+(?:Science|Arts|Engineering|Business Administration))?|Ph\.?D\.?|Doctorate|Associate(?:'?s)?(?:\s+degree)?|B\.?S\.?|B\.?A\.?|M\.?S\.?|M\.?A\.?|M\.?B\.?A\.?)(?:\s+in\s+([A-Za-z][A-Za-z &\-]{2,40}))?`)
	gradYearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ExtractEducation pattern-matches institution lines inside the EDUCATION
// section, falling back to the full text. It runs after ExtractExperience and
// skips any line already claimed as a company so employers with "Institute"
// in their name are not double-counted as schools. Entries are deduplicated
// case-insensitively by institution.
func ExtractEducation(doc *types.ParsedDocument, experience []types.WorkExperience) []types.Education {
	text := doc.Section(sections.SectionEducation)
	lines := strings.Split(text, "\n")

	companies := make(map[string]bool, len(experience))
	for _, entry := range experience {
		companies[strings.ToLower(entry.CompanyName)] = true
	}

	var results []types.Education
	seen := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		institution := matchInstitution(trimmed)
		if institution == "" {
			continue
		}
		if companies[strings.ToLower(institution)] {
			continue
		}
		key := strings.ToLower(institution)
		if seen[key] {
			continue
		}
		seen[key] = true

		entry := types.Education{Institution: institution}

		// Degree, major, and graduation year live in a local context window:
		// the institution line itself plus its two neighbors on each side
		window := contextWindow(lines, i, 2)
		entry.Degree, entry.Major = matchDegree(window)
		if entry.Degree == "" {
			entry.Degree = degreePlaceholder
		}
		if year := gradYearPattern.FindString(window); year != "" {
			entry.GraduationDate = year
		}

		results = append(results, entry)
	}

	// Degree with no named school: keep it only when an explicit EDUCATION
	// section vouches for the context
	if len(results) == 0 && doc.HasSection(sections.SectionEducation) {
		if degree, major := matchDegree(text); degree != "" {
			entry := types.Education{Degree: degree, Major: major}
			if year := gradYearPattern.FindString(text); year != "" {
				entry.GraduationDate = year
			}
			results = append(results, entry)
		}
	}

	return results
}

// matchInstitution returns the institution name when the line carries a known
// suffix and survives the blocklist filter.
func matchInstitution(line string) string {
	lower := strings.ToLower(line)

	for _, blocked := range institutionBlocklist {
		if strings.Contains(lower, blocked) {
			return ""
		}
	}

	for _, suffix := range institutionSuffixes {
		idx := strings.Index(lower, suffix)
		if idx < 0 || !isWordBoundary(lower, idx, len(suffix)) {
			continue
		}
		// The name is the phrase around the suffix up to a separator
		name := line
		for _, sep := range []string{" - ", " – ", " | ", ","} {
			if cut := strings.Index(name, sep); cut > idx {
				name = name[:cut]
			}
		}
		name = strings.TrimSpace(name)
		if len(name) < 5 || len(name) > 70 {
			return ""
		}
		// "University of X" keeps the trailing words; "X University" ends at
		// the suffix unless an "of" clause follows
		return name
	}
	return ""
}

// matchDegree pulls degree and major from a "Bachelor of Science in X" style
// pattern within the context window.
func matchDegree(window string) (string, string) {
	m := degreePattern.FindStringSubmatch(window)
	if m == nil {
		return "", ""
	}
	degree := strings.TrimSpace(m[1])
	major := strings.TrimSpace(m[2])

	// "Bachelor of Science" style: the captured field may actually be the
	// degree discipline, keep it as the major either way
	if major != "" {
		major = strings.TrimRight(major, " -")
	}
	return degree, major
}

// contextWindow joins lines[i-radius..i+radius] into one searchable string.
func contextWindow(lines []string, i, radius int) string {
	start := i - radius
	if start < 0 {
		start = 0
	}
	end := i + radius + 1
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}
