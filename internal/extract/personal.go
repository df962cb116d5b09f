package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxNameScanLines bounds how deep into the document the name strategies look.
const maxNameScanLines = 15

// EmailPattern is the validation shape every extracted email must satisfy.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)

var emailSearch = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// phonePatterns are tried in priority order; the first match anywhere wins.
var phonePatterns = []strategy{
	{"international", patternStrategy(regexp.MustCompile(`\+\d{1,3}[\s.\-]?\(?\d{1,4}\)?[\s.\-]?\d{3}[\s.\-]?\d{3,4}`))},
	{"parenthesized-area-code", patternStrategy(regexp.MustCompile(`\(\d{3}\)[\s.\-]?\d{3}[\s.\-]?\d{4}`))},
	{"separated", patternStrategy(regexp.MustCompile(`\b\d{3}[\s.\-]\d{3}[\s.\-]\d{4}\b`))},
	{"bare-ten-digit", patternStrategy(regexp.MustCompile(`\b\d{10}\b`))},
}

var (
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/([A-Za-z0-9\-_%]+)`)
	urlPattern      = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?([a-z0-9\-]+\.[a-z]{2,}(?:/[^\s,;]*)?)`)

	locationPatterns = []strategy{
		{"labeled", patternStrategy(regexp.MustCompile(`(?im)^location\s*:\s*(.+)$`))},
		{"city-state-zip", patternStrategy(regexp.MustCompile(`\b([A-Z][A-Za-z .]+,\s*[A-Z]{2}\s+\d{5}(?:-\d{4})?)\b`))},
		{"city-state", patternStrategy(regexp.MustCompile(`\b([A-Z][A-Za-z .]+,\s*[A-Z]{2})\b`))},
	}

	// metadataWords disqualify a line from being treated as the candidate's name
	metadataWords = []string{"resume", "cv", "curriculum vitae", "objective", "summary", "references", "page", "confidential"}

	nameShape = regexp.MustCompile(`^[A-Z][a-zA-Z'\-]+(?: [A-Z][a-zA-Z'.\-]*){1,3}$`)
)

// patternStrategy adapts a regex into a strategy apply func. When the regex
// has a capture group the first group is returned, otherwise the whole match.
func patternStrategy(re *regexp.Regexp) func(string) (string, bool) {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1]), true
		}
		return strings.TrimSpace(m[0]), true
	}
}

// ExtractPersonalInfo populates contact details. Name strategies scan the
// preamble (or the first lines of the full text when no preamble exists);
// the remaining fields are matched anywhere in the full text because contact
// details routinely appear in footers.
func ExtractPersonalInfo(doc *types.ParsedDocument) types.PersonalInfo {
	info := types.PersonalInfo{}

	nameScope := doc.Normalized
	if block, ok := doc.Sections[sections.SectionHeader]; ok {
		nameScope = block.Content
	} else if block, ok := doc.Sections[sections.SectionPersonal]; ok {
		nameScope = block.Content
	}
	info.FullName = extractName(nameScope)

	info.Email = extractEmail(doc.Normalized)
	info.Phone, _ = runStrategies(doc.Normalized, phonePatterns)
	info.LinkedIn = extractLinkedIn(doc.Normalized)
	info.Portfolio = extractPortfolio(doc.Normalized, info.LinkedIn)
	if loc, _ := runStrategies(doc.Normalized, locationPatterns); loc != "" {
		info.Location = strings.TrimSpace(loc)
	}

	return info
}

// extractName scans the first lines for a strict name shape: 2-4 capitalized
// words, no digits, no "@", and none of the resume-metadata words. The first
// qualifying line wins.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > maxNameScanLines {
		lines = lines[:maxNameScanLines]
	}

	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		if candidate == "" || len(candidate) > 60 {
			continue
		}
		if strings.ContainsAny(candidate, "@0123456789") {
			continue
		}
		lower := strings.ToLower(candidate)
		if containsAnyWord(lower, metadataWords) {
			continue
		}
		// Accept ALL-CAPS header names by title-casing before the shape check
		shaped := candidate
		if candidate == strings.ToUpper(candidate) {
			shaped = titleCase(candidate)
		}
		if nameShape.MatchString(shaped) {
			return shaped
		}
	}
	return ""
}

// extractEmail returns the first email-shaped token that also passes the
// strict validation pattern.
func extractEmail(text string) string {
	for _, match := range emailSearch.FindAllString(text, -1) {
		match = strings.Trim(match, ".,;")
		if EmailPattern.MatchString(match) {
			return match
		}
	}
	return ""
}

// extractLinkedIn normalizes any linkedin.com/in/ variant to a canonical URL.
// Handles shorter than 3 characters or containing "@"/".com" are rejected.
func extractLinkedIn(text string) string {
	m := linkedinPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	handle := strings.Trim(m[1], "/")
	if len(handle) < 3 || strings.Contains(handle, "@") || strings.Contains(strings.ToLower(handle), ".com") {
		return ""
	}
	return "https://linkedin.com/in/" + handle
}

// portfolioTLDs limits bare-domain portfolio matches; "node.js" and similar
// dotted tokens must not be mistaken for websites. Explicit http:// or www.
// prefixes bypass the allowlist.
var portfolioTLDs = map[string]bool{
	"com": true, "net": true, "org": true, "io": true, "dev": true,
	"me": true, "co": true, "app": true, "site": true, "tech": true,
}

// extractPortfolio matches a generic URL/domain that is not a LinkedIn URL
// and not an email domain fragment.
func extractPortfolio(text, _ string) string {
	for _, m := range urlPattern.FindAllStringSubmatch(text, -1) {
		full, domain := m[0], strings.ToLower(m[1])
		if strings.Contains(domain, "linkedin.com") {
			continue
		}
		// Skip the domain part of an email address
		idx := strings.Index(text, full)
		if idx > 0 && text[idx-1] == '@' {
			continue
		}
		lower := strings.ToLower(full)
		explicit := strings.HasPrefix(lower, "http") || strings.HasPrefix(lower, "www.")
		if !explicit {
			host := domain
			if i := strings.IndexByte(host, '/'); i >= 0 {
				host = host[:i]
			}
			tld := host[strings.LastIndexByte(host, '.')+1:]
			if !portfolioTLDs[tld] {
				continue
			}
		}
		if strings.HasPrefix(lower, "http") {
			return full
		}
		return "https://" + strings.Trim(full, ".,;")
	}
	return ""
}

// containsAnyWord reports whether any needle appears in the haystack.
func containsAnyWord(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
