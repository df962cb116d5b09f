// Package normalize cleans raw extracted resume text before segmentation.
// Document extractors emit inconsistent line endings, bullet glyphs, and
// section header phrasings; everything downstream assumes the canonical forms
// produced here.
package normalize

import (
	"regexp"
	"strings"
)

// Bullet is the canonical bullet character every glyph variant is rewritten to.
const Bullet = "•"

// bulletGlyphs are the bullet characters seen in text extracted from PDF and
// DOCX resumes. The hyphen and asterisk variants are only treated as bullets
// when they lead a line (see cleanLine).
var bulletGlyphs = []string{"·", "▪", "▫", "◦", "‣", "⁃", "∙", "●", "○"}

// headerSynonyms maps whole-line section header phrasings to their canonical
// uppercase form. Matching is case-insensitive against the trimmed line.
var headerSynonyms = map[string]string{
	"employment history":        "EXPERIENCE",
	"work history":              "EXPERIENCE",
	"work experience":           "EXPERIENCE",
	"professional experience":   "EXPERIENCE",
	"professional background":   "EXPERIENCE",
	"career history":            "EXPERIENCE",
	"relevant experience":       "EXPERIENCE",
	"academic background":       "EDUCATION",
	"academic history":          "EDUCATION",
	"education and training":    "EDUCATION",
	"educational background":    "EDUCATION",
	"professional summary":      "SUMMARY",
	"career summary":            "SUMMARY",
	"career objective":          "SUMMARY",
	"objective":                 "SUMMARY",
	"profile":                   "SUMMARY",
	"about me":                  "SUMMARY",
	"technical skills":          "SKILLS",
	"core competencies":         "SKILLS",
	"areas of expertise":        "SKILLS",
	"skills and abilities":      "SKILLS",
	"key skills":                "SKILLS",
	"licenses and certifications": "CERTIFICATIONS",
	"certifications and licenses": "CERTIFICATIONS",
	"personal information":      "PERSONAL",
	"contact information":       "PERSONAL",
	"contact details":           "PERSONAL",
	"volunteer experience":      "VOLUNTEER",
	"volunteer work":            "VOLUNTEER",
	"community involvement":     "VOLUNTEER",
	"honors and awards":         "AWARDS",
	"awards and honors":         "AWARDS",
	"personal projects":         "PROJECTS",
	"selected projects":         "PROJECTS",
}

var excessiveBlankLines = regexp.MustCompile(`\n{3,}`)

// Text normalizes raw extracted resume text. It never fails; empty input
// yields an empty string.
func Text(raw string) string {
	if raw == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF/CR -> LF)
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 2. Process each line: glyphs, whitespace, header synonyms
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}
	text = strings.Join(cleaned, "\n")

	// 3. Collapse 3+ consecutive newlines to 2, preserving single blank-line
	// separators between sections
	text = excessiveBlankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// cleanLine normalizes a single line while preserving its structure.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Strip stray control characters left behind by document extraction
	line = stripControlChars(line)

	// Unify bullet glyphs
	for _, glyph := range bulletGlyphs {
		line = strings.ReplaceAll(line, glyph, Bullet)
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		trimmed = Bullet + " " + strings.TrimSpace(trimmed[2:])
	}

	// Rewrite recognized section header synonyms to canonical uppercase form
	// using whole-line, case-insensitive matching
	key := strings.ToLower(strings.TrimRight(trimmed, ":"))
	if canonical, ok := headerSynonyms[key]; ok {
		return canonical
	}

	// Collapse internal runs of spaces/tabs
	return strings.Join(strings.Fields(trimmed), " ")
}

// stripControlChars removes non-printing characters other than tab.
func stripControlChars(line string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, line)
}
