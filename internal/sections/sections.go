// Package sections partitions normalized resume text into labeled contiguous
// blocks, one per recognized section header.
package sections

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Canonical section names produced by the segmenter.
const (
	SectionHeader         = "header" // implicit preamble before the first header
	SectionPersonal       = "PERSONAL"
	SectionSummary        = "SUMMARY"
	SectionExperience     = "EXPERIENCE"
	SectionEducation      = "EDUCATION"
	SectionSkills         = "SKILLS"
	SectionProjects       = "PROJECTS"
	SectionCertifications = "CERTIFICATIONS"
	SectionAwards         = "AWARDS"
	SectionVolunteer      = "VOLUNTEER"
)

// headerPattern pairs a canonical section name with the regex that opens it.
// Patterns are tried in order; the first match wins.
type headerPattern struct {
	name    string
	pattern *regexp.Regexp
}

// headerPatterns is the primary pass: a line must look like a standalone
// header (short, no sentence punctuation) and match one of these.
var headerPatterns = []headerPattern{
	{SectionExperience, regexp.MustCompile(`(?i)^(work\s+)?(experience|employment)\s*:?$`)},
	{SectionEducation, regexp.MustCompile(`(?i)^education\s*:?$`)},
	{SectionSkills, regexp.MustCompile(`(?i)^skills?\s*:?$`)},
	{SectionSummary, regexp.MustCompile(`(?i)^(summary|objective|profile)\s*:?$`)},
	{SectionPersonal, regexp.MustCompile(`(?i)^(personal|contact)(\s+(information|details))?\s*:?$`)},
	{SectionProjects, regexp.MustCompile(`(?i)^projects?\s*:?$`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^(certifications?|licenses?)\s*:?$`)},
	{SectionAwards, regexp.MustCompile(`(?i)^(awards?|honors?)\s*:?$`)},
	{SectionVolunteer, regexp.MustCompile(`(?i)^volunteer(ing)?\s*:?$`)},
}

// state is the segmenter's finite-state machine state: either still in the
// preamble, or inside a named section.
type state struct {
	section   string
	startLine int
	buffer    []string
}

// Segment scans normalized lines and partitions them into labeled blocks.
// A header match closes the currently open section and opens the new one.
// Lines before the first header accumulate into the "header" preamble bucket.
// If no headers are found at all the returned map contains only the preamble,
// and extractors fall back to scanning the full text.
func Segment(normalized string) map[string]types.SectionBlock {
	result := make(map[string]types.SectionBlock)
	if strings.TrimSpace(normalized) == "" {
		return result
	}

	lines := strings.Split(normalized, "\n")
	current := state{section: SectionHeader, startLine: 0}

	for i, line := range lines {
		name, matched := matchHeader(line)
		if matched && name != current.section {
			flush(result, current, i-1)
			current = state{section: name, startLine: i}
			continue
		}
		current.buffer = append(current.buffer, line)
	}
	flush(result, current, len(lines)-1)

	// Drop an empty preamble so callers can distinguish "no personal header
	// lines" from "preamble present but blank"
	if block, ok := result[SectionHeader]; ok && strings.TrimSpace(block.Content) == "" {
		delete(result, SectionHeader)
	}

	return result
}

// matchHeader runs the primary regex pass and, only when that pass found
// nothing, the softer substring cues. Running the cues second prevents a
// sentence mentioning "experience" from re-triggering a section that the
// primary pass already handles.
func matchHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 40 {
		return "", false
	}

	for _, hp := range headerPatterns {
		if hp.pattern.MatchString(trimmed) {
			return hp.name, true
		}
	}

	return matchHeaderCue(trimmed)
}

// matchHeaderCue is the secondary heuristic pass for header-like lines that
// the strict patterns missed (e.g. "EXPERIENCE & LEADERSHIP").
func matchHeaderCue(trimmed string) (string, bool) {
	// Only header-shaped lines qualify: all-caps or very short, no bullet
	if strings.HasPrefix(trimmed, "•") || strings.ContainsAny(trimmed, "@") {
		return "", false
	}
	upper := strings.ToUpper(trimmed)
	if upper != trimmed && len(strings.Fields(trimmed)) > 3 {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "experience") && !strings.Contains(lower, "education"):
		return SectionExperience, true
	case strings.Contains(lower, "education"):
		return SectionEducation, true
	case strings.Contains(lower, "skill"):
		return SectionSkills, true
	case strings.Contains(lower, "certification") || strings.Contains(lower, "license"):
		return SectionCertifications, true
	case strings.Contains(lower, "project"):
		return SectionProjects, true
	}
	return "", false
}

// flush records the open section's accumulated lines into the result map.
// Sections may be visited out of document order but each is contiguous; a
// duplicate header keeps the first occurrence's block and appends the new
// content to it.
func flush(result map[string]types.SectionBlock, s state, endLine int) {
	content := strings.TrimSpace(strings.Join(s.buffer, "\n"))
	if content == "" && s.section != SectionHeader {
		return
	}

	if existing, ok := result[s.section]; ok {
		existing.Content = existing.Content + "\n" + content
		existing.EndLine = endLine
		result[s.section] = existing
		return
	}

	result[s.section] = types.SectionBlock{
		StartLine: s.startLine,
		EndLine:   endLine,
		Content:   content,
	}
}
