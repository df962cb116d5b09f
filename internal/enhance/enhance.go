// Package enhance rewrites weak, informal resume phrasing into quantified,
// industry-appropriate professional language using the keyword bank.
package enhance

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/keywords"
	"github.com/jonathan/resume-parser/internal/types"
)

// weakVerbs are low-specificity verbs and phrases targeted for replacement.
// Longer phrases come first so "worked on" is consumed before "worked".
var weakVerbs = []string{
	"was responsible for", "is responsible for", "responsible for",
	"worked on", "worked with", "worked", "dealt with", "helped out",
	"helped", "assisted with", "did", "made", "fixed", "fix", "used",
	"handled", "took care of", "tried to",
}

// quantificationPattern detects existing numeric, percentage, currency, or
// {X} placeholder tokens; their presence gates off quantification insertion.
var quantificationPattern = regexp.MustCompile(`\d|%|\$|\{X\}`)

// suggestionCap bounds each list surfaced in EnhancementSuggestions.
const suggestionCap = 5

// Enhancer applies the ordered enhancement steps. The randomness source is
// injected so tests can seed it and assert exact outputs.
type Enhancer struct {
	bank *keywords.Bank
	rng  *rand.Rand
}

// NewEnhancer creates an Enhancer over the given bank; nil uses the embedded
// default taxonomy. A nil rng is seeded from the clock.
func NewEnhancer(bank *keywords.Bank, rng *rand.Rand) *Enhancer {
	if bank == nil {
		bank = keywords.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enhancer{bank: bank, rng: rng}
}

// Enhance rewrites a free-text snippet for the given industry and experience
// level (default entry). Each applied step appends a human-readable entry to
// the improvements log; an unknown industry degrades to returning the snippet
// unchanged with an empty log.
func (e *Enhancer) Enhance(snippet, industry, level string) *types.EnhancementResult {
	result := &types.EnhancementResult{
		EnhancedText: snippet,
		Improvements: []string{},
	}

	kw, ok := e.bank.Get(industry)
	if !ok {
		return result
	}
	if level == "" {
		level = types.LevelEntry
	}

	text := strings.TrimSpace(snippet)
	if text == "" {
		return result
	}

	// 1. Template match: first matching, applicable template replaces the
	// text wholesale
	if rewritten, name, ok := e.applyTemplate(text, industry, level); ok {
		text = rewritten
		result.Improvements = append(result.Improvements, fmt.Sprintf("Rewrote using the %s template", name))
	} else {
		// 2. Weak-verb substitution only runs when no template applied
		var replaced []string
		text, replaced = e.replaceWeakVerbs(text, kw.ActionVerbs)
		for _, pair := range replaced {
			result.Improvements = append(result.Improvements, fmt.Sprintf("Replaced weak phrasing %s", pair))
		}
	}

	// 3. Industry context injection
	if clause, ok := industryClause(text, industry); ok {
		text = strings.TrimRight(text, ". ") + clause
		result.Improvements = append(result.Improvements, "Added industry-specific context")
	}

	// 4. Quantification insertion, skipped when the text already carries a
	// numeric token or placeholder
	if !quantificationPattern.MatchString(text) {
		text = insertQuantification(text)
		result.Improvements = append(result.Improvements, "Added a quantification placeholder to anchor a concrete metric")
	}

	// 5. Level-based framing for senior and executive contexts
	if (level == types.LevelSenior || level == types.LevelExecutive) && !strings.HasPrefix(strings.ToLower(text), "led") {
		text = "Led and " + strings.ToLower(text[:1]) + text[1:]
		result.Improvements = append(result.Improvements, "Framed with leadership language for seniority level")
	}

	result.EnhancedText = text
	result.Suggestions = e.buildSuggestions(kw)
	return result
}

// applyTemplate tries the content templates in order and applies the first
// matching, applicable one with a randomly chosen rewrite.
func (e *Enhancer) applyTemplate(text, industry, level string) (string, string, bool) {
	for _, tmpl := range contentTemplates {
		if !tmpl.applicable(industry, level) {
			continue
		}
		m := tmpl.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		rewrite := tmpl.rewrites[e.rng.Intn(len(tmpl.rewrites))]
		return strings.ReplaceAll(rewrite, "{phrase}", strings.TrimSpace(m[1])), tmpl.name, true
	}
	return "", "", false
}

// replaceWeakVerbs substitutes each weak verb occurrence with an action verb
// drawn from the industry list. Returns the rewritten text and "old -> new"
// descriptions for the improvements log.
func (e *Enhancer) replaceWeakVerbs(text string, actionVerbs []string) (string, []string) {
	if len(actionVerbs) == 0 {
		return text, nil
	}

	var replaced []string
	for _, weak := range weakVerbs {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(weak) + `\b`)
		if !pattern.MatchString(text) {
			continue
		}
		verb := actionVerbs[e.rng.Intn(len(actionVerbs))]
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			return matchCase(verb, match)
		})
		replaced = append(replaced, fmt.Sprintf("%q with %q", weak, verb))
	}
	return text, replaced
}

// matchCase capitalizes the replacement when the original token was
// capitalized, so sentence-leading verbs stay sentence-cased.
func matchCase(replacement, original string) string {
	if original != "" && original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}

// industryClause returns a context clause for trade and technical phrasing
// cues, e.g. code compliance for plumbing installation language.
func industryClause(text, industry string) (string, bool) {
	lower := strings.ToLower(text)
	switch industry {
	case "plumbing":
		if strings.Contains(lower, "install") || strings.Contains(lower, "repair") || strings.Contains(lower, "pipe") {
			return " in compliance with local plumbing codes", true
		}
	case "electrical":
		if strings.Contains(lower, "wir") || strings.Contains(lower, "install") || strings.Contains(lower, "panel") {
			return " per NEC code requirements", true
		}
	case "hvac":
		if strings.Contains(lower, "install") || strings.Contains(lower, "system") || strings.Contains(lower, "maintain") {
			return ", improving system efficiency and reliability", true
		}
	case "technology":
		if strings.Contains(lower, "system") || strings.Contains(lower, "application") || strings.Contains(lower, "service") {
			return ", improving performance and maintainability", true
		}
	}
	return "", false
}

// insertQuantification appends a {X} placeholder keyed to a content cue, or a
// generic completion-rate clause when no cue is present.
func insertQuantification(text string) string {
	lower := strings.ToLower(text)
	base := strings.TrimRight(text, ". ")
	switch {
	case strings.Contains(lower, "customer") || strings.Contains(lower, "client"):
		return base + ", serving {X}+ customers"
	case strings.Contains(lower, "project"):
		return base + " across {X} projects"
	case strings.Contains(lower, "system") || strings.Contains(lower, "unit") || strings.Contains(lower, "installation"):
		return base + " on {X}+ systems"
	default:
		return base + ", achieving a {X}% completion rate"
	}
}

// buildSuggestions surfaces capped keyword-bank material for follow-up edits.
func (e *Enhancer) buildSuggestions(kw types.IndustryKeywords) types.EnhancementSuggestions {
	return types.EnhancementSuggestions{
		ActionVerbs:    capList(kw.ActionVerbs, suggestionCap),
		Skills:         capList(kw.Skills, suggestionCap),
		Achievements:   capList(kw.AchievementTemplates, suggestionCap),
		Certifications: capList(kw.Certifications, suggestionCap),
	}
}

// capList returns at most n items from list without mutating it.
func capList(list []string, n int) []string {
	if len(list) <= n {
		return append([]string(nil), list...)
	}
	return append([]string(nil), list[:n]...)
}
