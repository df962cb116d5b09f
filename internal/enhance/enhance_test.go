package enhance

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededEnhancer(seed int64) *Enhancer {
	return NewEnhancer(nil, rand.New(rand.NewSource(seed)))
}

func TestEnhance_WeakVerbReplacement(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("I helped fix pipes and helped customers.", "plumbing", "entry")

	lower := strings.ToLower(result.EnhancedText)
	assert.NotContains(t, lower, "helped")
	assert.NotContains(t, lower, " fix ")
	assert.Contains(t, result.EnhancedText, "in compliance with local plumbing codes")
	assert.Contains(t, result.EnhancedText, "{X}")
	assert.Len(t, result.Improvements, 4,
		"two verb replacements, industry context, and quantification")
}

func TestEnhance_ReplacesEveryWeakVerb(t *testing.T) {
	enhancer := seededEnhancer(99)

	result := enhancer.Enhance("I fixed pipes and helped customers with leaks", "plumbing", "entry")

	lower := strings.ToLower(result.EnhancedText)
	assert.NotContains(t, lower, "fixed")
	assert.NotContains(t, lower, "helped")
	assert.NotEmpty(t, result.Improvements)
}

func TestEnhance_UnknownIndustryUnchanged(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("I fixed pipes", "astrology", "entry")

	assert.Equal(t, "I fixed pipes", result.EnhancedText)
	assert.Empty(t, result.Improvements)
}

func TestEnhance_QuantificationSkippedWhenNumeric(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
	}{
		{"Existing count", "Repaired 25 leaks for residential buildings"},
		{"Existing percentage", "Improved installation quality by 15%"},
		{"Existing placeholder", "Completed {X} service calls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enhancer := seededEnhancer(42)
			result := enhancer.Enhance(tt.snippet, "plumbing", "entry")

			assert.LessOrEqual(t, strings.Count(result.EnhancedText, "{X}"), 1,
				"no second placeholder is inserted")
			assert.NotContains(t, result.Improvements,
				"Added a quantification placeholder to anchor a concrete metric")
		})
	}
}

func TestEnhance_QuantificationCues(t *testing.T) {
	tests := []struct {
		name     string
		snippet  string
		industry string
		expected string
	}{
		{"Customer cue", "Resolved escalations for customers", "customer-service", "serving {X}+ customers"},
		{"Project cue", "Coordinated a large renovation project", "construction", "across {X} projects"},
		{"Default completion clause", "Organized the parts inventory", "plumbing", "achieving a {X}% completion rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enhancer := seededEnhancer(42)
			result := enhancer.Enhance(tt.snippet, tt.industry, "entry")

			assert.Contains(t, result.EnhancedText, tt.expected)
		})
	}
}

func TestEnhance_SeniorLevelFraming(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("Built a deployment system", "technology", "senior")

	assert.True(t, strings.HasPrefix(result.EnhancedText, "Led and built"), result.EnhancedText)
	assert.Contains(t, result.EnhancedText, "improving performance and maintainability")
}

func TestEnhance_NoDoubleLeadershipFraming(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("Led migration of services", "technology", "executive")

	assert.True(t, strings.HasPrefix(result.EnhancedText, "Led migration"), result.EnhancedText)
	assert.NotContains(t, strings.ToLower(result.EnhancedText), "led and led")
}

func TestEnhance_TemplateRewrite(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("I was part of the support team.", "customer-service", "entry")

	assert.NotEqual(t, "I was part of the support team.", result.EnhancedText)
	assert.Contains(t, result.EnhancedText, "support team")
	require.NotEmpty(t, result.Improvements)
	assert.Contains(t, result.Improvements[0], "team-membership template")
}

func TestEnhance_SeniorOnlyTemplateGated(t *testing.T) {
	snippet := "I was in charge of the night crew"

	entry := seededEnhancer(42).Enhance(snippet, "construction", "entry")
	senior := seededEnhancer(42).Enhance(snippet, "construction", "senior")

	assert.NotContains(t, entry.Improvements, "Rewrote using the generic-responsibility template")
	require.NotEmpty(t, senior.Improvements)
	assert.Contains(t, senior.Improvements[0], "generic-responsibility template")
	assert.Contains(t, senior.EnhancedText, "night crew")
}

func TestEnhance_DeterministicWithSeed(t *testing.T) {
	first := seededEnhancer(7).Enhance("I helped fix pipes for customers", "plumbing", "mid")
	second := seededEnhancer(7).Enhance("I helped fix pipes for customers", "plumbing", "mid")

	assert.Equal(t, first.EnhancedText, second.EnhancedText)
	assert.Equal(t, first.Improvements, second.Improvements)
}

func TestEnhance_SuggestionsCapped(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("Installed fixtures", "plumbing", "entry")

	assert.LessOrEqual(t, len(result.Suggestions.ActionVerbs), 5)
	assert.LessOrEqual(t, len(result.Suggestions.Skills), 5)
	assert.LessOrEqual(t, len(result.Suggestions.Certifications), 5)
	assert.NotEmpty(t, result.Suggestions.ActionVerbs)
}

func TestEnhance_EmptySnippet(t *testing.T) {
	enhancer := seededEnhancer(42)

	result := enhancer.Enhance("", "plumbing", "entry")

	assert.Empty(t, result.EnhancedText)
	assert.Empty(t, result.Improvements)
}
