package extract

import (
	"github.com/jonathan/resume-parser/internal/industry"
	"github.com/jonathan/resume-parser/internal/keywords"
	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

// Parser runs the full extraction pipeline. It holds only the read-only
// keyword bank, so one Parser is safe for unlimited concurrent callers.
type Parser struct {
	bank *keywords.Bank
}

// NewParser creates a Parser backed by the given keyword bank; a nil bank
// uses the embedded default taxonomy.
func NewParser(bank *keywords.Bank) *Parser {
	if bank == nil {
		bank = keywords.Default()
	}
	return &Parser{bank: bank}
}

// ParseResumeText extracts a structured ParseResult from raw resume text.
// It never fails: malformed or adversarial input degrades to empty fields and
// a low confidence score, and an unexpected panic inside an extractor is
// recovered into the fallback result.
func (p *Parser) ParseResumeText(rawText string) (result *types.ParseResult) {
	defer func() {
		if r := recover(); r != nil {
			result = fallbackResult()
		}
	}()

	doc := &types.ParsedDocument{RawText: rawText}
	doc.Normalized = normalize.Text(rawText)
	doc.Sections = sections.Segment(doc.Normalized)

	result = &types.ParseResult{
		Experience:  []types.WorkExperience{},
		Education:   []types.Education{},
		Skills:      []types.Skill{},
		Suggestions: []string{},
	}

	result.PersonalInfo = ExtractPersonalInfo(doc)
	result.Summary = ExtractSummary(doc)
	// Experience runs before education so institution matching can skip
	// lines already claimed as employers
	if experience := ExtractExperience(doc); experience != nil {
		result.Experience = experience
	}
	if education := ExtractEducation(doc, result.Experience); education != nil {
		result.Education = education
	}
	if skills := ExtractSkills(doc); skills != nil {
		result.Skills = skills
	}

	result.Confidence = ScoreConfidence(result)
	result.Suggestions = GenerateSuggestions(result)
	result.DetectedIndustry = industry.Detect(result, p.bank)

	return result
}

// DetectIndustry re-runs industry detection standalone, e.g. after a caller
// has edited the parsed record.
func (p *Parser) DetectIndustry(result *types.ParseResult) string {
	return industry.Detect(result, p.bank)
}

// fallbackResult is the degraded output for a total parse failure: all fields
// empty, confidence zero, and a single manual-entry suggestion.
func fallbackResult() *types.ParseResult {
	return &types.ParseResult{
		Experience:       []types.WorkExperience{},
		Education:        []types.Education{},
		Skills:           []types.Skill{},
		Confidence:       0,
		Suggestions:      []string{SuggestionManualEntry},
		DetectedIndustry: keywords.GeneralIndustry,
	}
}
