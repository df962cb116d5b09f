// Package keywords provides the static per-industry keyword taxonomy used by
// the content enhancer and the industry detector. The taxonomy is embedded at
// compile time, loaded once, and never mutated, so a Bank is safe for
// unlimited concurrent readers.
package keywords

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-parser/internal/types"
)

//go:embed industries.json
var industriesJSON []byte

// GeneralIndustry is the fallback industry used when detection scores zero.
const GeneralIndustry = "general"

// searchCapPerCategory bounds the number of matches returned per category by Search.
const searchCapPerCategory = 10

// Bank is an immutable industry keyword lookup table.
type Bank struct {
	industries map[string]types.IndustryKeywords
	ordered    []string // industry IDs, sorted; fixes detector tie-break order
}

var (
	defaultBank *Bank
	defaultOnce sync.Once
)

// Default returns the process-wide Bank loaded from the embedded taxonomy.
// The load happens once; a malformed embedded file is a build defect and
// panics at first use.
func Default() *Bank {
	defaultOnce.Do(func() {
		bank, err := Load(industriesJSON)
		if err != nil {
			panic(fmt.Sprintf("failed to load embedded industry keywords: %v", err))
		}
		defaultBank = bank
	})
	return defaultBank
}

// Load parses a keyword taxonomy from JSON. Exposed so tests can construct
// reduced banks.
func Load(data []byte) (*Bank, error) {
	var industries map[string]types.IndustryKeywords
	if err := json.Unmarshal(data, &industries); err != nil {
		return nil, fmt.Errorf("failed to parse industry keywords JSON: %w", err)
	}
	return NewBank(industries), nil
}

// NewBank builds a Bank from an in-memory taxonomy. The map is copied so the
// Bank stays immutable even if the caller mutates its argument afterwards.
func NewBank(industries map[string]types.IndustryKeywords) *Bank {
	copied := make(map[string]types.IndustryKeywords, len(industries))
	ordered := make([]string, 0, len(industries))
	for name, kw := range industries {
		copied[strings.ToLower(name)] = kw
		ordered = append(ordered, strings.ToLower(name))
	}
	sort.Strings(ordered)
	return &Bank{industries: copied, ordered: ordered}
}

// Get returns the keyword set for an industry, or ok=false when the industry
// is unknown. Lookup is case-insensitive.
func (b *Bank) Get(industry string) (types.IndustryKeywords, bool) {
	kw, ok := b.industries[strings.ToLower(strings.TrimSpace(industry))]
	return kw, ok
}

// List returns all industry IDs in sorted order. This order is also the
// detector's documented tie-break order.
func (b *Bank) List() []string {
	out := make([]string, len(b.ordered))
	copy(out, b.ordered)
	return out
}

// Search finds action verbs, skills, and tools containing the query as a
// case-insensitive substring. When industry is empty all industries are
// searched. Results are deduplicated and capped per category.
func (b *Bank) Search(query, industry string) types.KeywordSearchResult {
	result := types.KeywordSearchResult{
		ActionVerbs: []string{},
		Skills:      []string{},
		Tools:       []string{},
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return result
	}

	targets := b.ordered
	if industry != "" {
		if _, ok := b.Get(industry); !ok {
			return result
		}
		targets = []string{strings.ToLower(strings.TrimSpace(industry))}
	}

	seenVerbs := make(map[string]bool)
	seenSkills := make(map[string]bool)
	seenTools := make(map[string]bool)
	for _, id := range targets {
		kw := b.industries[id]
		result.ActionVerbs = appendMatches(result.ActionVerbs, kw.ActionVerbs, query, seenVerbs)
		result.Skills = appendMatches(result.Skills, kw.Skills, query, seenSkills)
		result.Tools = appendMatches(result.Tools, kw.Tools, query, seenTools)
	}

	return result
}

// appendMatches appends candidates containing query, skipping duplicates and
// respecting the per-category cap.
func appendMatches(dst, candidates []string, query string, seen map[string]bool) []string {
	for _, c := range candidates {
		if len(dst) >= searchCapPerCategory {
			break
		}
		lower := strings.ToLower(c)
		if seen[lower] || !strings.Contains(lower, query) {
			continue
		}
		seen[lower] = true
		dst = append(dst, c)
	}
	return dst
}
