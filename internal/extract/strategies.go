// Package extract populates structured resume records from segmented text.
// Each field runs an explicit ordered list of named extraction strategies;
// the first strategy that succeeds wins, which makes priority order testable
// instead of implicit in code layout.
package extract

// strategy is one named pattern-matching attempt for a single field.
// apply returns the extracted value and whether the strategy succeeded.
type strategy struct {
	name  string
	apply func(text string) (string, bool)
}

// runStrategies tries each strategy in order and returns the first success.
func runStrategies(text string, strategies []strategy) (string, string) {
	for _, s := range strategies {
		if value, ok := s.apply(text); ok {
			return value, s.name
		}
	}
	return "", ""
}
