package enhance

import "regexp"

// contentTemplate rewrites a whole snippet when its pattern matches and the
// industry/level gates allow it. The first capture group is substituted for
// {phrase} in a randomly chosen rewrite.
type contentTemplate struct {
	name       string
	pattern    *regexp.Regexp
	rewrites   []string // {phrase} is replaced by the captured phrase
	industries []string // empty means any industry
	levels     []string // empty means any level
}

// contentTemplates are tried in order; the first matching, applicable
// template replaces the text wholesale.
var contentTemplates = []contentTemplate{
	{
		name:    "team-membership",
		pattern: regexp.MustCompile(`(?i)^i?\s*(?:was|am)\s+(?:a\s+)?(?:part|member)\s+of\s+(?:a\s+|the\s+)?(.+?)\.?$`),
		rewrites: []string{
			"Collaborated within {phrase} to deliver measurable results",
			"Contributed as a key member of {phrase}, driving {X}% improvement in team output",
		},
	},
	{
		name:    "customer-facing",
		pattern: regexp.MustCompile(`(?i)^i?\s*(?:talked|spoke)\s+(?:to|with)\s+(.+?)\.?$`),
		rewrites: []string{
			"Consulted directly with {phrase} to identify needs and deliver solutions",
			"Built relationships with {phrase}, maintaining {X}% satisfaction ratings",
		},
	},
	{
		name:    "generic-responsibility",
		pattern: regexp.MustCompile(`(?i)^i?\s*was\s+in\s+charge\s+of\s+(.+?)\.?$`),
		rewrites: []string{
			"Directed {phrase} with full operational ownership",
			"Oversaw {phrase}, delivering consistent results across {X} engagements",
		},
		levels: []string{"senior", "executive"},
	},
	{
		name:    "trade-install",
		pattern: regexp.MustCompile(`(?i)^i?\s*put\s+in\s+(.+?)\.?$`),
		rewrites: []string{
			"Installed {phrase} to specification with zero callbacks",
			"Completed installation of {phrase} across {X} job sites",
		},
		industries: []string{"plumbing", "hvac", "electrical", "construction"},
	},
}

// applicable reports whether the template's gates allow this context.
func (t contentTemplate) applicable(industry, level string) bool {
	if len(t.industries) > 0 && !contains(t.industries, industry) {
		return false
	}
	if len(t.levels) > 0 && !contains(t.levels, level) {
		return false
	}
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
