package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	minSkillLength = 3
	maxSkillLength = 50
	maxSkillCount  = 20
)

// skillNormalizations maps common skill name variants to canonical names.
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"ms excel":   "Excel",
	"sql":        "SQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"css":        "CSS",
	"html":       "HTML",
	"mysql":      "MySQL",
	"mongodb":    "MongoDB",
	"autocad":    "AutoCAD",
	"quickbooks": "QuickBooks",
}

// technicalVocabulary and softVocabulary classify candidates; anything that
// matches neither but matches industryVocabulary (or nothing) falls back to
// the industry category.
var technicalVocabulary = []string{
	"python", "java", "javascript", "typescript", "go", "c++", "c#", "sql",
	"html", "css", "react", "angular", "vue", "node.js", "docker", "kubernetes",
	"aws", "azure", "gcp", "git", "linux", "terraform", "jenkins", "postgresql",
	"mysql", "mongodb", "redis", "excel", "tableau", "power bi", "salesforce",
	"autocad", "quickbooks",
}

var softVocabulary = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"time management", "adaptability", "collaboration", "critical thinking",
	"attention to detail", "conflict resolution", "active listening",
	"organization", "negotiation", "mentoring", "public speaking",
}

var industryVocabulary = []string{
	"project management", "customer service", "patient care", "pipe installation",
	"hvac maintenance", "electrical wiring", "blueprint reading", "budgeting",
	"financial analysis", "lead generation", "account management", "scheduling",
	"inventory management", "quality control", "osha compliance", "forecasting",
}

// invalidSkills are frequent tokenization artifacts that pass the shape
// filters but are never skills.
var invalidSkills = []string{
	"and", "the", "with", "for", "years", "experience", "skills", "etc",
	"various", "other", "including", "such as", "references", "available",
}

var (
	skillLevelLine    = regexp.MustCompile(`(?i)^(.{3,50}?)\s*[-–:]\s*(beginner|intermediate|advanced|expert)\s*$`)
	skillCategoryLine = regexp.MustCompile(`(?i)^([A-Za-z][A-Za-z /&]{2,30})\s*:\s*(.+)$`)
	pureNumber        = regexp.MustCompile(`^[\d.,%$+\-\s]+$`)
	addressFragment   = regexp.MustCompile(`(?i)\b(street|avenue|suite|apt\.?|zip)\b|\d{5}`)
)

// ExtractSkills runs four independent strategies, unions their output, and
// deduplicates case-insensitively. The result is capped at maxSkillCount.
// Strategy order decides which duplicate survives: explicit-level lines carry
// the most signal, so they run first.
func ExtractSkills(doc *types.ParsedDocument) []types.Skill {
	var candidates []types.Skill
	// Line-oriented strategies only make sense inside an explicit SKILLS
	// section; tokenizing a whole unsegmented resume on commas yields noise
	if doc.HasSection(sections.SectionSkills) {
		sectionText := doc.Sections[sections.SectionSkills].Content
		candidates = append(candidates, skillsFromLevelLines(sectionText)...)
		candidates = append(candidates, skillsFromCategoryGroups(sectionText)...)
		candidates = append(candidates, skillsFromSectionTokens(sectionText)...)
	}
	candidates = append(candidates, skillsFromVocabulary(doc.Normalized)...)

	seen := make(map[string]bool)
	results := make([]types.Skill, 0, maxSkillCount)
	for _, candidate := range candidates {
		name := canonicalSkillName(candidate.Name)
		if !validSkillName(name) {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		candidate.Name = name
		if candidate.Category == "" {
			candidate.Category = classifySkill(name)
		}
		if candidate.Level == "" {
			candidate.Level = types.SkillLevelIntermediate
		}
		results = append(results, candidate)
		if len(results) >= maxSkillCount {
			break
		}
	}
	return results
}

// skillsFromLevelLines matches explicit "Skill - Level" lines.
func skillsFromLevelLines(text string) []types.Skill {
	var out []types.Skill
	for _, line := range strings.Split(text, "\n") {
		line = stripBullet(line)
		if m := skillLevelLine.FindStringSubmatch(line); m != nil {
			out = append(out, types.Skill{
				Name:  strings.TrimSpace(m[1]),
				Level: strings.ToLower(m[2]),
			})
		}
	}
	return out
}

// skillsFromCategoryGroups matches "Category: skill1, skill2" labeled groups.
// A label naming a known category pins the classification for its skills.
func skillsFromCategoryGroups(text string) []types.Skill {
	var out []types.Skill
	for _, line := range strings.Split(text, "\n") {
		line = stripBullet(line)
		m := skillCategoryLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		category := categoryFromLabel(m[1])
		for _, token := range strings.Split(m[2], ",") {
			out = append(out, types.Skill{Name: strings.TrimSpace(token), Category: category})
		}
	}
	return out
}

// categoryFromLabel maps a group label like "Technical Skills" to a category;
// unknown labels leave classification to the vocabulary lists.
func categoryFromLabel(label string) string {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "technical") || strings.Contains(lower, "programming") || strings.Contains(lower, "tools"):
		return types.SkillCategoryTechnical
	case strings.Contains(lower, "soft") || strings.Contains(lower, "interpersonal"):
		return types.SkillCategorySoft
	default:
		return ""
	}
}

// skillsFromSectionTokens tokenizes the SKILLS section on commas and bullets.
func skillsFromSectionTokens(text string) []types.Skill {
	var out []types.Skill
	for _, line := range strings.Split(text, "\n") {
		line = stripBullet(line)
		// Category-group and level lines are handled by dedicated strategies
		if skillCategoryLine.MatchString(line) || skillLevelLine.MatchString(line) {
			continue
		}
		for _, token := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == '|'
		}) {
			token = strings.TrimSpace(token)
			// A long un-delimited line is prose, not a skill token
			if token == "" || len(strings.Fields(token)) > 4 {
				continue
			}
			out = append(out, types.Skill{Name: token})
		}
	}
	return out
}

// skillsFromVocabulary scans the full text for known skills so resumes
// without a SKILLS section still yield results.
func skillsFromVocabulary(fullText string) []types.Skill {
	lower := strings.ToLower(fullText)
	var out []types.Skill
	for _, v := range technicalVocabulary {
		if containsToken(lower, v) {
			out = append(out, types.Skill{Name: v, Category: types.SkillCategoryTechnical})
		}
	}
	for _, v := range softVocabulary {
		if containsToken(lower, v) {
			out = append(out, types.Skill{Name: v, Category: types.SkillCategorySoft})
		}
	}
	for _, v := range industryVocabulary {
		if containsToken(lower, v) {
			out = append(out, types.Skill{Name: v, Category: types.SkillCategoryIndustry})
		}
	}
	return out
}

// containsToken is a word-boundary substring check.
func containsToken(haystack, needle string) bool {
	idx := strings.Index(haystack, needle)
	return idx >= 0 && isWordBoundary(haystack, idx, len(needle))
}

// canonicalSkillName normalizes a raw candidate to its canonical form,
// capitalizing single lowercase words that have no mapped variant.
func canonicalSkillName(name string) string {
	name = strings.TrimSpace(strings.Trim(name, ".,"))
	if name == "" {
		return ""
	}
	if canonical, ok := skillNormalizations[strings.ToLower(name)]; ok {
		return canonical
	}
	if name == strings.ToLower(name) && !strings.Contains(name, " ") {
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

// validSkillName applies the shape filters: length bounds, not a pure number,
// not contact-info or address fragments, not a known non-skill.
func validSkillName(name string) bool {
	if len(name) < minSkillLength || len(name) > maxSkillLength {
		return false
	}
	if pureNumber.MatchString(name) {
		return false
	}
	if emailSearch.MatchString(name) || addressFragment.MatchString(name) {
		return false
	}
	if strings.Contains(name, "@") || strings.Contains(name, "http") {
		return false
	}
	lower := strings.ToLower(name)
	for _, invalid := range invalidSkills {
		if lower == invalid {
			return false
		}
	}
	return true
}

// classifySkill assigns a category by vocabulary membership, defaulting to
// industry when no list matches.
func classifySkill(name string) string {
	lower := strings.ToLower(name)
	for _, v := range technicalVocabulary {
		if lower == v {
			return types.SkillCategoryTechnical
		}
	}
	for _, v := range softVocabulary {
		if lower == v {
			return types.SkillCategorySoft
		}
	}
	return types.SkillCategoryIndustry
}

// stripBullet removes a leading canonical bullet from a line.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), normalize.Bullet))
}
