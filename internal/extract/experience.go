package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/normalize"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// minFieldLength is the validity floor for company and title: entries with
	// either field at or below this length are discarded.
	minFieldLength = 2
	// minAchievementLength rejects noise lines after bullet stripping.
	minAchievementLength = 10

	placeholderAchievement = "Achievements to be detailed"
	placeholderDescription = "Role description to be added"
)

// PresentSentinel is the end-date value used for current positions.
const PresentSentinel = "Present"

var (
	dateRangePattern = regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:-|–|—|to)\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current)`)
	dateOnlyLine     = regexp.MustCompile(`(?i)^\s*(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+)?\d{4}\s*(?:-|–|—|to)\s*(?:(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+)?\d{4}|present|current)\s*$`)
	titleAtCompany   = regexp.MustCompile(`^(.{3,60}?)\s+at\s+(.{3,60}?)(?:\s*[-–—]\s*(.+))?$`)
	dashSeparated    = regexp.MustCompile(`^(.{3,60}?)\s*[-–—|]\s*(.{3,60}?)(?:\s*[-–—|,]\s*(.+))?$`)
	titleCommaCo     = regexp.MustCompile(`^(.{3,60}?),\s*(.{3,60})$`)
)

// achievementCues open an achievement line when no bullet glyph is present.
var achievementCues = []string{
	"responsible for", "managed", "led", "developed", "built", "created",
	"implemented", "designed", "improved", "increased", "reduced", "delivered",
	"coordinated", "maintained", "installed", "repaired", "achieved",
}

// expState is the experience scanner's state.
type expState int

const (
	expScanning   expState = iota // looking for an entry-start line
	expCollecting                 // inside an entry, gathering achievements
)

// ExtractExperience walks the EXPERIENCE section (or the full text when the
// section is missing) with a small state machine. Entry boundaries are
// recognized by a priority-ordered set of line shapes; achievement lines by a
// leading bullet or a strong-verb cue. Opening a new entry flushes the
// previous one, which is kept only when company and title are both
// non-trivial.
func ExtractExperience(doc *types.ParsedDocument) []types.WorkExperience {
	text := doc.Section(sections.SectionExperience)
	lines := strings.Split(text, "\n")

	var (
		results []types.WorkExperience
		open    *types.WorkExperience
		state   = expScanning
		pending string // date range seen on its own line, awaiting a Title • Company line
	)

	flushEntry := func() {
		if open == nil {
			return
		}
		if entry, ok := finalizeEntry(*open); ok {
			results = append(results, entry)
		}
		open = nil
		state = expScanning
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// A section-style header line ends the current entry (full-text
		// fallback can run past the experience block)
		if isSectionBoundary(trimmed) {
			flushEntry()
			pending = ""
			continue
		}

		// A bare date range announces that the next line names the role
		if dateOnlyLine.MatchString(trimmed) {
			pending = trimmed
			continue
		}

		if entry, ok := matchEntryStart(trimmed, pending); ok {
			flushEntry()
			open = &entry
			state = expCollecting
			pending = ""
			continue
		}
		pending = ""

		if state == expCollecting && open != nil {
			if achievement, ok := matchAchievement(trimmed); ok {
				open.Achievements = append(open.Achievements, achievement)
			} else if open.JobDescription == "" && len(open.Achievements) == 0 && len(trimmed) > minAchievementLength {
				open.JobDescription = trimmed
			}
		}
	}
	flushEntry()

	return results
}

// matchEntryStart tries the entry-boundary shapes in priority order:
// "Company - Title - Dates", "Title at Company - Dates", a pending date line
// followed by "Title • Company", then the undated "Company - Title" /
// "Title, Company" pairs.
func matchEntryStart(line, pendingDates string) (types.WorkExperience, bool) {
	// Bullet lines are achievements, never entry starts
	if strings.HasPrefix(line, normalize.Bullet) {
		return types.WorkExperience{}, false
	}

	// "Title at Company - Dates" (and undated "Title at Company")
	if m := titleAtCompany.FindStringSubmatch(line); m != nil && !strings.Contains(strings.ToLower(m[1]), "experience") {
		entry := types.WorkExperience{JobTitle: strings.TrimSpace(m[1]), CompanyName: strings.TrimSpace(m[2])}
		entry.StartDate, entry.EndDate = splitDateRange(m[3])
		if entry.StartDate == "" && pendingDates != "" {
			entry.StartDate, entry.EndDate = splitDateRange(pendingDates)
		}
		return entry, looksLikeEntry(entry)
	}

	// Pending date line followed by "Title • Company"
	if pendingDates != "" && strings.Contains(line, normalize.Bullet) {
		parts := strings.SplitN(line, normalize.Bullet, 2)
		if len(parts) == 2 && strings.TrimSpace(parts[0]) != "" {
			entry := types.WorkExperience{
				JobTitle:    strings.TrimSpace(parts[0]),
				CompanyName: strings.TrimSpace(parts[1]),
			}
			entry.StartDate, entry.EndDate = splitDateRange(pendingDates)
			return entry, looksLikeEntry(entry)
		}
	}

	// "Company - Title - Dates" / "Company - Title"
	if m := dashSeparated.FindStringSubmatch(line); m != nil {
		first, second := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		dates := strings.TrimSpace(m[3])
		// When the trailing segment is not date-like, treat the whole tail as
		// part of the second field split (e.g. "Acme Inc - Software Engineer")
		if dates != "" && !dateRangePattern.MatchString(dates) && !regexp.MustCompile(`\d{4}`).MatchString(dates) {
			second = second + " - " + dates
			dates = ""
		}
		entry := assignCompanyTitle(first, second)
		entry.StartDate, entry.EndDate = splitDateRange(dates)
		if entry.StartDate == "" && pendingDates != "" {
			entry.StartDate, entry.EndDate = splitDateRange(pendingDates)
		}
		return entry, looksLikeEntry(entry)
	}

	// "Title, Company" (lowest priority, no date)
	if m := titleCommaCo.FindStringSubmatch(line); m != nil {
		first, second := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
		if containsTitleNoun(first) && !containsTitleNoun(second) {
			entry := types.WorkExperience{JobTitle: first, CompanyName: second}
			return entry, looksLikeEntry(entry)
		}
	}

	return types.WorkExperience{}, false
}

// assignCompanyTitle decides which dash-separated segment is the title by
// checking the title-noun dictionary; the default order is Company - Title.
func assignCompanyTitle(first, second string) types.WorkExperience {
	if containsTitleNoun(first) && !containsTitleNoun(second) {
		return types.WorkExperience{JobTitle: first, CompanyName: second}
	}
	return types.WorkExperience{CompanyName: first, JobTitle: second}
}

// looksLikeEntry filters boundary matches that captured prose rather than a
// role line: at least one side must look like a job title.
func looksLikeEntry(entry types.WorkExperience) bool {
	if len(entry.CompanyName) <= minFieldLength || len(entry.JobTitle) <= minFieldLength {
		return false
	}
	return containsTitleNoun(entry.JobTitle) || entry.StartDate != ""
}

// containsTitleNoun reports whether the text names a known job-title noun.
func containsTitleNoun(text string) bool {
	lower := strings.ToLower(text)
	for _, noun := range titleNouns {
		if idx := strings.Index(lower, noun); idx >= 0 && isWordBoundary(lower, idx, len(noun)) {
			return true
		}
	}
	return false
}

// matchAchievement recognizes a bullet- or cue-led achievement line and
// returns it with the bullet stripped. Lines at or below the minimum length
// are rejected as noise.
func matchAchievement(line string) (string, bool) {
	stripped := line
	isBullet := false
	if strings.HasPrefix(stripped, normalize.Bullet) {
		stripped = strings.TrimSpace(strings.TrimPrefix(stripped, normalize.Bullet))
		isBullet = true
	}
	if len(stripped) <= minAchievementLength {
		return "", false
	}
	if isBullet {
		return stripped, true
	}

	lower := strings.ToLower(stripped)
	for _, cue := range achievementCues {
		if strings.HasPrefix(lower, cue) {
			return stripped, true
		}
	}
	return "", false
}

// finalizeEntry enforces the validity invariant and backfills placeholders so
// a retained entry is never structurally empty.
func finalizeEntry(entry types.WorkExperience) (types.WorkExperience, bool) {
	entry.CompanyName = strings.TrimSpace(entry.CompanyName)
	entry.JobTitle = strings.TrimSpace(entry.JobTitle)
	if len(entry.CompanyName) <= minFieldLength || len(entry.JobTitle) <= minFieldLength {
		return entry, false
	}

	if len(entry.Achievements) == 0 {
		entry.Achievements = []string{placeholderAchievement}
		if entry.JobDescription == "" {
			entry.JobDescription = placeholderDescription
		}
	}
	return entry, true
}

// isSectionBoundary reports whether a line reads as the start of another
// resume section rather than entry content.
func isSectionBoundary(line string) bool {
	if len(line) > 30 {
		return false
	}
	upper := strings.ToUpper(line)
	if line != upper {
		return false
	}
	for _, name := range []string{"EDUCATION", "SKILLS", "PROJECTS", "CERTIFICATIONS", "AWARDS", "VOLUNTEER", "SUMMARY"} {
		if strings.Contains(upper, name) {
			return true
		}
	}
	return false
}

// splitDateRange splits "2019 - 2022" style ranges into start and end dates,
// mapping current/present variants to the Present sentinel.
func splitDateRange(dates string) (string, string) {
	dates = strings.TrimSpace(dates)
	if dates == "" {
		return "", ""
	}
	m := dateRangePattern.FindStringSubmatch(dates)
	if m == nil {
		// A single year still counts as a start date
		if y := regexp.MustCompile(`\d{4}`).FindString(dates); y != "" {
			return y, ""
		}
		return "", ""
	}
	start := strings.TrimSpace(m[1])
	end := strings.TrimSpace(m[2])
	if eq := strings.ToLower(end); eq == "present" || eq == "current" {
		end = PresentSentinel
	}
	return start, end
}

// HasPlaceholderAchievements reports whether an entry still carries the
// backfilled placeholder instead of real achievements. Used by the confidence
// scorer and the suggestion generator.
func HasPlaceholderAchievements(entry types.WorkExperience) bool {
	return len(entry.Achievements) == 1 && entry.Achievements[0] == placeholderAchievement
}
