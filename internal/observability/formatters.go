// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParseResult outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParseResult(result *types.ParseResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(result.PersonalInfo.FullName)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(result.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(result.PersonalInfo.Phone)))
	sb.WriteString(fmt.Sprintf("Industry:   %s\n", orDash(result.DetectedIndustry)))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", result.Confidence))
	sb.WriteString("\n")

	if len(result.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(result.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := result.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", entry.JobTitle, entry.CompanyName))
		}
		if len(result.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Skills) > 0 {
		names := make([]string, 0, len(result.Skills))
		for _, skill := range result.Skills {
			names = append(names, skill.Name)
		}
		skills := strings.Join(names, ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the remediation hints from a parse.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("SUGGESTIONS", sb.String())
}

// PrintEnhancement outputs the enhanced text and the applied improvements.
func (p *Printer) PrintEnhancement(result *types.EnhancementResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(result.EnhancedText)
	sb.WriteString("\n")

	if len(result.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		count := min(len(result.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Improvements[i]))
		}
		if len(result.Improvements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Improvements)-maxItemsToShow))
		}
	}

	p.printBox("ENHANCED TEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// orDash substitutes a dash for empty values in summaries.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
