package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/observability"
)

var parseVerbose bool

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume file (txt, pdf, docx) into structured JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "print a human-readable summary instead of raw JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	text, err := extraction.ExtractFromFilename(path, data)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", path, err)
	}

	parser := extract.NewParser(nil)
	result := parser.ParseResumeText(text)

	if parseVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintParseResult(result)
		printer.PrintSuggestions(result.Suggestions)
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
