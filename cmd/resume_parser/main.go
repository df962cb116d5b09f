// Package main provides the entry point for the resume parser CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Resume parsing and content enhancement toolkit",
	Long:  "resume_parser extracts structured data from resume text and rewrites weak phrasing into quantified, industry-appropriate language.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
