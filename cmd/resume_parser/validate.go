package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <parse-result.json>",
	Short: "Validate a serialized parse result against its JSON schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.ValidateAgainstFile(schemas.ParseResultSchema, string(data)); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
