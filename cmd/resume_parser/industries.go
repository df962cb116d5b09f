package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/keywords"
)

var (
	searchQuery    string
	searchIndustry string
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List known industries, or search their keyword banks",
	RunE:  runIndustries,
}

func init() {
	industriesCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "search keywords by substring")
	industriesCmd.Flags().StringVarP(&searchIndustry, "industry", "i", "", "scope search to one industry")
	rootCmd.AddCommand(industriesCmd)
}

func runIndustries(cmd *cobra.Command, args []string) error {
	bank := keywords.Default()

	if searchQuery != "" {
		result := bank.Search(searchQuery, searchIndustry)
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	for _, id := range bank.List() {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
