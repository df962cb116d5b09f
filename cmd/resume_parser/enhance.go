package main

import (
	"encoding/json"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/enhance"
	"github.com/jonathan/resume-parser/internal/observability"
)

var (
	enhanceIndustry string
	enhanceLevel    string
	enhanceSeed     int64
	enhanceVerbose  bool
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance <text>",
	Short: "Rewrite a resume bullet or cover-letter snippet for an industry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVarP(&enhanceIndustry, "industry", "i", "general", "target industry (see `industries`)")
	enhanceCmd.Flags().StringVarP(&enhanceLevel, "level", "l", "entry", "experience level: entry, mid, senior, executive")
	enhanceCmd.Flags().Int64Var(&enhanceSeed, "seed", 0, "seed for template/verb selection (0 = random)")
	enhanceCmd.Flags().BoolVarP(&enhanceVerbose, "verbose", "v", false, "print a human-readable summary instead of raw JSON")
	rootCmd.AddCommand(enhanceCmd)
}

func runEnhance(cmd *cobra.Command, args []string) error {
	var rng *rand.Rand
	if enhanceSeed != 0 {
		rng = rand.New(rand.NewSource(enhanceSeed))
	}

	enhancer := enhance.NewEnhancer(nil, rng)
	result := enhancer.Enhance(args[0], enhanceIndustry, enhanceLevel)

	if enhanceVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintEnhancement(result)
		return nil
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
