package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config or PORT env)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	merged := cfg.MergeWithDefaults(config.Config{Port: portFromEnv()})
	if err := merged.Validate(); err != nil {
		return err
	}

	// CLI flag wins over config and environment
	port := merged.Port
	if servePort != 0 {
		port = servePort
	}

	fmt.Fprintf(cmd.OutOrStdout(), "resume_parser API listening on :%d\n", port)
	return server.New(server.Config{Port: port}).Start()
}

// portFromEnv reads PORT, returning 0 when unset or malformed.
func portFromEnv() int {
	raw := os.Getenv("PORT")
	if raw == "" {
		return 0
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return port
}
