package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opsmatters/opsmatters-media-sub001/internal/app"
	"github.com/opsmatters/opsmatters-media-sub001/internal/config"
	"github.com/opsmatters/opsmatters-media-sub001/internal/logging"
)

var version = "dev"

func main() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "contentctl",
		Short: "Content ingestion for media sites",
		Long: `Loads content items from spreadsheet exports and organisation blogs,
derives summaries and video types, and prints the resulting documents.

Configuration is read from the file named by CONTENT_CONFIG and .env files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(NewIngestCommand())
	rootCmd.AddCommand(NewRoundupCommand())
	rootCmd.AddCommand(NewVideoTypeCommand())
	rootCmd.AddCommand(NewFieldsCommand())
	rootCmd.AddCommand(NewOrganisationsCommand())

	return rootCmd
}

// newApplication loads the configuration and builds the application.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := config.Load()
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	logger := logging.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	return app.New(cmd.Context(), cfg, logger)
}
