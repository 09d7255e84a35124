package main

import (
	"github.com/spf13/cobra"

	"bizreview/internal/config"
	"bizreview/internal/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bizreview",
		Short:        "REST API for businesses and their reviews",
		SilenceUsage: true,
		// Running without a subcommand serves the API, which is what the container does.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.AddCommand(serveCmd(), migrateCmd())
	return cmd
}

// loadConfig reads configuration and installs the process logger.
func loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, nil
}
