/*
Copyright © 2025 MAROUANE BOUFAROUJ <boufaroujmarouan@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/chibuka/so-importer/client"
	"github.com/chibuka/so-importer/internal/config"
	"github.com/chibuka/so-importer/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel  string
	flagLogFormat string
	flagLogFile   string
	flagAPIURL    string

	log       = zerolog.Nop()
	logCloser io.Closer
	cfg       *config.Config
	api       *client.Client
)

// NewRootCmd creates the root command of the so-importer CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "so-importer",
		Short: "Import Stack Overflow questions from the Stack Exchange API",
		Long: `so-importer - query Stack Overflow questions from your terminal

so-importer authenticates against the Stack Exchange API and retrieves
questions, filtered by date, score, tags and more.

Quick Start:
  1. Register an app:   https://stackapps.com/apps/oauth/register
  2. Export its ids:    export SO_IMPORTER_CLIENT_ID=... SO_IMPORTER_KEY=...
  3. Authenticate:      so-importer auth
  4. Check the setup:   so-importer check
  5. Query questions:   so-importer questions --sort votes --min 10 --tagged go`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "Log format (console, json)")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also write debug logs to this file")
	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Stack Exchange API URL (or SO_IMPORTER_API_URL env)")

	root.AddCommand(
		newCheckCmd(),
		newAuthCmd(),
		newLogoutCmd(),
		newQuestionsCmd(),
		newFiltersCmd(),
	)

	return root
}

// setup builds the logger, the configuration and the API client shared by
// every command.
func setup(cmd *cobra.Command) error {
	l, closer, err := logger.New(logger.Options{
		Level:  flagLogLevel,
		Format: flagLogFormat,
		Writer: cmd.ErrOrStderr(),
		File:   flagLogFile,
	})
	if err != nil {
		return err
	}
	log, logCloser = l, closer
	log.Debug().Str("command", cmd.CommandPath()).Msg("program start")

	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}
	if flagAPIURL != "" {
		c.APIUrl = flagAPIURL
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	api = client.New(log,
		client.WithBaseURL(cfg.APIUrl),
		client.WithVersion(cfg.APIVersion),
		client.WithSite(cfg.Site),
	)
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
