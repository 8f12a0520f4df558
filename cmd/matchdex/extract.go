package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/matchdex/matchdex/internal/config"
	"github.com/matchdex/matchdex/internal/model"
	"github.com/matchdex/matchdex/internal/pipeline"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract match results from a tournament results page",
		Long: `Extract fetches a cricket results page, scrapes the completed matches,
and generates every output in one run:

- matches.json and teams.json snapshots
- an Excel workbook with one sheet per team
- a folder tree of filled PDF scorecards, one per team and opponent

The scorecard template must exist before the run starts; a missing
template fails the run before anything is fetched.

Examples:
  # Extract a results page with default outputs
  matchdex extract -s https://www.espncricinfo.com/.../match-results

  # Custom workbook path and data folder
  matchdex extract -s <url> -w reports/worldcup.xlsx -d worldcup

  # Write a Markdown summary too
  matchdex extract -s <url> -m summary.md

  # Use a custom configuration file
  matchdex extract -s <url> -c myconfig.yaml

Configuration file (.matchdex) example:
  selectors:
    match_block: "div.match-score-block"
  scorecard:
    team_name:
      x: 430
      y: 290
      size: 16`,
		Args: cobra.NoArgs,
		RunE: runExtractCmd,
	}

	addRunFlags(cmd)
	cmd.Flags().StringP("source", "s", "", "Results page URL to extract from (required)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout, "HTTP timeout for fetching the results page")

	return cmd
}

// addRunFlags registers the flags shared by extract and replay.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("workbook", "w", config.DefaultWorkbookPath, "Output path of the Excel workbook")
	cmd.Flags().StringP("data-folder", "d", config.DefaultDataFolder, "Root of the generated scorecard tree")
	cmd.Flags().StringP("template", "T", config.DefaultTemplatePath, "Scorecard template PDF")
	cmd.Flags().StringP("markdown", "m", "", "Write a Markdown summary to the given path")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency, "Number of scorecards generated in parallel")
	cmd.Flags().StringP("config", "c", "", "Configuration file path (default: .matchdex in current or home directory)")
	cmd.Flags().Bool("no-archive", false, "Do not save the run to the local archive")
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.SourceURL, err = cmd.Flags().GetString("source")
	if err != nil {
		return err
	}
	if cfg.SourceURL == "" {
		return config.ErrNoSource
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	p, err := pipeline.ExtractPipeline(cfg, logger, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	run := model.NewRun(cfg.SourceURL)

	fmt.Printf("Extracting %s...\n", cfg.SourceURL)
	startTime := time.Now()

	if err := p.Execute(ctx, run); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	elapsed := time.Since(startTime)
	printRunSummary(run, elapsed)

	return nil
}

// buildConfig creates a Config from environment overrides and the flags
// shared by extract and replay. Flags the user set explicitly win over the
// environment.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	var err error

	cfg.WorkbookPath, err = cmd.Flags().GetString("workbook")
	if err != nil {
		return nil, err
	}

	cfg.DataFolder, err = cmd.Flags().GetString("data-folder")
	if err != nil {
		return nil, err
	}

	cfg.TemplatePath, err = cmd.Flags().GetString("template")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownPath, err = cmd.Flags().GetString("markdown")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
		if err != nil {
			return nil, err
		}
	}

	noArchive, err := cmd.Flags().GetBool("no-archive")
	if err != nil {
		return nil, err
	}
	cfg.Archive = !noArchive

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load selectors and scorecard layout from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Document, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// printRunSummary prints the outputs of a finished run.
func printRunSummary(run *model.Run, elapsed time.Duration) {
	fmt.Printf("Run completed in %s\n\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  matches:    %d\n", len(run.Matches))
	fmt.Printf("  teams:      %d\n", len(run.Teams))
	fmt.Printf("  workbook:   %s\n", run.WorkbookPath)
	fmt.Printf("  scorecards: %d under %s\n", run.ScorecardCount, run.DataFolder)
}
