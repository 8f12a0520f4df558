package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/matchdex/matchdex/internal/model"
	"github.com/matchdex/matchdex/internal/pipeline"
)

// NewReplayCmd creates the replay command.
func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Regenerate all outputs from the matches.json snapshot",
		Long: `Replay re-runs aggregation and generation from the matches.json snapshot
of a previous extract, without touching the network. Use it to rebuild
the workbook and scorecards after changing the template or layout.

Examples:
  # Rebuild everything from the snapshot in the working directory
  matchdex replay

  # Rebuild with a different template
  matchdex replay -T NewTemplate.pdf`,
		Args: cobra.NoArgs,
		RunE: runReplayCmd,
	}

	addRunFlags(cmd)

	return cmd
}

// runReplayCmd executes the replay command.
func runReplayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := setupLogger(verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	p, err := pipeline.ReplayPipeline(cfg, logger, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	run := model.NewRun("")

	fmt.Println("Replaying from snapshot...")
	startTime := time.Now()

	if err := p.Execute(ctx, run); err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	elapsed := time.Since(startTime)
	printRunSummary(run, elapsed)

	return nil
}
