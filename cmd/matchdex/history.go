package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/matchdex/matchdex/internal/config"
	"github.com/matchdex/matchdex/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse archived extraction runs",
		Long: `History lists the runs saved to the local archive, newest first.

With --team, only runs featuring a matching team are listed; the match
is fuzzy, so "aus" finds Australia. With --run, the full per-team
history of one archived run is printed instead.

Examples:
  # List all archived runs
  matchdex history

  # List runs featuring Australia
  matchdex history --team aus

  # Show the full detail of run 3
  matchdex history --run 3

  # Dump run 3 as JSON
  matchdex history --run 3 --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().String("team", "", "Only list runs featuring a team matching this name")
	cmd.Flags().Int64("run", 0, "Show the full detail of one archived run")
	cmd.Flags().Bool("json", false, "Output JSON instead of a table")
	cmd.Flags().String("db-dir", config.XDGDataDir(), "Archive database directory")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}

	archive, err := database.Open(dbDir, database.Options{})
	if err != nil {
		return err
	}
	defer archive.Close() //nolint:errcheck // Read-only usage

	runID, err := cmd.Flags().GetInt64("run")
	if err != nil {
		return err
	}

	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	if runID > 0 {
		return showRun(cmd, archive, runID, asJSON)
	}

	team, err := cmd.Flags().GetString("team")
	if err != nil {
		return err
	}

	return listRuns(cmd, archive, team, asJSON)
}

// listRuns prints the archived runs, optionally filtered by team name.
func listRuns(cmd *cobra.Command, archive *database.RunArchive, team string, asJSON bool) error {
	records, err := archive.ListRuns(cmd.Context())
	if err != nil {
		return err
	}

	if team != "" {
		records = filterByTeam(records, team)
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No archived runs found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFETCHED\tMATCHES\tTEAMS\tSOURCE")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
			rec.ID,
			rec.FetchedAt.Local().Format("2006-01-02 15:04"),
			rec.MatchCount,
			rec.TeamCount,
			rec.SourceURL,
		)
	}
	return w.Flush()
}

// filterByTeam keeps records with at least one team fuzzy-matching name.
func filterByTeam(records []database.RunRecord, name string) []database.RunRecord {
	filtered := make([]database.RunRecord, 0, len(records))
	for _, rec := range records {
		if len(fuzzy.FindFold(name, rec.TeamNames)) > 0 {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// showRun prints the full per-team history of one archived run.
func showRun(cmd *cobra.Command, archive *database.RunArchive, id int64, asJSON bool) error {
	run, err := archive.GetRun(cmd.Context(), id)
	if err != nil {
		return err
	}

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(run)
	}

	source := run.SourceURL
	if source == "" {
		source = "(replayed from snapshot)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Run %d\n", id)
	fmt.Fprintf(cmd.OutOrStdout(), "  source:  %s\n", source)
	fmt.Fprintf(cmd.OutOrStdout(), "  fetched: %s\n", run.FetchedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(cmd.OutOrStdout(), "  matches: %d\n\n", len(run.Matches))

	for _, team := range run.Teams {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", team.Name)
		for _, entry := range team.History {
			fmt.Fprintf(cmd.OutOrStdout(), "  vs %-20s %s - %s  %s\n",
				entry.Opponent,
				emptyDash(entry.SelfScore),
				emptyDash(entry.OpponentScore),
				entry.Result,
			)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

// emptyDash substitutes a dash for an empty score so columns stay readable.
func emptyDash(score string) string {
	if strings.TrimSpace(score) == "" {
		return "-"
	}
	return score
}
