package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matchdex/matchdex/internal/database"
	"github.com/matchdex/matchdex/internal/model"
)

// seedArchive saves one run into a fresh archive directory and returns it.
func seedArchive(t *testing.T) string {
	t.Helper()

	dbDir := t.TempDir()
	archive, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer archive.Close() //nolint:errcheck // Test cleanup

	run := model.NewRun("https://example.com/results")
	run.Matches = []model.Match{
		{
			Team1:      "India",
			Team2:      "Australia",
			Team1Score: "352/5",
			Team2Score: "347",
			Result:     "India won by 5 wickets",
		},
	}
	india := model.NewTeam("India")
	india.AppendHistory(model.HistoryEntry{
		Opponent:      "Australia",
		SelfScore:     "352/5",
		OpponentScore: "347",
		Result:        "India won by 5 wickets",
	})
	australia := model.NewTeam("Australia")
	australia.AppendHistory(model.HistoryEntry{
		Opponent:      "India",
		SelfScore:     "347",
		OpponentScore: "352/5",
		Result:        "India won by 5 wickets",
	})
	run.Teams = []*model.Team{india, australia}

	if _, err := archive.SaveRun(context.Background(), run); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	return dbDir
}

// TestNewHistoryCmd tests the history command creation.
func TestNewHistoryCmd(t *testing.T) {
	t.Parallel()

	cmd := NewHistoryCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "history" {
			t.Errorf("expected use 'history', got %q", cmd.Use)
		}
	})

	t.Run("has filter flags", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"team", "run", "json", "db-dir"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestRunHistoryCmd tests the history command against a seeded archive.
func TestRunHistoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("missing archive is an error", func(t *testing.T) {
		t.Parallel()

		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", t.TempDir()})
		cmd.SetOut(&bytes.Buffer{})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing archive")
		}
	})

	t.Run("lists archived runs", func(t *testing.T) {
		t.Parallel()

		dbDir := seedArchive(t)

		var out bytes.Buffer
		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", dbDir})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "https://example.com/results") {
			t.Errorf("expected listing to contain the source URL, got:\n%s", got)
		}
	})

	t.Run("fuzzy team filter matches partial names", func(t *testing.T) {
		t.Parallel()

		dbDir := seedArchive(t)

		var out bytes.Buffer
		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", dbDir, "--team", "aus"})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "https://example.com/results") {
			t.Errorf("expected 'aus' to match Australia, got:\n%s", out.String())
		}
	})

	t.Run("team filter excludes unmatched runs", func(t *testing.T) {
		t.Parallel()

		dbDir := seedArchive(t)

		var out bytes.Buffer
		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", dbDir, "--team", "zimbabwe"})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), "No archived runs found.") {
			t.Errorf("expected empty listing, got:\n%s", out.String())
		}
	})

	t.Run("shows run detail", func(t *testing.T) {
		t.Parallel()

		dbDir := seedArchive(t)

		var out bytes.Buffer
		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", dbDir, "--run", "1"})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		for _, want := range []string{"India", "Australia", "India won by 5 wickets"} {
			if !strings.Contains(got, want) {
				t.Errorf("expected detail to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("unknown run id is an error", func(t *testing.T) {
		t.Parallel()

		dbDir := seedArchive(t)

		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", dbDir, "--run", "42"})
		cmd.SetOut(&bytes.Buffer{})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for unknown run id")
		}
	})

	t.Run("json output is machine readable", func(t *testing.T) {
		t.Parallel()

		dbDir := seedArchive(t)

		var out bytes.Buffer
		cmd := NewHistoryCmd()
		cmd.SetArgs([]string{"--db-dir", dbDir, "--run", "1", "--json"})
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out.String(), `"team1_score": "352/5"`) {
			t.Errorf("expected JSON fields in output, got:\n%s", out.String())
		}
	})
}
