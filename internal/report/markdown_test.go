package report

import (
	"strings"
	"testing"

	"github.com/matchdex/matchdex/internal/model"
)

// TestSummaryWriterWrite tests the Markdown summary output.
func TestSummaryWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("renders run metadata and per-team tables", func(t *testing.T) {
		t.Parallel()

		run := model.NewRun("https://example.com/results")
		run.Matches = []model.Match{
			{Team1: "India", Team2: "Australia", Team1Score: "250/7", Team2Score: "200/9", Result: "India won by 50 runs"},
		}
		run.Teams = sampleTeams()

		var sb strings.Builder
		if err := NewSummaryWriter(&sb).Write(run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := sb.String()
		for _, want := range []string{
			"# Match Report",
			"https://example.com/results",
			"## India",
			"## Australia",
			"Self Score",
			"250/7",
			"India won by 50 runs",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("replayed run notes missing source", func(t *testing.T) {
		t.Parallel()

		run := model.NewRun("")
		run.Teams = sampleTeams()

		var sb strings.Builder
		if err := NewSummaryWriter(&sb).Write(run); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(sb.String(), "replayed from snapshot") {
			t.Error("expected replay note in summary")
		}
	})
}
