package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/matchdex/matchdex/internal/model"
)

// SummaryWriter outputs a Markdown summary of an extraction run: run
// metadata up top, then one table per team mirroring that team's workbook
// sheet.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation; it produces well-formed GitHub-flavored tables without
// hand-rolled escaping.
type SummaryWriter struct {
	// output receives the rendered markdown.
	output io.Writer
}

// NewSummaryWriter creates a SummaryWriter that outputs to the given writer.
func NewSummaryWriter(output io.Writer) *SummaryWriter {
	return &SummaryWriter{output: output}
}

// Write renders the summary for a completed run.
func (w *SummaryWriter) Write(run *model.Run) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Match Report")
	md.PlainText("")

	source := run.SourceURL
	if source == "" {
		source = "(replayed from snapshot)"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", source},
			{"Fetched", run.FetchedAt.Format("2006-01-02 15:04:05 MST")},
			{"Matches", strconv.Itoa(len(run.Matches))},
			{"Teams", strconv.Itoa(len(run.Teams))},
		},
	})
	md.PlainText("")

	for _, team := range run.Teams {
		w.writeTeam(md, team)
	}

	return md.Build()
}

// writeTeam renders one team's history table.
func (w *SummaryWriter) writeTeam(md *markdown.Markdown, team *model.Team) {
	md.H2(team.Name)
	md.PlainText("")

	rows := make([][]string, 0, len(team.History))
	for _, entry := range team.History {
		rows = append(rows, []string{
			entry.Opponent,
			entry.SelfScore,
			entry.OpponentScore,
			entry.Result,
		})
	}

	md.Table(markdown.TableSet{
		Header: workbookHeader,
		Rows:   rows,
	})
	md.PlainText("")
}
