package scrape

import (
	"testing"

	"github.com/matchdex/matchdex/internal/config"
)

// matchBlock builds a results-page match block for tests.
func matchBlock(team1, team2 string, scores []string, result string) string {
	html := `<div class="match-score-block"><div class="teams">`
	html += `<p class="name">` + team1 + `</p>`
	html += `<p class="name">` + team2 + `</p>`
	html += `</div>`
	for _, s := range scores {
		html += `<div class="score-detail"><span class="score">` + s + `</span></div>`
	}
	if result != "" {
		html += `<div class="status-text"><span>` + result + `</span></div>`
	}
	html += `</div>`
	return html
}

func page(blocks ...string) []byte {
	html := `<html><body><div class="results">`
	for _, b := range blocks {
		html += b
	}
	html += `</div></body></html>`
	return []byte(html)
}

// TestParserParse tests match extraction from results page markup.
func TestParserParse(t *testing.T) {
	t.Parallel()

	parser := NewParser(config.DefaultSelectors())

	t.Run("extracts full match", func(t *testing.T) {
		t.Parallel()

		matches, err := parser.Parse(page(
			matchBlock("India", "Australia", []string{"250/7", "200/9"}, "India won by 50 runs"),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}

		m := matches[0]
		if m.Team1 != "India" || m.Team2 != "Australia" {
			t.Errorf("unexpected teams %q vs %q", m.Team1, m.Team2)
		}
		if m.Team1Score != "250/7" || m.Team2Score != "200/9" {
			t.Errorf("unexpected scores %q / %q", m.Team1Score, m.Team2Score)
		}
		if m.Result != "India won by 50 runs" {
			t.Errorf("unexpected result %q", m.Result)
		}
	})

	t.Run("one score node fills team1 only", func(t *testing.T) {
		t.Parallel()

		matches, err := parser.Parse(page(
			matchBlock("India", "Australia", []string{"250/7"}, "No result"),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m := matches[0]
		if m.Team1Score != "250/7" {
			t.Errorf("expected team1 score, got %q", m.Team1Score)
		}
		if m.Team2Score != "" {
			t.Errorf("expected empty team2 score, got %q", m.Team2Score)
		}
	})

	t.Run("zero score nodes leave both empty", func(t *testing.T) {
		t.Parallel()

		matches, err := parser.Parse(page(
			matchBlock("India", "Australia", nil, "Match abandoned"),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m := matches[0]
		if m.Team1Score != "" || m.Team2Score != "" {
			t.Errorf("expected empty scores, got %q / %q", m.Team1Score, m.Team2Score)
		}
	})

	t.Run("missing result node leaves result empty", func(t *testing.T) {
		t.Parallel()

		matches, err := parser.Parse(page(
			matchBlock("India", "Australia", []string{"250/7", "200/9"}, ""),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if matches[0].Result != "" {
			t.Errorf("expected empty result, got %q", matches[0].Result)
		}
	})

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		matches, err := parser.Parse(page(
			matchBlock("India", "Australia", nil, "r1"),
			matchBlock("England", "Pakistan", nil, "r2"),
		))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(matches))
		}
		if matches[0].Team1 != "India" || matches[1].Team1 != "England" {
			t.Errorf("unexpected order: %q then %q", matches[0].Team1, matches[1].Team1)
		}
	})

	t.Run("page without match blocks yields empty list", func(t *testing.T) {
		t.Parallel()

		matches, err := parser.Parse([]byte("<html><body><p>nothing here</p></body></html>"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("expected no matches, got %d", len(matches))
		}
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		broken := []byte(`<div class="match-score-block"><p class="name">India<p class="name">Australia`)
		matches, err := parser.Parse(broken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 1 {
			t.Fatalf("expected 1 match, got %d", len(matches))
		}
		if matches[0].Team1 != "India" {
			t.Errorf("expected India, got %q", matches[0].Team1)
		}
	})
}
