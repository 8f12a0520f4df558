package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matchdex/matchdex/internal/model"
)

func sampleTeams() []*model.Team {
	india := model.NewTeam("India")
	india.AppendHistory(model.HistoryEntry{
		Opponent:      "Australia",
		SelfScore:     "250/7",
		OpponentScore: "200/9",
		Result:        "India won by 50 runs",
	})

	australia := model.NewTeam("Australia")
	australia.AppendHistory(model.HistoryEntry{
		Opponent:      "India",
		SelfScore:     "200/9",
		OpponentScore: "250/7",
		Result:        "India won by 50 runs",
	})

	return []*model.Team{india, australia}
}

// TestWorkbookWriterWrite tests workbook generation.
func TestWorkbookWriterWrite(t *testing.T) {
	t.Parallel()

	t.Run("one sheet per team with header and rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "matches.xlsx")
		if err := NewWorkbookWriter().Write(sampleTeams(), path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen workbook: %v", err)
		}
		defer f.Close() //nolint:errcheck // read-only reopen

		sheets := f.GetSheetList()
		if len(sheets) != 2 || sheets[0] != "India" || sheets[1] != "Australia" {
			t.Errorf("expected sheets [India Australia], got %v", sheets)
		}

		wantHeader := []string{"Opponent", "Self Score", "Opponent Score", "Result"}
		for i, col := range []string{"A1", "B1", "C1", "D1"} {
			got, err := f.GetCellValue("India", col)
			if err != nil {
				t.Fatalf("failed to read %s: %v", col, err)
			}
			if got != wantHeader[i] {
				t.Errorf("%s = %q, want %q", col, got, wantHeader[i])
			}
		}

		wantRow := []string{"Australia", "250/7", "200/9", "India won by 50 runs"}
		for i, col := range []string{"A2", "B2", "C2", "D2"} {
			got, err := f.GetCellValue("India", col)
			if err != nil {
				t.Fatalf("failed to read %s: %v", col, err)
			}
			if got != wantRow[i] {
				t.Errorf("%s = %q, want %q", col, got, wantRow[i])
			}
		}

		// One-row body: row 3 must be empty.
		if got, _ := f.GetCellValue("India", "A3"); got != "" {
			t.Errorf("expected empty A3, got %q", got)
		}
	})

	t.Run("header row is styled", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "matches.xlsx")
		if err := NewWorkbookWriter().Write(sampleTeams(), path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen workbook: %v", err)
		}
		defer f.Close() //nolint:errcheck // read-only reopen

		headerStyle, err := f.GetCellStyle("India", "A1")
		if err != nil {
			t.Fatalf("failed to read header style: %v", err)
		}
		bodyStyle, err := f.GetCellStyle("India", "A2")
		if err != nil {
			t.Fatalf("failed to read body style: %v", err)
		}
		if headerStyle == bodyStyle {
			t.Error("expected header row style to differ from data rows")
		}
	})

	t.Run("colliding sanitized names keep separate sheets", func(t *testing.T) {
		t.Parallel()

		colon := model.NewTeam("A:B")
		colon.AppendHistory(model.HistoryEntry{Opponent: "India", Result: "won"})
		space := model.NewTeam("A B")
		space.AppendHistory(model.HistoryEntry{Opponent: "Australia", Result: "lost"})

		path := filepath.Join(t.TempDir(), "matches.xlsx")
		if err := NewWorkbookWriter().Write([]*model.Team{colon, space}, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen workbook: %v", err)
		}
		defer f.Close() //nolint:errcheck // read-only reopen

		sheets := f.GetSheetList()
		if len(sheets) != 2 {
			t.Fatalf("expected 2 sheets, got %v", sheets)
		}

		// Each team's history must land on its own sheet.
		if got, _ := f.GetCellValue(sheets[0], "A2"); got != "India" {
			t.Errorf("first sheet A2 = %q, want %q", got, "India")
		}
		if got, _ := f.GetCellValue(sheets[1], "A2"); got != "Australia" {
			t.Errorf("second sheet A2 = %q, want %q", got, "Australia")
		}
	})

	t.Run("overwrites existing workbook", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "matches.xlsx")
		w := NewWorkbookWriter()
		if err := w.Write(sampleTeams(), path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.Write(sampleTeams()[:1], path); err != nil {
			t.Fatalf("unexpected error on overwrite: %v", err)
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			t.Fatalf("failed to reopen workbook: %v", err)
		}
		defer f.Close() //nolint:errcheck // read-only reopen

		if sheets := f.GetSheetList(); len(sheets) != 1 {
			t.Errorf("expected 1 sheet after overwrite, got %v", sheets)
		}
	})
}

// TestSheetName tests sheet name sanitizing.
func TestSheetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		position int
		want     string
	}{
		{name: "plain name", input: "India", position: 0, want: "India"},
		{name: "forbidden characters", input: "A/B:C", position: 0, want: "A B C"},
		{name: "empty name", input: "", position: 2, want: "Team 3"},
		{name: "long name truncated", input: "Papua New Guinea Cricket Board XI", position: 0, want: "Papua New Guinea Cricket Board "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sheetName(tt.input, tt.position, make(map[string]bool)); got != tt.want {
				t.Errorf("sheetName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("sanitized collision gets position suffix", func(t *testing.T) {
		t.Parallel()

		used := make(map[string]bool)
		first := sheetName("A:B", 0, used)
		second := sheetName("A B", 1, used)

		if first != "A B" {
			t.Errorf("first = %q, want %q", first, "A B")
		}
		if second != "A B (2)" {
			t.Errorf("second = %q, want %q", second, "A B (2)")
		}
	})

	t.Run("truncation collision stays within the length limit", func(t *testing.T) {
		t.Parallel()

		used := make(map[string]bool)
		long := "Papua New Guinea Cricket Board XI"
		first := sheetName(long, 0, used)
		second := sheetName(long+" Reserves", 1, used)

		if first == second {
			t.Errorf("expected distinct sheet names, both were %q", first)
		}
		if got := len([]rune(second)); got > sheetNameMax {
			t.Errorf("second name is %d runes, limit is %d", got, sheetNameMax)
		}
	})

	t.Run("case-insensitive collision is disambiguated", func(t *testing.T) {
		t.Parallel()

		used := make(map[string]bool)
		first := sheetName("India", 0, used)
		second := sheetName("INDIA", 1, used)

		if first == second || second != "INDIA (2)" {
			t.Errorf("got %q then %q, expected a suffixed second name", first, second)
		}
	})
}
