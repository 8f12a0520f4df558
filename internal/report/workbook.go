package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matchdex/matchdex/internal/model"
)

// Workbook header row, in column order. Data rows repeat the same four
// fields per history entry.
var workbookHeader = []string{"Opponent", "Self Score", "Opponent Score", "Result"}

// sheetNameMax is the hard sheet-name length limit imposed by the xlsx
// format.
const sheetNameMax = 31

// WorkbookWriter renders the aggregated team index as a multi-sheet Excel
// workbook: one sheet per team, named after the team, with a styled header
// row and one row per history entry in insertion order.
type WorkbookWriter struct {
	// headerFill is the header row background color (RRGGBB).
	headerFill string

	// headerFontSize is the header row font size.
	headerFontSize float64
}

// WorkbookOption configures a WorkbookWriter.
type WorkbookOption func(*WorkbookWriter)

// WithHeaderFill sets the header row fill color (RRGGBB hex).
func WithHeaderFill(color string) WorkbookOption {
	return func(w *WorkbookWriter) {
		w.headerFill = color
	}
}

// NewWorkbookWriter creates a WorkbookWriter with the default orange header
// style.
func NewWorkbookWriter(opts ...WorkbookOption) *WorkbookWriter {
	w := &WorkbookWriter{
		headerFill:     "FFA500",
		headerFontSize: 12,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders one sheet per team and saves the workbook to path.
// An existing file at path is overwritten unconditionally; the workbook is
// the one artifact without collision handling.
func (w *WorkbookWriter) Write(teams []*model.Team, path string) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // SaveAs already flushed the file

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  w.headerFontSize,
			Color: "000000",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{w.headerFill},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	used := make(map[string]bool, len(teams))
	for i, team := range teams {
		sheet := sheetName(team.Name, i, used)

		// The fresh workbook starts with one default sheet; the first
		// team takes it over, the rest get new sheets.
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to name sheet for %q: %w", team.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to add sheet for %q: %w", team.Name, err)
			}
		}

		if err := w.writeSheet(f, sheet, team, headerStyle); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", path, err)
	}
	return nil
}

// writeSheet fills one team's sheet: header row, then history rows.
func (w *WorkbookWriter) writeSheet(f *excelize.File, sheet string, team *model.Team, headerStyle int) error {
	header := make([]interface{}, len(workbookHeader))
	for i, h := range workbookHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for %q: %w", team.Name, err)
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header for %q: %w", team.Name, err)
	}

	for j, entry := range team.History {
		cell, err := excelize.CoordinatesToCellName(1, j+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", j+2, err)
		}
		row := []interface{}{entry.Opponent, entry.SelfScore, entry.OpponentScore, entry.Result}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d for %q: %w", j+2, team.Name, err)
		}
	}
	return nil
}

// sheetName makes a team name usable as an xlsx sheet name: the format
// forbids a handful of characters and names longer than 31 runes, and an
// empty name (a valid, if malformed, team identity) needs a placeholder.
//
// Sanitizing and truncating can map distinct teams to the same sheet name,
// and sheet names are case-insensitive, so the caller's used set is checked
// and collisions get a position suffix. Without it the later team would
// silently land on the earlier team's sheet.
func sheetName(name string, position int, used map[string]bool) string {
	replacer := strings.NewReplacer(
		":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ",
	)
	s := strings.TrimSpace(replacer.Replace(name))
	if s == "" {
		s = fmt.Sprintf("Team %d", position+1)
	}
	runes := []rune(s)
	if len(runes) > sheetNameMax {
		s = string(runes[:sheetNameMax])
	}

	if used[strings.ToLower(s)] {
		suffix := fmt.Sprintf(" (%d)", position+1)
		runes = []rune(s)
		if limit := sheetNameMax - len([]rune(suffix)); len(runes) > limit {
			runes = runes[:limit]
		}
		s = string(runes) + suffix
	}
	used[strings.ToLower(s)] = true
	return s
}
