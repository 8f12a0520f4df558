package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"
	fpdi "github.com/phpdave11/gofpdf/contrib/gofpdi"

	"github.com/matchdex/matchdex/internal/config"
	"github.com/matchdex/matchdex/internal/model"
)

// scorecardExt is the extension of generated scorecard documents.
const scorecardExt = ".pdf"

// ScorecardGenerator fills the scorecard template once per (team, history
// entry) pair: the first template page is imported as a background and the
// five text fields are drawn on top of it at the configured coordinates.
//
// A generator is safe for concurrent Generate calls: every call imports the
// template into its own document, so no state is shared beyond the
// immutable configuration.
type ScorecardGenerator struct {
	// templatePath is the template PDF whose first page is filled.
	templatePath string

	// layout places the five text fields on the page.
	layout config.ScorecardLayout

	// fontFamily is the core PDF font used for all fields.
	fontFamily string
}

// ScorecardOption configures a ScorecardGenerator.
type ScorecardOption func(*ScorecardGenerator)

// WithFontFamily sets the core font family used for the overlay text.
func WithFontFamily(family string) ScorecardOption {
	return func(g *ScorecardGenerator) {
		g.fontFamily = family
	}
}

// NewScorecardGenerator creates a generator for the given template.
// A missing or unreadable template is reported here, before any match is
// processed: the template is required for every scorecard, so the whole run
// is not worth starting without it.
func NewScorecardGenerator(templatePath string, layout config.ScorecardLayout, opts ...ScorecardOption) (*ScorecardGenerator, error) {
	if _, err := os.Stat(templatePath); err != nil {
		return nil, fmt.Errorf("scorecard template not usable: %w", err)
	}

	g := &ScorecardGenerator{
		templatePath: templatePath,
		layout:       layout,
		fontFamily:   "Helvetica",
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Generate renders one filled scorecard to destPath.
// The caller owns destPath; collision handling happens when paths are
// allocated, not here.
func (g *ScorecardGenerator) Generate(teamName string, entry model.HistoryEntry, destPath string) (err error) {
	// gofpdi reports template parse failures by panicking rather than
	// returning errors. Convert those into a failed generation so the
	// pipeline surfaces them as a failed run.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to fill template %s: %v", g.templatePath, r)
		}
	}()

	pdf := gofpdf.New("P", "pt", "A4", "")
	imp := fpdi.NewImporter()

	tpl := imp.ImportPage(pdf, g.templatePath, 1, "/MediaBox")
	box := imp.GetPageSizes()[1]["/MediaBox"]
	pageW, pageH := box["w"], box["h"]

	// AddPageFormat treats the size as portrait-ordered and swaps it when
	// the orientation is "L", so a landscape box must go in unswapped
	// under "P" to keep the page at the template's true dimensions.
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pageW, Ht: pageH})
	imp.UseImportedTemplate(pdf, tpl, 0, 0, pageW, pageH)

	// Core fonts are cp1252; translate so accented team names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	draw := func(field config.TextField, text string) {
		pdf.SetFont(g.fontFamily, "", field.Size)
		// Layout coordinates measure from the bottom edge; gofpdf's
		// y axis grows downward from the top.
		pdf.Text(field.X, pageH-field.Y, tr(text))
	}

	draw(g.layout.TeamName, teamName)
	draw(g.layout.OpponentName, entry.Opponent)
	draw(g.layout.SelfScore, entry.SelfScore)
	draw(g.layout.OpponentScore, entry.OpponentScore)
	draw(g.layout.Result, entry.Result)

	if err := pdf.OutputFileAndClose(destPath); err != nil {
		return fmt.Errorf("failed to write scorecard %s: %w", destPath, err)
	}
	return nil
}

// PathAllocator hands out collision-free scorecard paths.
//
// Paths are allocated sequentially before generation is fanned out, so
// suffix numbering follows history order deterministically and concurrent
// writers never race on a name check. A name is taken if a file already
// exists on disk or if it was handed out earlier in this run; the fallback
// inserts an incrementing "(1)", "(2)", ... before the extension.
type PathAllocator struct {
	// reserved tracks paths handed out during this run.
	reserved map[string]struct{}
}

// NewPathAllocator creates an empty allocator.
func NewPathAllocator() *PathAllocator {
	return &PathAllocator{reserved: make(map[string]struct{})}
}

// Allocate reserves and returns the output path for one scorecard named
// after the opponent inside dir.
func (a *PathAllocator) Allocate(dir, opponent string) string {
	base := fileSafeName(opponent)

	candidate := filepath.Join(dir, base+scorecardExt)
	for n := 1; a.taken(candidate); n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s(%d)%s", base, n, scorecardExt))
	}
	a.reserved[candidate] = struct{}{}
	return candidate
}

// taken reports whether a candidate path is already claimed, either on disk
// or by an earlier allocation in this run.
func (a *PathAllocator) taken(path string) bool {
	if _, ok := a.reserved[path]; ok {
		return true
	}
	_, err := os.Stat(path)
	return err == nil
}
