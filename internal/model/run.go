package model

import "time"

// Run is the accumulator carried through the extraction pipeline.
// Each pipeline step reads what earlier steps produced and records its own
// output here; the command layer inspects the finished Run for reporting
// and archival.
type Run struct {
	// SourceURL is the results page this run was extracted from.
	// Empty when the run was replayed from a local snapshot.
	SourceURL string `json:"source_url"`

	// FetchedAt is the timestamp when extraction started.
	FetchedAt time.Time `json:"fetched_at"`

	// Matches is the raw match list in source page order.
	// Populated by the fetch (or replay) step, never mutated afterwards.
	Matches []Match `json:"matches"`

	// Teams is the aggregated per-team view, in first-appearance order.
	// Populated by the aggregate step.
	Teams []*Team `json:"teams"`

	// WorkbookPath is where the workbook generator wrote its output.
	WorkbookPath string `json:"workbook_path,omitempty"`

	// DataFolder is the root of the generated scorecard tree.
	DataFolder string `json:"data_folder,omitempty"`

	// ScorecardCount is the number of scorecard documents generated.
	// Always twice the match count on a successful run.
	ScorecardCount int `json:"scorecard_count"`

	// PerformedSteps records which pipeline steps ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`
}

// NewRun creates a Run for the given source URL with the clock started.
func NewRun(sourceURL string) *Run {
	return &Run{
		SourceURL: sourceURL,
		FetchedAt: time.Now().UTC(),
	}
}

// TeamNames returns the team display names in first-appearance order.
func (r *Run) TeamNames() []string {
	names := make([]string, len(r.Teams))
	for i, t := range r.Teams {
		names[i] = t.Name
	}
	return names
}
