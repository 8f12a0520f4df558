package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrNoSource is returned by the extract command when no results page
	// URL was provided.
	ErrNoSource = errors.New("no source specified: provide a results page URL with --source")

	// ErrInvalidTimeout is returned when the HTTP timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when the scorecard fan-out width is
	// not positive. Zero workers would mean no scorecards are ever written.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrNoWorkbookPath is returned when the workbook output path is empty.
	ErrNoWorkbookPath = errors.New("no workbook path specified")

	// ErrNoDataFolder is returned when the scorecard tree root is empty.
	ErrNoDataFolder = errors.New("no data folder specified")
)
