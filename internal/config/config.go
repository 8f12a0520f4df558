package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultTimeout bounds each HTTP request to the results page.
	// Results pages are static HTML behind a CDN; 30 seconds is generous.
	DefaultTimeout = 30 * time.Second

	// DefaultWorkbookPath is where the workbook lands when --workbook is
	// not given.
	DefaultWorkbookPath = "matches.xlsx"

	// DefaultDataFolder is the default root of the scorecard tree.
	DefaultDataFolder = "data"

	// DefaultTemplatePath is the scorecard template PDF looked up in the
	// working directory when --template is not given.
	DefaultTemplatePath = "Template.pdf"

	// DefaultConcurrency is the scorecard generation fan-out width.
	// Generation is dominated by template parsing and file writes, so a
	// handful of workers saturates a typical disk.
	DefaultConcurrency = 8

	// DefaultUserAgent identifies matchdex in HTTP requests so site
	// operators can recognize the traffic in their logs.
	DefaultUserAgent = "matchdex/1.0 (+https://github.com/matchdex/matchdex)"

	// DefaultMaxBodySize limits the response body read from the results
	// page. 10MB covers even very long tournament listings while keeping a
	// misbehaving server from exhausting memory.
	DefaultMaxBodySize = 10 * 1024 * 1024

	// MatchesSnapshotFile is the fixed name of the raw match list snapshot
	// written to the working directory after extraction.
	MatchesSnapshotFile = "matches.json"

	// TeamsSnapshotFile is the fixed name of the aggregated team snapshot
	// written to the working directory after aggregation.
	TeamsSnapshotFile = "teams.json"

	// AppName is the application name used for XDG directory paths.
	AppName = "matchdex"
)

// Config holds all configuration options for matchdex.
// It is populated from CLI flags and environment overrides and passed
// through the application via dependency injection rather than global state.
type Config struct {
	// SourceURL is the tournament results page to extract from.
	// Required for extract; unused by replay.
	SourceURL string

	// WorkbookPath is the output path of the Excel workbook.
	// An existing file at this path is overwritten unconditionally.
	WorkbookPath string

	// DataFolder is the root of the generated scorecard tree. An existing
	// tree at this path is replaced wholesale by each run.
	DataFolder string

	// TemplatePath is the scorecard template PDF. A missing template is
	// fatal for the whole run.
	TemplatePath string

	// MarkdownPath is the optional Markdown summary output path.
	// Empty disables the summary.
	MarkdownPath string

	// SnapshotDir is the directory for the matches.json / teams.json
	// snapshots. Defaults to the working directory.
	SnapshotDir string

	// Timeout is the HTTP request timeout for fetching the results page.
	Timeout time.Duration

	// UserAgent is sent with the results page request.
	UserAgent string

	// MaxBodySize caps the number of response bytes read from the source.
	MaxBodySize int64

	// Concurrency is the number of scorecards generated in parallel.
	Concurrency int

	// ConfigFilePath is an explicit YAML config file path. When empty the
	// tool searches for .matchdex in the working and home directories.
	ConfigFilePath string

	// Document holds selectors and scorecard layout, from the config file
	// or defaults.
	Document *File

	// Archive enables saving the run to the SQLite archive.
	Archive bool

	// DBDir is the directory holding the run archive database.
	// Defaults to the XDG data directory for matchdex.
	DBDir string

	// Verbose enables slog.LevelDebug output.
	Verbose bool
}

// NewConfig creates a Config with defaults for every knob.
// The zero value is not usable: several defaults (timeout, concurrency,
// fixed file names) are non-zero, and this constructor doubles as their
// documentation.
func NewConfig() *Config {
	return &Config{
		WorkbookPath: DefaultWorkbookPath,
		DataFolder:   DefaultDataFolder,
		TemplatePath: DefaultTemplatePath,
		Timeout:      DefaultTimeout,
		UserAgent:    DefaultUserAgent,
		MaxBodySize:  DefaultMaxBodySize,
		Concurrency:  DefaultConcurrency,
		Document:     DefaultFile(),
		Archive:      true,
		DBDir:        XDGDataDir(),
	}
}

// Validate checks the configuration for values that would make the run fail
// in a confusing way later. It does not check SourceURL: replay runs without
// one, so the extract command enforces it.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	if c.WorkbookPath == "" {
		return ErrNoWorkbookPath
	}
	if c.DataFolder == "" {
		return ErrNoDataFolder
	}
	return nil
}

// XDGDataDir returns the XDG data directory for matchdex.
// On Linux: ~/.local/share/matchdex
// On macOS: ~/Library/Application Support/matchdex
// On Windows: %LOCALAPPDATA%\matchdex
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
