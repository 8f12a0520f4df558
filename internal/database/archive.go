package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/matchdex/matchdex/internal/model"
)

// archiveFile is the database file name inside the data directory.
const archiveFile = "matchdex.db"

// ErrRunNotFound is returned when a requested run ID is not in the archive.
var ErrRunNotFound = errors.New("run not found in archive")

// RunArchive stores completed extraction runs in SQLite.
// It manages connection pooling and provides save and query operations.
type RunArchive struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures RunArchive behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	// Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default archive options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a RunArchive in the specified directory.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned; the history command uses this to fail clearly when nothing has
// been archived yet.
func Open(dbDir string, opts Options) (*RunArchive, error) {
	dbPath := filepath.Join(dbDir, archiveFile)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("archive not found at %s (run an extract first)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check archive path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids lock
	// contention entirely for this workload.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	a := &RunArchive{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close() //nolint:errcheck // Best effort cleanup
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := a.createTables(); err != nil {
		_ = db.Close() //nolint:errcheck // Best effort cleanup
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *RunArchive) Close() error {
	return a.db.Close()
}

// createTables creates the archive schema if it doesn't exist.
func (a *RunArchive) createTables() error {
	schema := `
	-- One row per completed extraction run
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_url TEXT NOT NULL,
		fetched_at DATETIME NOT NULL,
		match_count INTEGER NOT NULL,
		team_count INTEGER NOT NULL,
		team_names TEXT NOT NULL,
		matches_json TEXT NOT NULL,
		teams_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source_url);
	CREATE INDEX IF NOT EXISTS idx_runs_fetched ON runs(fetched_at);
	`

	_, err := a.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord is one archived run as listed by the history command.
// The full match/team structures are loaded separately via GetRun.
type RunRecord struct {
	ID         int64
	SourceURL  string
	FetchedAt  time.Time
	MatchCount int
	TeamCount  int
	TeamNames  []string
}

// SaveRun archives a completed run and returns its archive ID.
func (a *RunArchive) SaveRun(ctx context.Context, run *model.Run) (int64, error) {
	namesJSON, err := json.Marshal(run.TeamNames())
	if err != nil {
		return 0, fmt.Errorf("failed to serialize team names: %w", err)
	}
	matchesJSON, err := json.Marshal(run.Matches)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize matches: %w", err)
	}
	teamsJSON, err := json.Marshal(run.Teams)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize teams: %w", err)
	}

	query := `
	INSERT INTO runs (source_url, fetched_at, match_count, team_count, team_names, matches_json, teams_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := a.db.ExecContext(ctx, query,
		run.SourceURL,
		run.FetchedAt.UTC(),
		len(run.Matches),
		len(run.Teams),
		string(namesJSON),
		string(matchesJSON),
		string(teamsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// ListRuns returns all archived runs, newest first.
func (a *RunArchive) ListRuns(ctx context.Context) ([]RunRecord, error) {
	query := `
	SELECT id, source_url, fetched_at, match_count, team_count, team_names
	FROM runs
	ORDER BY fetched_at DESC, id DESC
	`

	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows

	records := make([]RunRecord, 0)
	for rows.Next() {
		var rec RunRecord
		var namesJSON string
		if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.FetchedAt, &rec.MatchCount, &rec.TeamCount, &namesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(namesJSON), &rec.TeamNames); err != nil {
			return nil, fmt.Errorf("failed to decode team names for run %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return records, nil
}

// GetRun loads one archived run in full.
func (a *RunArchive) GetRun(ctx context.Context, id int64) (*model.Run, error) {
	query := `
	SELECT source_url, fetched_at, matches_json, teams_json
	FROM runs
	WHERE id = ?
	`

	var run model.Run
	var matchesJSON, teamsJSON string
	err := a.db.QueryRowContext(ctx, query, id).Scan(
		&run.SourceURL, &run.FetchedAt, &matchesJSON, &teamsJSON,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %d: %w", id, err)
	}

	if err := json.Unmarshal([]byte(matchesJSON), &run.Matches); err != nil {
		return nil, fmt.Errorf("failed to decode matches for run %d: %w", id, err)
	}
	if err := json.Unmarshal([]byte(teamsJSON), &run.Teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams for run %d: %w", id, err)
	}
	return &run, nil
}
