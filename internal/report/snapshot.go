package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matchdex/matchdex/internal/config"
	"github.com/matchdex/matchdex/internal/model"
)

// Snapshots are the two JSON files written to the working directory on every
// run: the raw match list and the aggregated team view. They exist so the
// run can be inspected, or replayed with `matchdex replay`, without hitting
// the source again.

// WriteMatchesSnapshot writes the raw match list to matches.json in dir.
func WriteMatchesSnapshot(dir string, matches []model.Match) error {
	return writeSnapshot(filepath.Join(dir, config.MatchesSnapshotFile), matches)
}

// WriteTeamsSnapshot writes the aggregated team view to teams.json in dir.
func WriteTeamsSnapshot(dir string, teams []*model.Team) error {
	return writeSnapshot(filepath.Join(dir, config.TeamsSnapshotFile), teams)
}

// ReadMatchesSnapshot loads the raw match list back from matches.json in
// dir. Used by the replay command.
func ReadMatchesSnapshot(dir string) ([]model.Match, error) {
	path := filepath.Join(dir, config.MatchesSnapshotFile)
	data, err := os.ReadFile(path) //nolint:gosec // Snapshot path is derived from user flags
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var matches []model.Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	return matches, nil
}

// writeSnapshot writes v as indented JSON to path, replacing any previous
// snapshot.
func writeSnapshot(path string, v any) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck // Close error checked below via encoder flush

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", path, err)
	}
	return f.Close()
}
