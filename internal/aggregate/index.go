package aggregate

import (
	"errors"
	"fmt"

	"github.com/matchdex/matchdex/internal/model"
)

// ErrUnknownTeam is returned when a match references a team name that is not
// in the index. With the two-pass design this cannot happen for a match list
// the index was built from, so hitting it means a programming error, not bad
// input data.
var ErrUnknownTeam = errors.New("team not present in index")

// TeamIndex is an ordered, deduplicated collection of teams keyed by exact
// display-name equality.
//
// Design decision: We keep both an ordered slice and a name-to-position map.
// The slice preserves first-appearance order, which the workbook and folder
// generators depend on; the map keeps lookups constant-time. Team counts are
// small enough that a linear scan would also work, but the map costs nothing
// and keeps Project free of quadratic behavior.
type TeamIndex struct {
	// teams holds the teams in first-appearance order.
	teams []*model.Team

	// byName maps a team name to its position in teams.
	byName map[string]int
}

// NewTeamIndex creates an empty index.
func NewTeamIndex() *TeamIndex {
	return &TeamIndex{
		teams:  make([]*model.Team, 0),
		byName: make(map[string]int),
	}
}

// Add registers a team name if it is not already present.
// Blank or oddly-formed names are accepted as valid identities; the index
// mirrors whatever the extractor produced.
func (idx *TeamIndex) Add(name string) {
	if _, ok := idx.byName[name]; ok {
		return
	}
	idx.byName[name] = len(idx.teams)
	idx.teams = append(idx.teams, model.NewTeam(name))
}

// Lookup returns the team with the given name, or nil if absent.
func (idx *TeamIndex) Lookup(name string) *model.Team {
	i, ok := idx.byName[name]
	if !ok {
		return nil
	}
	return idx.teams[i]
}

// Len returns the number of distinct teams discovered so far.
func (idx *TeamIndex) Len() int {
	return len(idx.teams)
}

// Teams returns the teams in first-appearance order.
// The returned slice is the index's backing storage; callers treat it as
// read-only once aggregation has completed.
func (idx *TeamIndex) Teams() []*model.Team {
	return idx.teams
}

// Discover scans one match and registers both team names, Team1 first.
// Within a match Team1 is checked before Team2, which fixes the discovery
// order for matches that introduce two new teams at once.
func (idx *TeamIndex) Discover(match model.Match) {
	idx.Add(match.Team1)
	idx.Add(match.Team2)
}

// Project appends one perspective entry to each of the match's two teams.
// The match's result text lands verbatim on both records; only the score
// fields are swapped.
//
// It must be called after Discover has seen every match in the input set.
func (idx *TeamIndex) Project(match model.Match) error {
	team1 := idx.Lookup(match.Team1)
	if team1 == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, match.Team1)
	}
	team2 := idx.Lookup(match.Team2)
	if team2 == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, match.Team2)
	}

	team1.AppendHistory(model.HistoryEntry{
		Opponent:      match.Team2,
		SelfScore:     match.Team1Score,
		OpponentScore: match.Team2Score,
		Result:        match.Result,
	})
	team2.AppendHistory(model.HistoryEntry{
		Opponent:      match.Team1,
		SelfScore:     match.Team2Score,
		OpponentScore: match.Team1Score,
		Result:        match.Result,
	})
	return nil
}

// Aggregate builds the complete per-team view for a match list: one discovery
// pass over all matches, then one projection pass. The input slice is only
// read.
func Aggregate(matches []model.Match) ([]*model.Team, error) {
	idx := NewTeamIndex()
	for _, m := range matches {
		idx.Discover(m)
	}
	for _, m := range matches {
		if err := idx.Project(m); err != nil {
			return nil, err
		}
	}
	return idx.Teams(), nil
}
