package model

// HistoryEntry is one match viewed from a single team's perspective.
// Every Match produces exactly two of these, with the score fields swapped
// between the two owning teams.
type HistoryEntry struct {
	// Opponent is the other team's display name.
	Opponent string `json:"opponent"`

	// SelfScore is the owning team's raw score text.
	SelfScore string `json:"self_score"`

	// OpponentScore is the opposing team's raw score text.
	OpponentScore string `json:"opponent_score"`

	// Result is the match result text, copied verbatim from the Match.
	Result string `json:"result"`
}

// Team is a named participant accumulating an ordered history of its matches.
//
// Identity is exact string equality of Name: the source page defines no
// normalization rule, so " India" and "India" would be distinct teams.
// History is append-only and keeps source page order; it is never reordered
// or deduplicated.
type Team struct {
	// Name is the display name and the sole identity key.
	Name string `json:"name"`

	// History holds one entry per match this team played, in the order the
	// matches appeared on the results page.
	History []HistoryEntry `json:"history"`
}

// NewTeam creates a Team with an empty, non-nil history.
func NewTeam(name string) *Team {
	return &Team{
		Name:    name,
		History: make([]HistoryEntry, 0),
	}
}

// AppendHistory appends one perspective entry to the team's record.
func (t *Team) AppendHistory(entry HistoryEntry) {
	t.History = append(t.History, entry)
}
