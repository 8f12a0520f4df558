package model

// Match is one completed fixture between two named teams, exactly as it was
// extracted from the results page. It is never mutated after extraction.
//
// Score fields hold raw free-text scores ("250/7 (50 ov)" and the like).
// When the source markup carries fewer than two score nodes the missing
// fields are empty strings, not omitted: downstream generators render every
// field unconditionally and rely on that uniformity.
type Match struct {
	// Team1 is the display name of the first listed team.
	Team1 string `json:"team1"`

	// Team2 is the display name of the second listed team.
	Team2 string `json:"team2"`

	// Team1Score is the raw score text for Team1, or "" if absent.
	Team1Score string `json:"team1_score"`

	// Team2Score is the raw score text for Team2, or "" if absent.
	Team2Score string `json:"team2_score"`

	// Result is the free-text result summary, e.g. "India won by 50 runs".
	// It is copied verbatim onto both teams' histories even though its
	// natural-language framing favors one side.
	Result string `json:"result"`
}
