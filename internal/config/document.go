package config

// Selectors are the CSS selectors used to extract match data from the
// results page. The defaults match the ESPNcricinfo match-results markup.
//
// TeamName and Score are queried relative to each match block; a block with
// fewer than two score nodes is not an error, the missing scores become
// empty strings.
type Selectors struct {
	// MatchBlock selects one element per completed match.
	MatchBlock string `yaml:"match_block"`

	// TeamName selects the two team-name nodes within a match block.
	TeamName string `yaml:"team_name"`

	// Score selects the zero-to-two score nodes within a match block.
	Score string `yaml:"score"`

	// Result selects the result text node within a match block.
	Result string `yaml:"result"`
}

// TextField places one piece of text on the scorecard template.
// Coordinates are PDF points with the origin at the bottom-left of the
// page, matching how template coordinates are usually measured.
type TextField struct {
	// X is the horizontal offset from the left edge in points.
	X float64 `yaml:"x"`

	// Y is the vertical offset from the bottom edge in points.
	Y float64 `yaml:"y"`

	// Size is the font size in points.
	Size float64 `yaml:"size"`
}

// ScorecardLayout fixes where the five scorecard fields are drawn on the
// first page of the template. Names and scores share a larger size; the
// result line is smaller because result texts run long.
type ScorecardLayout struct {
	TeamName      TextField `yaml:"team_name"`
	OpponentName  TextField `yaml:"opponent_name"`
	SelfScore     TextField `yaml:"self_score"`
	OpponentScore TextField `yaml:"opponent_score"`
	Result        TextField `yaml:"result"`
}

// File is the YAML configuration file (.matchdex) contents.
type File struct {
	Selectors Selectors       `yaml:"selectors"`
	Scorecard ScorecardLayout `yaml:"scorecard"`
}

// DefaultSelectors returns the selectors for the ESPNcricinfo results page.
func DefaultSelectors() Selectors {
	return Selectors{
		MatchBlock: "div.match-score-block",
		TeamName:   "p.name",
		Score:      "div.score-detail > span.score",
		Result:     "div.status-text > span",
	}
}

// DefaultScorecardLayout returns the layout matching the bundled
// Template.pdf: a right-hand column at x=430 with the four name/score lines
// at 16pt and the result line lower on the page at 13pt.
func DefaultScorecardLayout() ScorecardLayout {
	return ScorecardLayout{
		TeamName:      TextField{X: 430, Y: 290, Size: 16},
		OpponentName:  TextField{X: 430, Y: 253, Size: 16},
		SelfScore:     TextField{X: 430, Y: 218, Size: 16},
		OpponentScore: TextField{X: 430, Y: 183, Size: 16},
		Result:        TextField{X: 430, Y: 110, Size: 13},
	}
}

// DefaultFile returns a File populated with every default.
func DefaultFile() *File {
	return &File{
		Selectors: DefaultSelectors(),
		Scorecard: DefaultScorecardLayout(),
	}
}
