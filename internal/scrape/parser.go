package scrape

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/matchdex/matchdex/internal/config"
	"github.com/matchdex/matchdex/internal/model"
)

// Parser extracts the match list from results page HTML.
type Parser struct {
	// selectors locate the per-match elements within the document.
	selectors config.Selectors
}

// NewParser creates a Parser using the given selectors.
func NewParser(selectors config.Selectors) *Parser {
	return &Parser{selectors: selectors}
}

// Parse extracts all matches from the page, in document order.
//
// Per-match shape mismatches are absorbed, not reported: two score nodes
// fill both scores, a single node fills only the first team's score, none
// leaves both empty, and a missing result node leaves the result empty.
// Only a document that cannot be parsed at all is an error.
func (p *Parser) Parse(html []byte) ([]model.Match, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}

	matches := make([]model.Match, 0)
	doc.Find(p.selectors.MatchBlock).Each(func(_ int, block *goquery.Selection) {
		matches = append(matches, p.parseBlock(block))
	})
	return matches, nil
}

// parseBlock extracts one Match from a match block element.
func (p *Parser) parseBlock(block *goquery.Selection) model.Match {
	var match model.Match

	names := block.Find(p.selectors.TeamName)
	match.Team1 = names.Eq(0).Text()
	match.Team2 = names.Eq(1).Text()

	scores := block.Find(p.selectors.Score)
	switch scores.Length() {
	case 0:
		// No-result match, both scores stay empty.
	case 1:
		match.Team1Score = scores.Eq(0).Text()
	default:
		match.Team1Score = scores.Eq(0).Text()
		match.Team2Score = scores.Eq(1).Text()
	}

	match.Result = block.Find(p.selectors.Result).First().Text()
	return match
}
