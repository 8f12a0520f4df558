// Package main provides the entry point for the matchdex CLI.
//
// Matchdex turns a cricket tournament results page into per-team match
// histories, a multi-sheet Excel workbook, and filled PDF scorecards.
//
// Usage:
//
//	matchdex extract --source <results-url>
//	matchdex replay
//	matchdex history
//
// See --help for all available options.
package main

// main is the entry point for matchdex.
func main() {
	Execute()
}
