// Package model defines the core data structures used throughout matchdex.
//
// This package contains the following main types:
//   - Match: One completed fixture as extracted from the results page
//   - Team: A named participant accumulating its match history
//   - HistoryEntry: One match viewed from a single team's perspective
//   - Run: The accumulator carried through the extraction pipeline
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (scrape, aggregate, report, database) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for snapshot output and
// database storage.
package model
