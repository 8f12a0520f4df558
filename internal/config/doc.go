// Package config holds all configuration for matchdex.
//
// Configuration comes from three layers, applied in order:
//  1. Compiled-in defaults (NewConfig)
//  2. Environment overrides (MATCHDEX_* variables, optionally via .env)
//  3. CLI flags, which always win
//
// An optional YAML config file (.matchdex) carries the parts that are data
// rather than knobs: the CSS selectors used to extract matches from the
// results page, and the scorecard text layout (coordinates and font sizes).
// Both default to the values the tool was built against, so the file is only
// needed when the source markup or the template PDF changes.
package config
