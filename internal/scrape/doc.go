// Package scrape fetches the tournament results page and extracts the raw
// match list from it.
//
// The package is deliberately tolerant of shape mismatches in the markup:
// a match block with one or zero score nodes yields empty score strings and
// a missing result node yields an empty result, never an error. Network and
// HTTP failures, on the other hand, abort the run; there is no retry.
//
// Design decision: We use PuerkitoBio/goquery rather than walking
// golang.org/x/net/html nodes by hand because the extraction is defined in
// terms of CSS selectors (configurable via the .matchdex file), and goquery
// evaluates those directly while still handling malformed HTML.
package scrape
