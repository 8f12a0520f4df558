// Package report generates the output artifacts of an extraction run.
//
// Generators in this package:
//   - WorkbookWriter: one Excel sheet per team via excelize
//   - ScorecardGenerator: per-match filled PDF scorecards from a template
//   - TreeBuilder: the staged per-team output folder tree
//   - SummaryWriter: optional Markdown summary of the run
//   - snapshot helpers: matches.json / teams.json working-directory state
//
// Design decision: Generation is separated from aggregation (package
// aggregate) so each artifact consumes the same read-only team index and
// the generators can run independently of each other.
package report
