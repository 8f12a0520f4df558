// Package pipeline executes an extraction run as a sequence of steps.
//
// A run flows through: fetch (or snapshot replay), raw snapshot,
// aggregation, and then the generators (workbook, scorecards, optional
// markdown summary, optional archive). Each step receives the accumulating
// model.Run and records its output there.
//
// Design decision: We use a step pipeline instead of direct function calls
// because:
//  1. extract and replay share everything except the first step
//  2. optional outputs (markdown, archive) become optional steps instead
//     of conditionals threaded through one big function
//  3. it provides consistent logging and cancellation across stages
//
// Aggregation is sequential; scorecard generation fans out per (team,
// entry) pair with errgroup and only completes once every generated
// document has been written — the join barrier is what makes "pipeline
// done" mean "all files on disk".
package pipeline
