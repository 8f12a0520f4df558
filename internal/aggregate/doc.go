// Package aggregate turns the flat extracted match list into per-team
// histories.
//
// Aggregation is a strict two-pass design: the first pass discovers every
// participating team in first-appearance order, the second projects each
// match into two symmetric perspective entries. Running both passes over the
// same match list is what guarantees that a team's later matches are never
// missed due to build-order interleaving.
//
// The stage is single-threaded on purpose: input sizes are bounded by
// tournament fixtures, and the ordering invariants (team discovery order,
// per-team history order) are easiest to state and test for a forward pass.
package aggregate
