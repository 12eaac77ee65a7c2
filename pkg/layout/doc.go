// Package layout places skill labels inside the T-shape outline.
//
// # Overview
//
// [Compute] turns a sequence of skill records into [Label] positions in two
// phases.
//
// Phase 1 assigns every record an initial position independently of all
// others. The y coordinate is the level chosen by the caller's
// skills.LevelFunc. The x coordinate comes from [Bands]: the usable
// horizontal range is split into equal bands, one per category, and the
// label sits at the midpoint of its category's band. Labels at or beyond the
// shoulder height of the T (|y| >= H) use the range [1, W-1]; labels below it
// use the full range [0, W].
//
// Phase 2 ([Resolve]) separates labels that landed on exactly the same
// coordinates. Each round groups labels by their exact (x, y) pair and moves
// the n-th member of a group (in input order) down by (n-1) * step. Rounds
// repeat until no duplicates remain or the round budget is spent; leftovers
// are reported in [Result.Residual] and are not an error.
//
// # Exact Keys
//
// Duplicate detection compares float64 values with ==, not a tolerance.
// Offsets are multiples of a fixed step, so separated labels differ by at
// least one step rather than by rounding noise.
//
// # Categories
//
// The band order defaults to Domain, Technical, Personal. Categories found in
// the input but missing from the order get their own band, appended in
// first-appearance order, so every label has a defined x.
//
// # Concurrency
//
// Compute is a pure function of its arguments. It keeps no state between
// calls and may run concurrently on disjoint inputs.
package layout
