// Package skills defines the skill catalog and the derived views that feed
// the label layout.
//
// A [Record] is one row of the catalog: a category, a skill name, the
// current level and an optional target level. Records are loaded once and
// never modified; every view returns fresh slices.
//
// # Display Modes
//
// The dashboard has a single toggle between two modes:
//
//   - [ModeCurrent]: every skill placed at its current level.
//   - [ModeTarget]: only skills marked for growth (a target that differs from
//     the current level), placed at the target level and labelled with the
//     distance still to go, e.g. "Go: +2".
//
// [Prepare] applies the chart sign convention ([FlipSign]), the target filter
// ([TargetView]) and picks the level selector for the layout engine.
//
// # Aggregation
//
// [Summarize] and [Breakdown] produce the optional summary table and the
// per-category tabs of the dashboard.
package skills
