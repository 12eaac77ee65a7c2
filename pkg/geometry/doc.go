// Package geometry describes the outline of the T shape that skill labels are
// placed in.
//
// # Overview
//
// A [Boundary] is an ordered, immutable sequence of points forming a closed
// polygon. Layout code only needs two numbers from it:
//
//   - [Boundary.VerticalExtentAtCenterline]: the largest |y| among points on
//     the centerline x = 0. This is the height of the shoulders of the T,
//     where the crossbar meets the stem.
//   - [Boundary.HorizontalExtent]: the largest x of any point, the overall
//     width of the shape.
//
// Renderers additionally use [Boundary.Points] to draw the polygon and
// [Boundary.Bounds] to size the viewport.
//
// # Sign Convention
//
// Source data measures skill level downwards from the top of the T as a
// positive number. Charts draw level 0 at the top, so both the outline and
// the skill levels are negated before layout with [Boundary.FlipY] and
// skills.FlipSign. Extent queries use absolute values and are unaffected.
//
// # Errors
//
// A boundary with no points, or with no point on the centerline, is a
// configuration error reported with code GEOMETRY_ERROR from pkg/errors.
package geometry
