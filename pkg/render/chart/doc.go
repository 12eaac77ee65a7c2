// Package chart draws the T-shape skills profile.
//
// A [Chart] pairs the outline with a computed [layout.Result]. Sinks turn it
// into SVG ([RenderSVG]), PNG ([RenderPNG]), PDF ([RenderPDF]), a pixel-space
// JSON description ([RenderJSON]) or a Graphviz graph ([ToDOT], [RenderDOT]).
//
// Levels are drawn the way the layout produced them: sign-flipped, so that
// deeper skills sit lower in the stem of the T. The outline is mirrored the
// same way by [New].
//
//	c := chart.New(outline, res, skills.ModeCurrent)
//	svg := chart.RenderSVG(c, chart.WithSize(1600, 1000), chart.WithStyle(handdrawn.New(7)))
//
// [layout.Result]: github.com/matzehuels/tshape/pkg/layout.Result
package chart
