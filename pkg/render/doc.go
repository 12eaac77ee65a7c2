// Package render provides visualization rendering for skill profiles.
//
// # Overview
//
// This package contains the rendering pipeline that turns a computed label
// layout into visual output. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - The T-shape chart (in [chart] subpackage)
//   - The HTML dashboard (in [dashboard] subpackage)
//   - Headless browser screenshots of the dashboard (in [browser] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := chart.RenderSVG(c, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [chart]: github.com/matzehuels/tshape/pkg/render/chart
// [dashboard]: github.com/matzehuels/tshape/pkg/render/dashboard
// [browser]: github.com/matzehuels/tshape/pkg/render/browser
package render
