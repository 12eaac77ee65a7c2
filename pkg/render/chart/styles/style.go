// Package styles defines how chart elements are drawn.
//
// A [Style] receives elements already mapped to pixel coordinates and only
// decides their appearance. [Simple] draws clean shapes; the handdrawn
// subpackage draws seeded, wobbly outlines.
package styles

import "bytes"

// Style defines the visual appearance of a chart.
type Style interface {
	// Name returns the identifier used on the command line and in config.
	Name() string
	// FontFamily returns the CSS font stack for all chart text.
	FontFamily() string
	// RenderDefs writes SVG <defs> content (filters, patterns).
	RenderDefs(buf *bytes.Buffer)
	// RenderOutline writes the T-shape polygon.
	RenderOutline(buf *bytes.Buffer, pts []Point)
	// RenderLabel writes a single skill label box with its text.
	RenderLabel(buf *bytes.Buffer, b Box)
}

// Point is a pixel coordinate.
type Point struct{ X, Y float64 }

// Box contains all data needed to render a single label.
type Box struct {
	ID       string  // Stable identifier, e.g. "label-3"
	Text     string  // Display text
	Category string  // Category key
	Color    string  // Fill color token
	X, Y     float64 // Top-left corner
	W, H     float64 // Dimensions
	CX, CY   float64 // Center (text anchor)
	FontSize float64
}

// Outline and label appearance shared by all styles.
const (
	OutlineFill    = "lightgray"
	OutlineOpacity = 0.3
	LabelOpacity   = 0.8
	LabelTextColor = "white"
)
