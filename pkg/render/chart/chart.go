package chart

import (
	"github.com/matzehuels/tshape/pkg/geometry"
	"github.com/matzehuels/tshape/pkg/layout"
	"github.com/matzehuels/tshape/pkg/skills"
)

// Chart defaults.
const (
	DefaultTitle  = "T-shape skills profile"
	DefaultWidth  = 1600.0
	DefaultHeight = 1000.0
	AxisTitle     = "Skill level"
)

// Chart is everything needed to draw one profile.
type Chart struct {
	Outline    []geometry.Point // chart coordinates (sign-flipped)
	Labels     []layout.Label
	Categories []string
	Mode       skills.Mode
	Title      string
}

// New builds a chart for res. outline is given in source coordinates and is
// mirrored to match the sign-flipped levels.
func New(outline *geometry.Boundary, res layout.Result, mode skills.Mode) Chart {
	c := Chart{
		Labels:     res.Labels,
		Categories: res.Categories,
		Mode:       mode,
		Title:      DefaultTitle,
	}
	if outline != nil {
		c.Outline = outline.FlipY().Points()
	}
	return c
}

// Subtitle describes the mode shown.
func (c Chart) Subtitle() string {
	if c.Mode == skills.ModeTarget {
		return "Skills marked for growth, placed at their target level"
	}
	return "Current skill levels"
}

// bounds returns the data extent of the outline and all labels.
func (c Chart) bounds() geometry.Rect {
	first := true
	var r geometry.Rect
	add := func(x, y float64) {
		if first {
			r = geometry.Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
			first = false
			return
		}
		r.MinX, r.MaxX = min(r.MinX, x), max(r.MaxX, x)
		r.MinY, r.MaxY = min(r.MinY, y), max(r.MaxY, y)
	}
	for _, p := range c.Outline {
		add(p.X, p.Y)
	}
	for _, l := range c.Labels {
		add(l.X, l.Y)
	}
	if first {
		return geometry.Rect{MaxX: 1, MaxY: 1}
	}
	return r
}
