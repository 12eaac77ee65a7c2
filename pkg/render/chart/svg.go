package chart

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tshape/pkg/render/chart/styles"
	"github.com/matzehuels/tshape/pkg/skills"
)

const (
	titleSize    = 24.0
	subtitleSize = 14.0
	tickSize     = 12.0
	axisSize     = 14.0
	gridColor    = "#ebebeb"
	textColor    = "#333333"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	palette       Palette
	style         styles.Style
	title         string
	fontSize      float64
	background    bool
}

// WithSize sets the output size in pixels.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) {
		if width > 0 && height > 0 {
			r.width, r.height = width, height
		}
	}
}

func WithPalette(p Palette) SVGOption     { return func(r *svgRenderer) { r.palette = p } }
func WithStyle(s styles.Style) SVGOption  { return func(r *svgRenderer) { r.style = s } }
func WithTitle(title string) SVGOption    { return func(r *svgRenderer) { r.title = title } }
func WithFontSize(size float64) SVGOption { return func(r *svgRenderer) { r.fontSize = size } }

// WithTransparentBackground omits the white background rectangle.
func WithTransparentBackground() SVGOption {
	return func(r *svgRenderer) { r.background = false }
}

func newSVGRenderer(c Chart, opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:      DefaultWidth,
		height:     DefaultHeight,
		palette:    DefaultPalette(),
		style:      styles.Simple{},
		title:      c.Title,
		fontSize:   14,
		background: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.title == "" {
		r.title = DefaultTitle
	}
	return r
}

// RenderSVG draws c as a standalone SVG document.
func RenderSVG(c Chart, opts ...SVGOption) []byte {
	r := newSVGRenderer(c, opts...)
	f := newFrame(c.bounds(), r.width, r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s" data-mode="%s">`+"\n",
		r.width, r.height, r.width, r.height, styles.EscapeXML(r.style.FontFamily()), c.Mode)

	r.style.RenderDefs(&buf)
	if r.background {
		fmt.Fprintf(&buf, `  <rect class="background" width="%.1f" height="%.1f" fill="white"/>`+"\n", r.width, r.height)
	}
	renderGrid(&buf, f)
	r.style.RenderOutline(&buf, outlinePoints(c, f))
	for _, b := range r.boxes(c, f) {
		r.style.RenderLabel(&buf, b)
	}
	renderAxis(&buf, f)
	renderTitle(&buf, f, r.title, c.Subtitle())

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func outlinePoints(c Chart, f frame) []styles.Point {
	pts := make([]styles.Point, len(c.Outline))
	for i, p := range c.Outline {
		pts[i] = styles.Point{X: f.x(p.X), Y: f.y(p.Y)}
	}
	return pts
}

// boxes maps labels to pixel boxes centered on their positions, in input order.
func (r svgRenderer) boxes(c Chart, f frame) []styles.Box {
	out := make([]styles.Box, len(c.Labels))
	for i, l := range c.Labels {
		w, h := styles.BoxSize(l.Text, r.fontSize)
		cx, cy := f.x(l.X), f.y(l.Y)
		out[i] = styles.Box{
			ID:       fmt.Sprintf("label-%d", l.Index),
			Text:     l.Text,
			Category: l.Category,
			Color:    r.palette.Color(l.Category),
			X:        cx - w/2,
			Y:        cy - h/2,
			W:        w,
			H:        h,
			CX:       cx,
			CY:       cy,
			FontSize: r.fontSize,
		}
	}
	return out
}

func renderGrid(buf *bytes.Buffer, f frame) {
	buf.WriteString(`  <g class="grid">` + "\n")
	for _, v := range f.ticks() {
		y := f.y(v)
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
			f.plot.MinX, y, f.plot.MaxX, y, gridColor)
	}
	buf.WriteString("  </g>\n")
}

func renderAxis(buf *bytes.Buffer, f frame) {
	buf.WriteString(`  <g class="axis">` + "\n")
	for _, v := range f.ticks() {
		fmt.Fprintf(buf, `    <text class="tick" x="%.2f" y="%.2f" font-size="%.0f" fill="%s" text-anchor="end" dominant-baseline="central">%s</text>`+"\n",
			f.plot.MinX-8, f.y(v), tickSize, textColor, skills.FormatLevel(v))
	}
	cx, cy := marginLeft/3, (f.plot.MinY+f.plot.MaxY)/2
	fmt.Fprintf(buf, `    <text class="axis-title" x="%.2f" y="%.2f" font-size="%.0f" fill="%s" text-anchor="middle" transform="rotate(-90 %.2f %.2f)">%s</text>`+"\n",
		cx, cy, axisSize, textColor, cx, cy, AxisTitle)
	buf.WriteString("  </g>\n")
}

func renderTitle(buf *bytes.Buffer, f frame, title, subtitle string) {
	fmt.Fprintf(buf, `  <text class="title" x="%.2f" y="%.2f" font-size="%.0f" font-weight="bold" fill="%s">%s</text>`+"\n",
		f.plot.MinX, marginTop/2-4, titleSize, textColor, styles.EscapeXML(title))
	fmt.Fprintf(buf, `  <text class="subtitle" x="%.2f" y="%.2f" font-size="%.0f" fill="%s">%s</text>`+"\n",
		f.plot.MinX, marginTop/2+18, subtitleSize, textColor, styles.EscapeXML(subtitle))
}
