package chart

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tshape/pkg/fonts"
)

// DOTOptions configures Graphviz output.
type DOTOptions struct {
	// Scale is the number of points per chart unit. Zero means 72 (one inch).
	Scale float64
	// Palette colors the label nodes. Nil means [DefaultPalette].
	Palette Palette
}

// ToDOT converts a chart to an undirected Graphviz graph with pinned node
// positions: outline vertices become point nodes joined by edges, labels
// become filled boxes. The result is meant for `neato -n`.
func ToDOT(c Chart, opts DOTOptions) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = 72
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	var buf bytes.Buffer
	buf.WriteString("graph T {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=24;\n", c.Title)
	fmt.Fprintf(&buf, "  node [fontname=%q];\n", fonts.Graphviz)
	buf.WriteString("\n")

	for i, p := range c.Outline {
		fmt.Fprintf(&buf, "  o%d [shape=point, width=0.01, color=lightgray, pos=\"%s\"];\n", i, pos(p.X, p.Y, scale))
	}
	for i := range c.Outline {
		if len(c.Outline) < 2 {
			break
		}
		fmt.Fprintf(&buf, "  o%d -- o%d [color=lightgray, penwidth=2];\n", i, (i+1)%len(c.Outline))
	}

	buf.WriteString("\n")
	for _, l := range c.Labels {
		fmt.Fprintf(&buf, "  l%d [label=%q, shape=box, style=\"rounded,filled\", fillcolor=%q, fontcolor=white, fontsize=10, pos=\"%s\"];\n",
			l.Index, l.Text, palette.Color(l.Category), pos(l.X, l.Y, scale))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func pos(x, y, scale float64) string {
	return strconv.FormatFloat(x*scale, 'f', 2, 64) + "," + strconv.FormatFloat(y*scale, 'f', 2, 64) + "!"
}

// RenderDOT renders a DOT graph from [ToDOT] to SVG using Graphviz, keeping
// the pinned node positions.
func RenderDOT(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// pixel-sized one so the output scales like [RenderSVG].
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
