package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/tshape/pkg/fonts"
)

// Simple draws flat shapes with rounded label boxes.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) FontFamily() string {
	return fonts.Sans
}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderOutline(buf *bytes.Buffer, pts []Point) {
	fmt.Fprintf(buf, `  <polygon class="outline" points="%s" fill="%s" fill-opacity="%.1f" stroke="%s"/>`+"\n",
		PointList(pts), OutlineFill, OutlineOpacity, OutlineFill)
}

func (Simple) RenderLabel(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf, `  <g class="label" id="%s" data-category="%s">`+"\n", b.ID, EscapeXML(b.Category))
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="4" fill="%s" fill-opacity="%.1f"/>`+"\n",
		b.X, b.Y, b.W, b.H, b.Color, LabelOpacity)
	RenderText(buf, b)
	buf.WriteString("  </g>\n")
}
