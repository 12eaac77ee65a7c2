package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	fontCharWidth = 0.6
	boxPadX       = 0.5
	boxPadY       = 0.35
)

// TextWidth estimates the rendered width of s at fontSize.
func TextWidth(s string, fontSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * fontSize * fontCharWidth
}

// BoxSize returns the size of a label box fitting s at fontSize.
func BoxSize(s string, fontSize float64) (w, h float64) {
	return TextWidth(s, fontSize) + 2*boxPadX*fontSize, fontSize * (1 + 2*boxPadY)
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// PointList formats pts for a polygon points attribute.
func PointList(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// RenderText writes the centered label text of b.
func RenderText(buf *bytes.Buffer, b Box) {
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		b.CX, b.CY, b.FontSize, LabelTextColor, EscapeXML(b.Text))
}
