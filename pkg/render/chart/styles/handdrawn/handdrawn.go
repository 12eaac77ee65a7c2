// Package handdrawn draws charts in a sketched, pen-on-paper look.
//
// Every wobble is derived from a hash of the element ID and the style seed,
// so the same chart always renders identically.
package handdrawn

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/matzehuels/tshape/pkg/fonts"
	"github.com/matzehuels/tshape/pkg/render/chart/styles"
)

// DefaultSeed is used when no seed is configured.
const DefaultSeed uint64 = 42

const (
	wobbleMax    = 2.5
	wobbleRatio  = 0.08
	cornerJitter = 0.8
	strokeColor  = "#555555"
	strokeWidth  = 1.5
)

// Handdrawn is the sketch style.
type Handdrawn struct {
	Seed uint64
}

// New returns a handdrawn style with seed.
func New(seed uint64) Handdrawn { return Handdrawn{Seed: seed} }

func (Handdrawn) Name() string { return "handdrawn" }

func (Handdrawn) FontFamily() string {
	return fonts.Handwriting
}

func (Handdrawn) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="hd-rough" x="-5%" y="-5%" width="110%" height="110%">
      <feTurbulence type="fractalNoise" baseFrequency="0.03" numOctaves="2" result="noise"/>
      <feDisplacementMap in="SourceGraphic" in2="noise" scale="2"/>
    </filter>
  </defs>
`)
}

func (h Handdrawn) RenderOutline(buf *bytes.Buffer, pts []styles.Point) {
	if len(pts) == 0 {
		return
	}
	fmt.Fprintf(buf, `  <path class="outline" d="%s" fill="%s" fill-opacity="%.1f" stroke="%s" stroke-width="%.1f" filter="url(#hd-rough)"/>`+"\n",
		wobbledPolygon(pts, h.Seed, "outline"), styles.OutlineFill, styles.OutlineOpacity, strokeColor, strokeWidth)
}

func (h Handdrawn) RenderLabel(buf *bytes.Buffer, b styles.Box) {
	fmt.Fprintf(buf, `  <g class="label" id="%s" data-category="%s">`+"\n", b.ID, styles.EscapeXML(b.Category))
	fmt.Fprintf(buf, `    <path d="%s" fill="%s" fill-opacity="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		wobbledRect(b.X, b.Y, b.W, b.H, h.Seed, b.ID), b.Color, styles.LabelOpacity, strokeColor, strokeWidth)
	styles.RenderText(buf, b)
	buf.WriteString("  </g>\n")
}

// wobbledRect returns a closed path approximating the rectangle with bowed
// edges and jittered corners.
func wobbledRect(x, y, w, h float64, seed uint64, id string) string {
	return wobbledPolygon([]styles.Point{
		{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h},
	}, seed, id)
}

// wobbledPolygon returns a closed path through pts where every edge is a
// quadratic curve with a seeded control point offset.
func wobbledPolygon(pts []styles.Point, seed uint64, id string) string {
	corners := make([]styles.Point, len(pts))
	for i, p := range pts {
		corners[i] = styles.Point{
			X: p.X + jitter(id, seed, 2*i)*cornerJitter,
			Y: p.Y + jitter(id, seed, 2*i+1)*cornerJitter,
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M%.2f,%.2f", corners[0].X, corners[0].Y)
	for i := range corners {
		from, to := corners[i], corners[(i+1)%len(corners)]
		cx, cy := bow(from, to, jitter(id, seed, 1000+i))
		fmt.Fprintf(&b, " Q%.2f,%.2f %.2f,%.2f", cx, cy, to.X, to.Y)
	}
	b.WriteString(" Z")
	return b.String()
}

// bow returns the control point of an edge displaced perpendicular to it.
func bow(from, to styles.Point, j float64) (float64, float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	mx, my := (from.X+to.X)/2, (from.Y+to.Y)/2
	if length == 0 {
		return mx, my
	}
	amp := math.Min(wobbleMax, length*wobbleRatio) * j
	return mx - dy/length*amp, my + dx/length*amp
}

// jitter returns a deterministic value in [-1, 1] for the i-th wobble of id.
func jitter(id string, seed uint64, i int) float64 {
	h := hash(fmt.Sprintf("%s#%d", id, i), seed)
	return float64(h%2001)/1000 - 1
}

func hash(s string, seed uint64) uint64 {
	f := fnv.New64a()
	f.Write([]byte(s))
	x := f.Sum64() ^ (seed * 0x9e3779b97f4a7c15)
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
