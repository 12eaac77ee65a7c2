package layout

import "math"

// crossbarInset pulls band edges inside the outline where labels sit at or
// beyond the shoulder height.
const crossbarInset = 1.0

// Geometry is the part of the outline the layout depends on.
// *geometry.Boundary satisfies it.
type Geometry interface {
	VerticalExtentAtCenterline() (float64, error)
	HorizontalExtent() float64
}

// Bands partitions the horizontal extent of the outline into one band per
// category.
type Bands struct {
	Shoulder float64  // H: max |y| on the centerline
	Width    float64  // W: max x of the outline
	Order    []string // left-to-right category order

	index map[string]int
}

// NewBands builds the band partition for g and order.
// The only error is a geometry error from g.
func NewBands(g Geometry, order []string) (Bands, error) {
	h, err := g.VerticalExtentAtCenterline()
	if err != nil {
		return Bands{}, err
	}
	b := Bands{
		Shoulder: h,
		Width:    g.HorizontalExtent(),
		Order:    append([]string(nil), order...),
		index:    make(map[string]int, len(order)),
	}
	for i, c := range b.Order {
		if _, dup := b.index[c]; !dup {
			b.index[c] = i
		}
	}
	return b, nil
}

// Range returns the usable horizontal range for a label at y.
func (b Bands) Range(y float64) (lo, hi float64) {
	if math.Abs(y) >= b.Shoulder {
		return crossbarInset, b.Width - crossbarInset
	}
	return 0, b.Width
}

// Band returns the horizontal extent of category's band at y.
// ok is false for a category outside the order.
func (b Bands) Band(y float64, category string) (lo, hi float64, ok bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, 0, false
	}
	start, w := b.bandWidth(y)
	return start + w*float64(i), start + w*float64(i+1), true
}

// X returns the band midpoint for category at y.
func (b Bands) X(y float64, category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	start, w := b.bandWidth(y)
	return start + w*(float64(i)+0.5), true
}

func (b Bands) bandWidth(y float64) (start, width float64) {
	lo, hi := b.Range(y)
	return lo, (hi - lo) / float64(len(b.Order))
}

// PositionFor returns the initial x position of a label at y.
// Categories outside the band order are placed at the center of the usable
// range; [Compute] never produces that case since it extends the order first.
func PositionFor(y float64, category string, b Bands) float64 {
	if x, ok := b.X(y, category); ok {
		return x
	}
	lo, hi := b.Range(y)
	return (lo + hi) / 2
}
