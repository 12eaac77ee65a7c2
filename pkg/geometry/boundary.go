package geometry

import (
	"math"

	"github.com/matzehuels/tshape/pkg/errors"
)

// Centerline is the x coordinate of the T's horizontal center in source
// coordinates.
const Centerline = 0.0

// Point is a single outline vertex.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Boundary is the immutable outline of the T shape.
// The zero value is not usable; construct with [NewBoundary].
type Boundary struct {
	points []Point
}

// NewBoundary returns a boundary over a copy of points.
// It fails with GEOMETRY_ERROR if points is empty.
func NewBoundary(points []Point) (*Boundary, error) {
	if len(points) == 0 {
		return nil, errors.New(errors.ErrCodeGeometry, "boundary has no points")
	}
	return &Boundary{points: append([]Point(nil), points...)}, nil
}

// Points returns a copy of the outline in its original order.
func (b *Boundary) Points() []Point {
	return append([]Point(nil), b.points...)
}

// Len returns the number of outline points.
func (b *Boundary) Len() int { return len(b.points) }

// VerticalExtentAtCenterline returns the largest |y| among points lying on
// the centerline. It fails with GEOMETRY_ERROR when no point has x == 0.
func (b *Boundary) VerticalExtentAtCenterline() (float64, error) {
	found := false
	extent := 0.0
	for _, p := range b.points {
		if p.X != Centerline {
			continue
		}
		found = true
		extent = math.Max(extent, math.Abs(p.Y))
	}
	if !found {
		return 0, errors.New(errors.ErrCodeGeometry, "boundary has no point on the centerline x=%g", Centerline)
	}
	return extent, nil
}

// HorizontalExtent returns the largest x coordinate of the outline.
func (b *Boundary) HorizontalExtent() float64 {
	extent := b.points[0].X
	for _, p := range b.points[1:] {
		extent = math.Max(extent, p.X)
	}
	return extent
}

// Bounds returns the bounding box of the outline.
func (b *Boundary) Bounds() Rect {
	r := Rect{
		MinX: b.points[0].X, MaxX: b.points[0].X,
		MinY: b.points[0].Y, MaxY: b.points[0].Y,
	}
	for _, p := range b.points[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

// FlipY returns a new boundary with every y coordinate negated.
func (b *Boundary) FlipY() *Boundary {
	flipped := make([]Point, len(b.points))
	for i, p := range b.points {
		flipped[i] = Point{X: p.X, Y: -p.Y}
	}
	return &Boundary{points: flipped}
}
