package chart

import (
	"math"

	"github.com/matzehuels/tshape/pkg/geometry"
)

const (
	marginTop    = 90.0
	marginLeft   = 90.0
	marginRight  = 40.0
	marginBottom = 40.0
	dataPad      = 0.5
	targetTicks  = 8
)

// frame maps chart coordinates to pixels.
type frame struct {
	width, height float64
	plot          geometry.Rect // pixel area
	data          geometry.Rect // chart-coordinate area
}

func newFrame(data geometry.Rect, width, height float64) frame {
	data.MinX -= dataPad
	data.MaxX += dataPad
	data.MinY -= dataPad
	data.MaxY += dataPad

	return frame{
		width:  width,
		height: height,
		plot: geometry.Rect{
			MinX: marginLeft,
			MinY: marginTop,
			MaxX: max(marginLeft+1, width-marginRight),
			MaxY: max(marginTop+1, height-marginBottom),
		},
		data: data,
	}
}

func (f frame) x(v float64) float64 {
	return f.plot.MinX + (v-f.data.MinX)/f.data.Width()*f.plot.Width()
}

// y flips the axis: larger chart values are drawn higher.
func (f frame) y(v float64) float64 {
	return f.plot.MaxY - (v-f.data.MinY)/f.data.Height()*f.plot.Height()
}

// ticks returns evenly spaced round values covering the vertical data range.
func (f frame) ticks() []float64 {
	step := niceStep(f.data.Height() / targetTicks)
	var out []float64
	for v := math.Ceil(f.data.MinY/step) * step; v <= f.data.MaxY; v += step {
		out = append(out, math.Round(v/step)*step)
	}
	return out
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch n := raw / mag; {
	case n <= 1:
		return mag
	case n <= 2:
		return 2 * mag
	case n <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
