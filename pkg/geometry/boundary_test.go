package geometry

import (
	"testing"

	"github.com/matzehuels/tshape/pkg/errors"
)

func mustBoundary(t *testing.T, pts ...Point) *Boundary {
	t.Helper()
	b, err := NewBoundary(pts)
	if err != nil {
		t.Fatalf("NewBoundary: %v", err)
	}
	return b
}

func TestNewBoundaryEmpty(t *testing.T) {
	_, err := NewBoundary(nil)
	if !errors.Is(err, errors.ErrCodeGeometry) {
		t.Fatalf("NewBoundary(nil) error = %v, want GEOMETRY_ERROR", err)
	}
}

func TestNewBoundaryCopiesInput(t *testing.T) {
	pts := []Point{{0, 5}, {8, 0}}
	b := mustBoundary(t, pts...)
	pts[0].Y = 100

	if got, _ := b.VerticalExtentAtCenterline(); got != 5 {
		t.Errorf("VerticalExtentAtCenterline() = %v after caller mutation, want 5", got)
	}
}

func TestVerticalExtentAtCenterline(t *testing.T) {
	tests := []struct {
		name    string
		points  []Point
		want    float64
		wantErr bool
	}{
		{
			name:   "mixed signs",
			points: []Point{{0, 5}, {0, -5}, {0, 3}, {8, 0}},
			want:   5,
		},
		{
			name:   "negative only",
			points: []Point{{0, -4}, {0, -1}, {12, -4}},
			want:   4,
		},
		{
			name:   "ignores off-center points",
			points: []Point{{0, 2}, {1, 50}, {-1, -50}},
			want:   2,
		},
		{
			name:   "single centerline point at origin",
			points: []Point{{0, 0}, {3, 9}},
			want:   0,
		},
		{
			name:    "no centerline point",
			points:  []Point{{1, 5}, {8, 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoundary(t, tt.points...)
			got, err := b.VerticalExtentAtCenterline()
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeGeometry) {
					t.Fatalf("error = %v, want GEOMETRY_ERROR", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("VerticalExtentAtCenterline() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHorizontalExtent(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   float64
	}{
		{"includes (8,0)", []Point{{0, 5}, {0, -5}, {0, 3}, {8, 0}}, 8},
		{"single point", []Point{{3, 3}}, 3},
		{"all negative", []Point{{-4, 0}, {-2, 1}}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoundary(t, tt.points...)
			if got := b.HorizontalExtent(); got != tt.want {
				t.Errorf("HorizontalExtent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	b := mustBoundary(t, Point{0, 4}, Point{12, 4}, Point{12, 0}, Point{0, 0})

	h1, err1 := b.VerticalExtentAtCenterline()
	h2, err2 := b.VerticalExtentAtCenterline()
	if err1 != nil || err2 != nil || h1 != h2 {
		t.Errorf("VerticalExtentAtCenterline not idempotent: %v/%v, %v/%v", h1, err1, h2, err2)
	}
	if w1, w2 := b.HorizontalExtent(), b.HorizontalExtent(); w1 != w2 {
		t.Errorf("HorizontalExtent not idempotent: %v vs %v", w1, w2)
	}
}

func TestFlipY(t *testing.T) {
	b := mustBoundary(t, Point{0, 4}, Point{12, 10})
	f := b.FlipY()

	got := f.Points()
	want := []Point{{0, -4}, {12, -10}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FlipY point %d = %v, want %v", i, got[i], want[i])
		}
	}

	// Original untouched, extents unchanged by the flip.
	if b.Points()[0].Y != 4 {
		t.Error("FlipY modified the receiver")
	}
	h, _ := b.VerticalExtentAtCenterline()
	fh, _ := f.VerticalExtentAtCenterline()
	if h != fh {
		t.Errorf("flipped extent = %v, want %v", fh, h)
	}
}

func TestBounds(t *testing.T) {
	b := mustBoundary(t, Point{0, 0}, Point{12, 0}, Point{12, -4}, Point{8, -10}, Point{4, -10})
	r := b.Bounds()

	if r.MinX != 0 || r.MaxX != 12 || r.MinY != -10 || r.MaxY != 0 {
		t.Errorf("Bounds() = %+v", r)
	}
	if r.Width() != 12 || r.Height() != 10 {
		t.Errorf("Width/Height = %v/%v, want 12/10", r.Width(), r.Height())
	}
}
