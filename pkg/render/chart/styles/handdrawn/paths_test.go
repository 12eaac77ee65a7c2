package handdrawn

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/tshape/pkg/render/chart/styles"
)

func TestHash(t *testing.T) {
	// Same input, same seed should produce same hash
	if hash("test", 42) != hash("test", 42) {
		t.Errorf("hash() should be deterministic")
	}
	if hash("test", 42) == hash("test", 43) {
		t.Errorf("hash() with different seed should produce different hash")
	}
	if hash("test", 42) == hash("other", 42) {
		t.Errorf("hash() with different input should produce different hash")
	}
	if hash("test", 0) != hash("test", 0) {
		t.Errorf("hash() with zero seed should be deterministic")
	}
}

func TestJitterRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		j := jitter("label-1", DefaultSeed, i)
		if j < -1 || j > 1 {
			t.Fatalf("jitter(%d) = %v outside [-1, 1]", i, j)
		}
	}
}

func TestWobbledRect(t *testing.T) {
	path := wobbledRect(10, 20, 100, 50, 42, "test-label")

	if !strings.HasPrefix(path, "M") {
		t.Errorf("wobbledRect() should start with M, got: %s", path)
	}
	if !strings.HasSuffix(path, "Z") {
		t.Errorf("wobbledRect() should end with Z, got: %s", path)
	}
	if n := strings.Count(path, "Q"); n != 4 {
		t.Errorf("wobbledRect() has %d curves, want 4", n)
	}

	if path != wobbledRect(10, 20, 100, 50, 42, "test-label") {
		t.Errorf("wobbledRect() should be deterministic")
	}
	if path == wobbledRect(10, 20, 100, 50, 42, "other-label") {
		t.Errorf("wobbledRect() should produce different paths for different IDs")
	}
	if path == wobbledRect(10, 20, 100, 50, 7, "test-label") {
		t.Errorf("wobbledRect() should produce different paths for different seeds")
	}
}

func TestWobbledPolygonDegenerateEdge(t *testing.T) {
	path := wobbledPolygon([]styles.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}, 1, "dot")
	if strings.Contains(path, "NaN") {
		t.Errorf("zero-length edge produced NaN: %s", path)
	}
}

func TestRenderOutline(t *testing.T) {
	var buf bytes.Buffer
	New(DefaultSeed).RenderOutline(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("empty outline should render nothing, got %q", buf.String())
	}

	New(DefaultSeed).RenderOutline(&buf, []styles.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	out := buf.String()
	if !strings.Contains(out, `class="outline"`) || !strings.Contains(out, "url(#hd-rough)") {
		t.Errorf("unexpected outline: %s", out)
	}
}

func TestRenderLabel(t *testing.T) {
	var buf bytes.Buffer
	New(DefaultSeed).RenderLabel(&buf, styles.Box{
		ID: "label-2", Text: "Go", Category: "Technical", Color: "#008cbe",
		X: 0, Y: 0, W: 30, H: 17, CX: 15, CY: 8.5, FontSize: 10,
	})
	out := buf.String()
	for _, want := range []string{`id="label-2"`, `fill="#008cbe"`, ">Go</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
