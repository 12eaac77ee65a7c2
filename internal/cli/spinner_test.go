package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func startSpinner(ctx context.Context, msg string) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, msg)
	s.out = &buf
	s.Start()
	return s, &buf
}

// blankLine is what the spinner writes to erase msg.
func blankLine(msg string) string {
	return "\r" + strings.Repeat(" ", len(msg)+4) + "\r"
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	s, buf := startSpinner(context.Background(), "Rendering target view...")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering target view...") {
		t.Errorf("spinner output %q should contain the message", out)
	}
	if !strings.HasSuffix(out, blankLine("Rendering target view...")) {
		t.Errorf("spinner should clear its line on stop, got %q", out)
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, _ := startSpinner(ctx, "Computing current layout...")
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after the context was canceled")
	}
	s.Stop()
}

func TestSpinnerStopsOnTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	s, _ := startSpinner(ctx, "Rendering current view...")

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running past the deadline")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := startSpinner(context.Background(), "Rendering current view...")
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithErrorClearsLine(t *testing.T) {
	s, buf := startSpinner(context.Background(), "Computing target layout...")
	s.StopWithError("Layout failed")
	if !strings.HasSuffix(buf.String(), blankLine("Computing target layout...")) {
		t.Errorf("spinner line should be cleared before the error, got %q", buf.String())
	}
}
