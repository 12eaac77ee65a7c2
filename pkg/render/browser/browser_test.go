package browser

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.setDefaults()
	if o.Width != 1600 || o.Height != 1000 || o.Timeout != 30*time.Second {
		t.Errorf("defaults = %+v", o)
	}

	o = Options{Width: 640, Height: 480, Timeout: time.Second}
	o.setDefaults()
	if o.Width != 640 || o.Height != 480 || o.Timeout != time.Second {
		t.Errorf("explicit values overwritten: %+v", o)
	}
}

func TestScreenshot(t *testing.T) {
	if testing.Short() || !Available() {
		t.Skip("headless browser not available")
	}
	png, err := Screenshot(context.Background(), []byte("<html><body><h1>tshape</h1></body></html>"), Options{Width: 320, Height: 200})
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG")
	}
}
