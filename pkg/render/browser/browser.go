// Package browser renders HTML pages to PNG in headless Chrome.
//
// It is used for the dashboard "html" export when a raster image of the full
// page is wanted. Requires Chrome or Chromium on the system.
package browser

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/matzehuels/tshape/pkg/errors"
)

// Options configures a screenshot.
type Options struct {
	Width   int           // viewport width in CSS pixels (default 1600)
	Height  int           // viewport height in CSS pixels (default 1000)
	Timeout time.Duration // default 30s
	// ExecPath selects the browser binary. Empty uses chromedp's lookup.
	ExecPath string
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = 1600
	}
	if o.Height <= 0 {
		o.Height = 1000
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
}

var candidates = []string{
	"headless-shell", "chromium", "chromium-browser", "google-chrome", "google-chrome-stable",
}

// Available reports whether a Chrome-compatible browser can be found.
func Available() bool {
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// Screenshot loads html in a headless browser and returns a full-page PNG.
func Screenshot(ctx context.Context, html []byte, opts Options) ([]byte, error) {
	opts.setDefaults()

	dir, err := os.MkdirTemp("", "tshape-shot-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	page := filepath.Join(dir, "index.html")
	if err := os.WriteFile(page, html, 0o600); err != nil {
		return nil, fmt.Errorf("write page: %w", err)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(opts.Width, opts.Height),
	)
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate("file://"+filepath.ToSlash(page)),
		chromedp.WaitReady("body"),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		if ctx.Err() == nil && browserCtx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "screenshot timed out after %s", opts.Timeout)
		}
		return nil, fmt.Errorf("browser screenshot: %w", err)
	}
	return png, nil
}
