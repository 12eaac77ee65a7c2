package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tshape/pkg/errors"
	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/observability"
	"github.com/matzehuels/tshape/pkg/render"
	"github.com/matzehuels/tshape/pkg/render/browser"
	"github.com/matzehuels/tshape/pkg/render/chart"
	"github.com/matzehuels/tshape/pkg/render/dashboard"
)

// Render generates output artifacts in the requested formats from a
// placement document. Formats are rendered concurrently.
//
// ds may be nil when only chart formats are requested; the HTML dashboard
// and the browser renderer need the full catalog.
func Render(ctx context.Context, ds *Dataset, doc tio.Document, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := renderAll(ctx, ds, doc, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func renderAll(ctx context.Context, ds *Dataset, doc tio.Document, opts Options) (map[string][]byte, error) {
	c, err := newChart(doc, opts)
	if err != nil {
		return nil, err
	}
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			data, err := renderFormat(gctx, format, c, ds, doc, opts, svgOpts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format string, c chart.Chart, ds *Dataset, doc tio.Document, opts Options, svgOpts []chart.SVGOption) ([]byte, error) {
	switch format {
	case FormatSVG:
		return renderSVG(c, opts, svgOpts)
	case FormatPNG:
		if opts.Renderer == RendererBrowser {
			return screenshot(ctx, c, ds, doc, opts, svgOpts)
		}
		if opts.Renderer == RendererGraphviz {
			svg, err := renderSVG(c, opts, svgOpts)
			if err != nil {
				return nil, err
			}
			return render.ToPNG(svg, opts.Scale)
		}
		return chart.RenderPNG(c, chart.WithPNGSVGOptions(svgOpts...), chart.WithScale(opts.Scale))
	case FormatPDF:
		if opts.Renderer == RendererGraphviz {
			svg, err := renderSVG(c, opts, svgOpts)
			if err != nil {
				return nil, err
			}
			return render.ToPDF(svg)
		}
		return chart.RenderPDF(c, svgOpts...)
	case FormatJSON:
		return chart.RenderJSON(c, svgOpts...)
	case FormatDOT:
		return []byte(chart.ToDOT(c, dotOptions(opts))), nil
	case FormatHTML:
		return renderDashboard(c, ds, doc, opts, svgOpts)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

// renderSVG draws the chart with the selected renderer.
func renderSVG(c chart.Chart, opts Options, svgOpts []chart.SVGOption) ([]byte, error) {
	if opts.Renderer == RendererGraphviz {
		return chart.RenderDOT(chart.ToDOT(c, dotOptions(opts)))
	}
	return chart.RenderSVG(c, svgOpts...), nil
}

// renderDashboard builds the dashboard page around the chart.
func renderDashboard(c chart.Chart, ds *Dataset, doc tio.Document, opts Options, svgOpts []chart.SVGOption) ([]byte, error) {
	if ds == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "the dashboard needs the skills catalog, not only a placement document")
	}
	palette, err := opts.palette()
	if err != nil {
		return nil, err
	}
	svg, err := renderSVG(c, opts, svgOpts)
	if err != nil {
		return nil, err
	}

	page := dashboard.NewPage(ds.Records, doc.Categories, palette)
	page.Mode = doc.Mode
	page.ShowSummary = opts.ShowSummary()
	page.ShowRaw = opts.ShowRaw
	page.Version = opts.Version
	page.Chart = template.HTML(svg)
	page.Residual = doc.Residual

	var buf bytes.Buffer
	if err := dashboard.Render(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// screenshot renders the dashboard in a headless browser.
func screenshot(ctx context.Context, c chart.Chart, ds *Dataset, doc tio.Document, opts Options, svgOpts []chart.SVGOption) ([]byte, error) {
	html, err := renderDashboard(c, ds, doc, opts, svgOpts)
	if err != nil {
		return nil, err
	}
	return browser.Screenshot(ctx, html, browser.Options{
		Width:  int(opts.Width),
		Height: int(opts.Height),
	})
}

func newChart(doc tio.Document, opts Options) (chart.Chart, error) {
	outline, err := doc.Outline()
	if err != nil {
		return chart.Chart{}, err
	}
	c := chart.New(outline, doc.Result(), doc.Mode)
	c.Title = opts.Title
	return c, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) ([]chart.SVGOption, error) {
	palette, err := opts.palette()
	if err != nil {
		return nil, err
	}
	style, err := chart.ParseStyle(opts.Style, opts.Seed)
	if err != nil {
		return nil, err
	}
	return []chart.SVGOption{
		chart.WithSize(opts.Width, opts.Height),
		chart.WithPalette(palette),
		chart.WithStyle(style),
		chart.WithTitle(opts.Title),
	}, nil
}

func dotOptions(opts Options) chart.DOTOptions {
	palette, _ := opts.palette()
	return chart.DOTOptions{Palette: palette}
}
