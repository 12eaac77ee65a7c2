// Package dashboard renders the skills profile as a single HTML page.
//
// The page mirrors the interactive dashboard: a chart, three view toggles
// (growth view, summary table, raw data table), a legend, and per-category
// breakdown tabs. Toggles are plain GET form fields, so the page works as a
// static export as well as behind the server.
package dashboard

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/matzehuels/tshape/pkg/render/chart"
	"github.com/matzehuels/tshape/pkg/skills"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.New("dashboard.html.tmpl").Funcs(template.FuncMap{
	"level":   skills.FormatLevel,
	"fixed":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"signed":  func(v float64) string { return fmt.Sprintf("%+.1f", v) },
	"badge":   badgeClass,
	"deref":   func(v *float64) float64 { return *v },
	"safeCSS": func(s string) template.CSS { return template.CSS(s) },
}).ParseFS(templateFS, "templates/*.tmpl"))

// Page is the data shown on the dashboard.
type Page struct {
	Title   string
	Version string
	Action  string // form target of the toggles

	Mode        skills.Mode
	ShowSummary bool
	ShowRaw     bool

	// Chart is the inline chart markup, usually the SVG from chart.RenderSVG.
	Chart    template.HTML
	Residual int

	Legend    []LegendEntry
	Summary   []skills.CategorySummary
	Records   []skills.Record
	Breakdown []skills.CategoryBreakdown

	// Error replaces all data sections with the "data unavailable" state.
	Error string
}

// ShowTarget reports whether the growth view is active.
func (p Page) ShowTarget() bool { return p.Mode == skills.ModeTarget }

// LegendEntry describes one category badge.
type LegendEntry struct {
	Category    string
	Color       string
	Description string
}

var descriptions = map[string]string{
	skills.CategoryDomain:    "Domain-specific knowledge",
	skills.CategoryTechnical: "Technical skills & tools",
	skills.CategoryPersonal:  "Soft skills & competencies",
}

// Legend builds legend entries for categories colored with palette.
func Legend(categories []string, palette chart.Palette) []LegendEntry {
	out := make([]LegendEntry, len(categories))
	for i, c := range categories {
		out[i] = LegendEntry{Category: c, Color: palette.Color(c), Description: descriptions[c]}
	}
	return out
}

// NewPage fills the data sections from records: the summary and breakdown
// always cover the full catalog, independent of the chart mode.
func NewPage(records []skills.Record, order []string, palette chart.Palette) Page {
	categories := skills.Categories(records, order)
	return Page{
		Title:       "T-shape skills visualisation",
		Action:      "/",
		Mode:        skills.ModeCurrent,
		ShowSummary: true,
		Legend:      Legend(categories, palette),
		Summary:     skills.Summarize(records, order),
		Records:     records,
		Breakdown:   skills.Breakdown(records, order),
	}
}

// ErrorPage returns the "data unavailable" page for err.
func ErrorPage(err error, order []string, palette chart.Palette) Page {
	return Page{
		Title:  "T-shape skills visualisation",
		Action: "/",
		Mode:   skills.ModeCurrent,
		Legend: Legend(order, palette),
		Error:  err.Error(),
	}
}

// Render writes the page to w.
func Render(w io.Writer, p Page) error {
	if p.Action == "" {
		p.Action = "/"
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// badgeClass selects the target badge color: growth or a held level is a
// success, a target below the current level a warning.
func badgeClass(delta float64) string {
	if delta >= 0 {
		return "success"
	}
	return "warning"
}
