package dashboard

import (
	"bytes"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tshape/pkg/render/chart"
	"github.com/matzehuels/tshape/pkg/skills"
)

func catalog() []skills.Record {
	return []skills.Record{
		{Category: skills.CategoryDomain, Skill: "Grid operations", Level: 3, Target: skills.Float(5)},
		{Category: skills.CategoryTechnical, Skill: "Go", Level: 8},
		{Category: skills.CategoryTechnical, Skill: "Kubernetes", Level: 4.5, Target: skills.Float(4)},
		{Category: skills.CategoryPersonal, Skill: "Mentoring <1:1>", Level: 2, Target: skills.Float(2)},
	}
}

func render(t *testing.T, p Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderDefaults(t *testing.T) {
	p := NewPage(catalog(), skills.DefaultCategoryOrder, chart.DefaultPalette())
	p.Chart = template.HTML(`<svg class="chart-svg"></svg>`)
	doc := render(t, p)

	assert.Equal(t, 1, doc.Find("#chart svg.chart-svg").Length(), "chart markup should be inlined")
	assert.Equal(t, 1, doc.Find("#summary").Length(), "summary is shown by default")
	assert.Equal(t, 0, doc.Find("#raw").Length(), "raw data is hidden by default")
	assert.Equal(t, 0, doc.Find("#error").Length())

	_, checked := doc.Find("#show-summary").Attr("checked")
	assert.True(t, checked)
	_, checked = doc.Find("#show-target").Attr("checked")
	assert.False(t, checked)

	assert.Equal(t, 3, doc.Find("#summary tbody tr").Length())
	assert.Equal(t, "current", doc.Find("#chart").AttrOr("data-mode", ""))
}

func TestRenderLegend(t *testing.T) {
	p := NewPage(catalog(), skills.DefaultCategoryOrder, chart.DefaultPalette())
	doc := render(t, p)

	items := doc.Find("#legend-categories li")
	require.Equal(t, 3, items.Length())
	assert.Equal(t, "Domain", items.First().AttrOr("data-category", ""))
	assert.Contains(t, items.First().Find(".badge").AttrOr("style", ""), "#821e7d")
	assert.Contains(t, items.Eq(1).Text(), "Technical skills & tools")
}

func TestRenderToggles(t *testing.T) {
	p := NewPage(catalog(), skills.DefaultCategoryOrder, chart.DefaultPalette())
	p.Mode = skills.ModeTarget
	p.ShowSummary = false
	p.ShowRaw = true
	doc := render(t, p)

	assert.Equal(t, 0, doc.Find("#summary").Length())
	require.Equal(t, 1, doc.Find("#raw").Length())
	assert.Equal(t, 4, doc.Find("#raw tbody tr").Length())

	_, checked := doc.Find("#show-target").Attr("checked")
	assert.True(t, checked)
	assert.Equal(t, "target", doc.Find("#chart").AttrOr("data-mode", ""))

	// Records without a target leave the cell empty.
	goRow := doc.Find("#raw tbody tr").Eq(1)
	assert.Equal(t, "", strings.TrimSpace(goRow.Find("td").Eq(3).Text()))
}

func TestRenderBreakdown(t *testing.T) {
	doc := render(t, NewPage(catalog(), skills.DefaultCategoryOrder, chart.DefaultPalette()))

	labels := doc.Find(".tabs > label")
	require.Equal(t, 3, labels.Length())
	assert.Equal(t, "Technical (2)", labels.Eq(1).Text())

	technical := doc.Find(`.panel[data-category="Technical"]`)
	rows := technical.Find(".skill-row")
	require.Equal(t, 2, rows.Length())

	// Highest level first.
	assert.Equal(t, "Go", rows.Eq(0).Find(".name").Text())
	assert.Equal(t, "—", strings.TrimSpace(rows.Eq(0).Find(".target").Text()))

	k8s := rows.Eq(1).Find(".target .badge")
	assert.True(t, k8s.HasClass("bg-warning"))
	assert.Equal(t, "Target: 4 (-0.5)", k8s.Text())

	domain := doc.Find(`.panel[data-category="Domain"] .target .badge`)
	assert.True(t, domain.HasClass("bg-success"))
	assert.Equal(t, "Target: 5 (+2.0)", domain.Text())

	held := doc.Find(`.panel[data-category="Personal"] .target .badge`)
	assert.True(t, held.HasClass("bg-success"), "an unchanged target is not a warning")
}

func TestRenderEscapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewPage(catalog(), nil, chart.DefaultPalette())))
	assert.Contains(t, buf.String(), "Mentoring &lt;1:1&gt;")
	assert.NotContains(t, buf.String(), "Mentoring <1:1>")
}

func TestErrorPage(t *testing.T) {
	p := ErrorPage(errors.New("open data/skills.csv: no such file"), skills.DefaultCategoryOrder, chart.DefaultPalette())
	doc := render(t, p)

	require.Equal(t, 1, doc.Find("#error").Length())
	assert.Contains(t, doc.Find("#error .alert-danger").Text(), "no such file")
	assert.Contains(t, doc.Find("#error").Text(), "Data not available")
	assert.Equal(t, 0, doc.Find("#chart").Length())
	assert.Equal(t, 0, doc.Find("#breakdown").Length())
	assert.Equal(t, 3, doc.Find("#legend-categories li").Length(), "legend stays available")
}

func TestLegendUnknownCategory(t *testing.T) {
	entries := Legend([]string{"Leadership"}, chart.DefaultPalette())
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Description)
	assert.Equal(t, chart.DefaultPalette().Color("Leadership"), entries[0].Color)
}
