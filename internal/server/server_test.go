package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/observability"
	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/render"
	"github.com/matzehuels/tshape/pkg/skills"
)

func newTestServer(t *testing.T, opts pipeline.Options) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s := New(context.Background(), Config{Options: opts, Version: "v0.0.1-test"}, nil, logger)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func document(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func TestDashboardDefaults(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	resp := get(t, ts, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc := document(t, resp)
	assert.Equal(t, "current", doc.Find("#chart").AttrOr("data-mode", ""))
	assert.Equal(t, 14, doc.Find("#chart g.label").Length())
	assert.Equal(t, 1, doc.Find("#summary").Length())
	assert.Equal(t, 0, doc.Find("#raw").Length())
	assert.Equal(t, 0, doc.Find("#error").Length())
	assert.Contains(t, doc.Find("footer").Text(), "v0.0.1-test")
}

func TestDashboardToggles(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	// Hidden "0" fields precede the checkbox values; the last value wins.
	resp := get(t, ts, "/?target=0&target=1&summary=0&raw=0&raw=1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := document(t, resp)
	assert.Equal(t, "target", doc.Find("#chart").AttrOr("data-mode", ""))
	assert.Equal(t, 8, doc.Find("#chart g.label").Length(), "only skills marked for growth")
	assert.Equal(t, 0, doc.Find("#summary").Length())
	assert.Equal(t, 1, doc.Find("#raw").Length())

	_, checked := doc.Find("#show-target").Attr("checked")
	assert.True(t, checked)
	_, checked = doc.Find("#show-summary").Attr("checked")
	assert.False(t, checked)
}

func TestDashboardBreakdownCoversCatalogInTargetMode(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	doc := document(t, get(t, ts, "/?target=1"))
	assert.Equal(t, 14, doc.Find("#breakdown .skill-row").Length())
}

func TestChartSVG(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	resp := get(t, ts, "/chart.svg?mode=target")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<svg"))
	assert.Contains(t, string(body), `data-mode="target"`)
}

func TestChartInvalidMode(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	resp := get(t, ts, "/chart.svg?mode=future")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_MODE", body["error"])
}

func TestChartPNG(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})
	resp := get(t, ts, "/chart.png")

	if !render.Available() {
		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
		return
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestPlacements(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	resp := get(t, ts, "/api/placements?mode=target")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := tio.ReadLayoutJSON(resp.Body)
	require.NoError(t, err, "response should be a valid placement document")
	assert.Equal(t, skills.ModeTarget, doc.Mode)
	assert.Len(t, doc.Labels, 8)
	assert.Equal(t, 0, doc.Residual)
}

func TestSummaryAndSkills(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	var summary []skills.CategorySummary
	resp := get(t, ts, "/api/summary")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	require.Len(t, summary, 3)
	assert.Equal(t, "Domain", summary[0].Category)

	total := 0
	for _, s := range summary {
		total += s.Count
	}
	assert.Equal(t, 14, total)

	var records []skills.Record
	resp = get(t, ts, "/api/skills")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 14)

	var breakdown []skills.CategoryBreakdown
	resp = get(t, ts, "/api/breakdown")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&breakdown))
	assert.Len(t, breakdown, 3)
}

func TestDataUnavailable(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{
		SkillsPath: "testdata/missing.csv",
		ShapePath:  "testdata/missing.csv",
	})

	resp := get(t, ts, "/")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	doc := document(t, resp)
	assert.Equal(t, 1, doc.Find("#error").Length())
	assert.Contains(t, doc.Find("#error").Text(), "Error loading data")
	assert.Equal(t, 0, doc.Find("#chart").Length())

	for _, path := range []string{"/api/summary", "/api/skills", "/api/placements", "/chart.svg"} {
		resp := get(t, ts, path)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), path)
		assert.Equal(t, "FILE_NOT_FOUND", body["error"], path)
	}

	var health map[string]string
	resp = get(t, ts, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "unavailable", health["data"])
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	var health map[string]string
	resp := get(t, ts, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, map[string]string{"status": "ok", "data": "loaded"}, health)
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})

	resp := get(t, ts, "/healthz")
	_, err := uuid.Parse(resp.Header.Get(RequestIDHeader))
	assert.NoError(t, err, "a request ID should be assigned")

	id := uuid.NewString()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, id)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get(RequestIDHeader), "incoming IDs are kept")
}

func TestNotFound(t *testing.T) {
	ts := newTestServer(t, pipeline.Options{})
	assert.Equal(t, http.StatusNotFound, get(t, ts, "/nope").StatusCode)
}

type recordingServerHooks struct {
	observability.NoopServerHooks
	routes   chan string
	statuses chan int
}

func (h *recordingServerHooks) OnResponse(_ context.Context, _, route string, status int, _ time.Duration) {
	h.routes <- route
	h.statuses <- status
}

func TestServerHooks(t *testing.T) {
	hooks := &recordingServerHooks{routes: make(chan string, 1), statuses: make(chan int, 1)}
	observability.SetServerHooks(hooks)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t, pipeline.Options{})
	get(t, ts, "/api/summary")

	assert.Equal(t, "/api/summary", <-hooks.routes)
	assert.Equal(t, http.StatusOK, <-hooks.statuses)
}

func TestToggle(t *testing.T) {
	tests := []struct {
		values []string
		def    bool
		want   bool
	}{
		{nil, true, true},
		{nil, false, false},
		{[]string{"0"}, true, false},
		{[]string{"0", "1"}, false, true},
		{[]string{"true"}, false, true},
		{[]string{"on"}, false, true},
		{[]string{"1", "0"}, true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toggle(tt.values, tt.def), "toggle(%v, %v)", tt.values, tt.def)
	}
}
