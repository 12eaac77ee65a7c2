package server

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/matzehuels/tshape/pkg/errors"
	tio "github.com/matzehuels/tshape/pkg/io"
	"github.com/matzehuels/tshape/pkg/pipeline"
	"github.com/matzehuels/tshape/pkg/render/chart"
	"github.com/matzehuels/tshape/pkg/render/dashboard"
	"github.com/matzehuels/tshape/pkg/skills"
)

// Cache result header, "HIT" or "MISS".
const cacheHeader = "X-Cache"

// handleDashboard renders the dashboard page. The query fields target,
// summary and raw are the page toggles.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := s.cfg.Options
	opts.Mode = skills.ModeFromToggle(toggle(q["target"], false))
	opts.HideSummary = !toggle(q["summary"], true)
	opts.ShowRaw = toggle(q["raw"], false)
	opts.Formats = []string{pipeline.FormatHTML}

	if s.loadErr != nil {
		s.errorPage(w, s.loadErr)
		return
	}

	artifacts, hit, err := s.render(r, opts)
	if err != nil {
		s.errorPage(w, err)
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(artifacts[pipeline.FormatHTML])
}

// errorPage shows the "data unavailable" state.
func (s *Server) errorPage(w http.ResponseWriter, cause error) {
	palette, err := chart.DefaultPalette().With(s.cfg.Options.Palette)
	if err != nil {
		palette = chart.DefaultPalette()
	}
	page := dashboard.ErrorPage(cause, s.cfg.Options.Categories, palette)
	page.Version = s.cfg.Version

	var buf bytes.Buffer
	if err := dashboard.Render(&buf, page); err != nil {
		s.logger.Error("render error page", "err", err)
		http.Error(w, "data not available", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = buf.WriteTo(w)
}

// handleChart serves the chart alone in one format.
func (s *Server) handleChart(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.available(w) {
			return
		}
		mode, err := skills.ParseMode(r.URL.Query().Get("mode"))
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		opts := s.cfg.Options
		opts.Mode = mode
		opts.Formats = []string{format}
		if opts.Renderer == pipeline.RendererBrowser {
			opts.Renderer = pipeline.RendererNative
		}

		artifacts, hit, err := s.render(r, opts)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		setCacheHeader(w, hit)
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(artifacts[format])
	}
}

// handlePlacements serves the placement document for a mode.
func (s *Server) handlePlacements(w http.ResponseWriter, r *http.Request) {
	if !s.available(w) {
		return
	}
	mode, err := skills.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	opts := s.cfg.Options
	opts.Mode = mode

	doc, hit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), s.dataset, opts)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	setCacheHeader(w, hit)
	w.Header().Set("Content-Type", "application/json")
	if err := tio.WriteLayoutJSON(w, doc); err != nil {
		s.logger.Error("write placement document", "err", err)
	}
}

// handleSummary serves the per-category summary.
func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	if !s.available(w) {
		return
	}
	s.jsonResponse(w, http.StatusOK, skills.Summarize(s.dataset.Records, s.cfg.Options.Categories))
}

// handleSkills serves the raw catalog.
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	if !s.available(w) {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.dataset.Records)
}

// handleBreakdown serves the per-category skill lists.
func (s *Server) handleBreakdown(w http.ResponseWriter, _ *http.Request) {
	if !s.available(w) {
		return
	}
	s.jsonResponse(w, http.StatusOK, skills.Breakdown(s.dataset.Records, s.cfg.Options.Categories))
}

// handleHealth reports liveness and whether data is available.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	data := "loaded"
	if s.loadErr != nil {
		data = "unavailable"
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "data": data})
}

// render runs layout and render for the request.
func (s *Server) render(r *http.Request, opts pipeline.Options) (map[string][]byte, bool, error) {
	doc, layoutHit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), s.dataset, opts)
	if err != nil {
		return nil, false, err
	}
	artifacts, renderHit, err := s.runner.RenderWithCacheInfo(r.Context(), s.dataset, doc, opts)
	if err != nil {
		return nil, false, err
	}
	return artifacts, layoutHit && renderHit, nil
}

// available answers 503 when the dataset failed to load.
func (s *Server) available(w http.ResponseWriter) bool {
	if s.loadErr == nil {
		return true
	}
	s.errorResponseStatus(w, http.StatusServiceUnavailable, s.loadErr)
	return false
}

// errorResponse writes an error JSON response with the status mapped from
// the error code.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.errorResponseStatus(w, errors.HTTPStatus(err), err)
}

func (s *Server) errorResponseStatus(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.jsonResponse(w, status, map[string]string{
		"error":   string(code),
		"message": errors.UserMessage(err),
	})
}

// toggle reads a form toggle. The dashboard form sends a hidden "0" before
// each checkbox, so the last value wins.
func toggle(values []string, def bool) bool {
	if len(values) == 0 {
		return def
	}
	switch strings.ToLower(values[len(values)-1]) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func setCacheHeader(w http.ResponseWriter, hit bool) {
	if hit {
		w.Header().Set(cacheHeader, "HIT")
	} else {
		w.Header().Set(cacheHeader, "MISS")
	}
}
