// Package server serves the skills dashboard over HTTP.
//
// The dataset is loaded once when the server is created. A load failure is
// kept: the dashboard then shows its "data unavailable" state and the API
// routes answer 503. Layouts are computed per request through the pipeline
// runner, so no layout state is shared between requests.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tshape/pkg/pipeline"
)

// Timeouts of the HTTP server.
const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 60 * time.Second // browser screenshots are slow
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Config holds server configuration.
type Config struct {
	Addr string

	// Options are the base pipeline options; requests only change the mode,
	// the output format and the dashboard toggles.
	Options pipeline.Options

	// Version is shown in the dashboard footer.
	Version string
}

// Server is the dashboard HTTP server.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger

	dataset *pipeline.Dataset
	loadErr error

	router chi.Router
}

// New loads the dataset and builds the router. It does not fail on data
// errors; those are served as the unavailable state.
func New(ctx context.Context, cfg Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	cfg.Options.Logger = logger
	cfg.Options.SetLayoutDefaults()
	cfg.Options.Version = cfg.Version

	s := &Server{cfg: cfg, runner: runner, logger: logger}
	s.dataset, s.loadErr = runner.Load(ctx, cfg.Options)
	if s.loadErr != nil {
		logger.Error("data not available", "err", s.loadErr)
	} else {
		logger.Info("loaded skills", "records", len(s.dataset.Records), "source", s.dataset.SkillsSource)
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.withLogging)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)
	r.Get("/chart.svg", s.handleChart(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/chart.png", s.handleChart(pipeline.FormatPNG, "image/png"))
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/placements", s.handlePlacements)
		r.Get("/summary", s.handleSummary)
		r.Get("/skills", s.handleSkills)
		r.Get("/breakdown", s.handleBreakdown)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Ready reports whether the dataset was loaded.
func (s *Server) Ready() bool { return s.loadErr == nil }

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("serve %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encode JSON response", "err", err)
	}
}
