// internal/api/server.go
package api

import (
	"context"
	"net/http"
	"time"

	"internship-matcher/internal/common/config"
	"internship-matcher/internal/common/logger"
	"internship-matcher/internal/common/observability"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxBodyBytes = 1 << 20
	serviceName  = "Internship Matching API"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

type Options struct {
	Store    *repository.Store
	Engine   *matching.Engine
	Matching config.MatchingConfig
	Metrics  config.MetricsConfig
	Logger   logger.Logger
	Obs      *observability.Observability
	// Readiness checks keyed by dependency name, run by GET /ready.
	Readiness map[string]ReadinessCheck
}

type Server struct {
	store     *repository.Store
	engine    *matching.Engine
	defaults  config.MatchingConfig
	metrics   config.MetricsConfig
	logger    logger.Logger
	obs       *observability.Observability
	readiness map[string]ReadinessCheck
	now       func() time.Time
}

func NewServer(opts Options) *Server {
	engine := opts.Engine
	if engine == nil {
		engine = matching.Default
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	obs := opts.Obs
	if obs == nil {
		obs = observability.NewNoop()
	}

	defaults := opts.Matching
	if defaults.DefaultTopN <= 0 {
		defaults.DefaultTopN = 10
	}

	return &Server{
		store:     opts.Store,
		engine:    engine,
		defaults:  defaults,
		metrics:   opts.Metrics,
		logger:    log.WithFields(map[string]interface{}{"component": "api"}),
		obs:       obs,
		readiness: opts.Readiness,
		now:       time.Now,
	}
}

// Handler returns the routed API wrapped in the request metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.HandleFunc("GET /stats", s.handleStats)

	mux.HandleFunc("POST /candidates", s.handleRegisterCandidate)
	mux.HandleFunc("POST /register_candidate", s.handleRegisterCandidate)
	mux.HandleFunc("POST /internships", s.handleRegisterInternship)
	mux.HandleFunc("POST /register_industry", s.handleRegisterInternship)

	mux.HandleFunc("GET /candidates", s.handleListCandidates)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("GET /internships", s.handleListInternships)
	mux.HandleFunc("GET /internships/{id}", s.handleGetInternship)
	mux.HandleFunc("GET /industries", s.handleListInternships)
	mux.HandleFunc("GET /industries/{id}", s.handleGetInternship)

	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /match_internships", s.handleMatch)
	mux.HandleFunc("POST /score", s.handleScore)

	if s.metrics.Enabled {
		path := s.metrics.Path
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, promhttp.Handler())
	}

	return s.instrument(mux)
}

// NewHTTPServer builds the listener configured by the server section.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.WriteTimeout),
	}
}
