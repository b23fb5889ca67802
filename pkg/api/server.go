// Package api exposes the kinship inference and layout engine over
// HTTP. The surface is deliberately small: two computation endpoints
// plus health and metrics. Authentication and persistence belong to
// the upstream directory backend, not to this service.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dhimarketer/newDirReact-sub000/pkg/layout"
	"github.com/dhimarketer/newDirReact-sub000/pkg/logging"
	"github.com/dhimarketer/newDirReact-sub000/pkg/metrics"
	"github.com/dhimarketer/newDirReact-sub000/pkg/registry"
)

// Version reported by /health.
const Version = "1.0.0"

// Server handles the family graph HTTP API.
type Server struct {
	engine    *layout.Engine
	cache     *registry.Cache
	metrics   *metrics.Registry
	logger    logging.Logger
	startTime time.Time
}

// NewServer wires the API against its collaborators. A nil cache
// disables caching; a nil logger discards logs.
func NewServer(engine *layout.Engine, cache *registry.Cache, reg *metrics.Registry, logger logging.Logger) *Server {
	if engine == nil {
		engine = layout.NewEngine(layout.DefaultConfig())
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Server{
		engine:    engine,
		cache:     cache,
		metrics:   reg,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Handler returns the routed handler with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/classify", s.handleClassify)
	mux.HandleFunc("/layout", s.handleLayout)

	return s.requestIDMiddleware(s.loggingMiddleware(s.metricsMiddleware(s.corsMiddleware(mux))))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	size := 0
	if s.cache != nil {
		size = s.cache.Size()
	}
	s.respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now(),
		Uptime:    time.Since(s.startTime).String(),
		CacheSize: size,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, ErrorResponse{Error: msg})
}
