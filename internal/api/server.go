// Package api serves MOS predictions, viewing geometry, stored evaluation
// runs and model charts over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/streaminglabs/pmos"
	"github.com/streaminglabs/pmos/internal/config"
	"github.com/streaminglabs/pmos/internal/monitoring"
	"github.com/streaminglabs/pmos/internal/store"
	"github.com/streaminglabs/pmos/internal/version"
)

// Server holds the HTTP handler state. The store may be nil, in which case
// the run-history endpoints report 503.
type Server struct {
	store *store.Store
	cfg   *config.ServerConfig
}

// NewServer builds a Server around an optional store and configuration.
func NewServer(st *store.Store, cfg *config.ServerConfig) *Server {
	return &Server{store: st, cfg: cfg}
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/version", s.handleVersion)
		r.Post("/predict/{metric}", s.handlePredict)
		r.Get("/geometry", s.handleGeometry)
		r.Get("/devices", s.handleDevices)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})
	r.Get("/charts/wr", s.handleWRChart)
	r.Get("/charts/fusion/{metric}", s.handleFusionChart)
	return r
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pmos: parametric MOS models for multiscreen video\n"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version":    version.Version,
		"git_sha":    version.GitSHA,
		"build_time": version.BuildTime,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		monitoring.Logf("JSON encoding error: %v", err)
	}
}

// errorCode maps the library's error taxonomy to stable machine-readable
// strings for API clients.
func errorCode(err error) string {
	switch {
	case errors.Is(err, pmos.ErrInvalidResolution):
		return "invalid_resolution"
	case errors.Is(err, pmos.ErrInvalidPlayerSize):
		return "invalid_player_size"
	case errors.Is(err, pmos.ErrInvalidHDR):
		return "invalid_hdr"
	case errors.Is(err, pmos.ErrInvalidUpsampling):
		return "invalid_upsampling"
	case errors.Is(err, pmos.ErrInvalidDevice):
		return "invalid_device"
	case errors.Is(err, pmos.ErrMissingProfile):
		return "missing_profile"
	case errors.Is(err, pmos.ErrInvalidProfile):
		return "invalid_profile"
	case errors.Is(err, pmos.ErrGeometryOutOfRange):
		return "geometry_out_of_range"
	case errors.Is(err, pmos.ErrInvalidMetricValue):
		return "invalid_metric_value"
	}
	return "internal"
}

func (s *Server) writeModelError(w http.ResponseWriter, err error) {
	code := errorCode(err)
	status := http.StatusBadRequest
	if code == "internal" {
		status = http.StatusInternalServerError
	}
	s.writeJSON(w, status, map[string]string{"error": code, "detail": err.Error()})
}
