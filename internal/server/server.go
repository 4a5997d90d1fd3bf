// Package server exposes the tracker over HTTP: the cached dataset, cache
// invalidation, the coverage report, and publication reach estimates.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/meridianpr/pr-tracker/pkg/cache"
	"github.com/meridianpr/pr-tracker/pkg/dataset"
	"github.com/meridianpr/pr-tracker/pkg/reach"
	"github.com/meridianpr/pr-tracker/pkg/report"
	"github.com/meridianpr/pr-tracker/pkg/upstream"
)

// Config holds the server dependencies.
type Config struct {
	Cache     *cache.Cache
	Estimator *reach.Estimator

	// Enhancer, when set, answers /api/publications/estimate instead of the
	// plain estimator.
	Enhancer *reach.Enhancer

	// CoverageSheet is the sheet name the coverage report is built from.
	CoverageSheet string

	Logger zerolog.Logger
}

// Server handles the tracker's HTTP API.
type Server struct {
	cache         *cache.Cache
	estimator     *reach.Estimator
	enhancer      *reach.Enhancer
	coverageSheet string
	logger        zerolog.Logger
}

// New creates a server from its dependencies.
func New(cfg Config) *Server {
	if cfg.Estimator == nil {
		cfg.Estimator = reach.NewEstimator()
	}
	return &Server{
		cache:         cfg.Cache,
		estimator:     cfg.Estimator,
		enhancer:      cfg.Enhancer,
		coverageSheet: cfg.CoverageSheet,
		logger:        cfg.Logger,
	}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sheets/all", s.handleSheets)
	mux.HandleFunc("/api/webhooks/sheets", s.handleWebhook)
	mux.HandleFunc("/api/reports/coverage", s.handleCoverage)
	mux.HandleFunc("/api/publications/estimate", s.handleEstimate)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// sheetsResponse is the JSON body served for the dataset endpoint.
type sheetsResponse struct {
	Success       bool                     `json:"success"`
	Sheets        map[string][]dataset.Row `json:"sheets,omitempty"`
	SheetNames    []string                 `json:"sheetNames,omitempty"`
	Timestamp     string                   `json:"timestamp"`
	Cached        bool                     `json:"cached,omitempty"`
	Stale         bool                     `json:"stale,omitempty"`
	StaleReason   string                   `json:"staleReason,omitempty"`
	QuotaExceeded bool                     `json:"quotaExceeded,omitempty"`
	CacheAge      int64                    `json:"cacheAge,omitempty"` // seconds
	Error         string                   `json:"error,omitempty"`
}

// handleSheets serves the dataset on GET and invalidates the cache on POST.
func (s *Server) handleSheets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.serveDataset(w, r)
	case http.MethodPost:
		s.invalidate(w, "manual")
	default:
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) serveDataset(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "1"

	res, err := s.cache.Get(r.Context(), force)
	if err != nil {
		kind := upstream.Classify(err)
		status := http.StatusInternalServerError
		switch kind {
		case upstream.KindQuota:
			status = http.StatusTooManyRequests
		case upstream.KindTimeout:
			status = http.StatusGatewayTimeout
		}
		s.logger.Error().
			Err(err).
			Str("error_kind", string(kind)).
			Int("status", status).
			Msg("Dataset request failed")
		s.writeJSON(w, status, sheetsResponse{
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			QuotaExceeded: kind == upstream.KindQuota,
			Error:         err.Error(),
		})
		return
	}

	now := time.Now()
	resp := sheetsResponse{
		Success:     true,
		Sheets:      res.Payload.Sheets,
		SheetNames:  res.Payload.SheetNames,
		Timestamp:   res.FetchedAt.UTC().Format(time.RFC3339),
		Cached:      res.FromCache,
		Stale:       res.Stale,
		StaleReason: res.StaleReason,
	}
	if res.FromCache {
		resp.CacheAge = int64(res.Age(now) / time.Second)
	}
	if res.Stale {
		resp.QuotaExceeded = res.StaleReason == string(upstream.KindQuota)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleWebhook invalidates the cache when the spreadsheet signals a change.
// Accepts GET as well as POST; change-notification scripts use either.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.invalidate(w, "webhook")
}

func (s *Server) invalidate(w http.ResponseWriter, source string) {
	s.cache.Invalidate()
	s.logger.Info().Str("source", source).Msg("Cache invalidated via API")
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "cache invalidated",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res, err := s.cache.Get(r.Context(), false)
	if err != nil {
		kind := upstream.Classify(err)
		status := http.StatusInternalServerError
		switch kind {
		case upstream.KindQuota:
			status = http.StatusTooManyRequests
		case upstream.KindTimeout:
			status = http.StatusGatewayTimeout
		}
		s.writeError(w, status, err.Error())
		return
	}

	cov := report.BuildCoverage(res.Payload, s.estimator, s.coverageSheet)
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sheet":     s.coverageSheet,
		"coverage":  cov,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "missing required query parameter: name")
		return
	}

	var info reach.PublicationInfo
	if s.enhancer != nil {
		info = s.enhancer.Estimate(r.Context(), name)
	} else {
		info = s.estimator.Estimate(name)
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"publication": info,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
