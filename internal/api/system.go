// internal/api/system.go
package api

import (
	"context"
	"net/http"
	"sort"
	"time"

	"internship-matcher/internal/stats"
)

const readinessTimeout = 3 * time.Second

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	candidates, internships, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":           serviceName,
		"status":            "active",
		"candidates_count":  len(candidates),
		"internships_count": len(internships),
		"timestamp":         s.timestamp(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   s.timestamp(),
	})
}

// handleReady runs every readiness check and answers 503 if any fails.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	names := make([]string, 0, len(s.readiness))
	for name := range s.readiness {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	status, code := "ready", http.StatusOK
	for _, name := range names {
		if err := s.readiness[name](ctx); err != nil {
			checks[name] = err.Error()
			status, code = "not_ready", http.StatusServiceUnavailable
			s.logger.Warn("readiness check failed", map[string]interface{}{
				"check": name,
				"error": err.Error(),
			})
			continue
		}
		checks[name] = "ok"
	}

	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
		"time":   s.timestamp(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	candidates, internships, err := s.store.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       statusSuccess,
		"system_stats": stats.Compute(candidates, internships),
		"timestamp":    s.timestamp(),
	})
}
