// internal/api/lookup.go
package api

import (
	"net/http"

	"internship-matcher/internal/common/errors"
)

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.store.Candidates.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     statusSuccess,
		"count":      len(candidates),
		"candidates": candidates,
	})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	candidate, err := s.store.Candidates.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, storageError(err, "candidate", func() *errors.StandardError {
			return errors.NewCandidateNotFoundError(id)
		}))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    statusSuccess,
		"candidate": candidate,
	})
}

func (s *Server) handleListInternships(w http.ResponseWriter, r *http.Request) {
	internships, err := s.store.Internships.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      statusSuccess,
		"count":       len(internships),
		"internships": internships,
	})
}

func (s *Server) handleGetInternship(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	internship, err := s.store.Internships.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, storageError(err, "internship", func() *errors.StandardError {
			return errors.NewInternshipNotFoundError(id)
		}))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     statusSuccess,
		"internship": internship,
	})
}
