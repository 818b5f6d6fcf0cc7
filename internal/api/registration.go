// internal/api/registration.go
package api

import (
	"net/http"

	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/common/metrics"
	"internship-matcher/internal/common/validation"
	"internship-matcher/internal/models"
)

type candidateRegistered struct {
	Status      string           `json:"status"`
	Message     string           `json:"message"`
	CandidateID string           `json:"candidate_id"`
	Data        models.Candidate `json:"data"`
}

type internshipRegistered struct {
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	InternshipID string            `json:"internship_id"`
	Data         models.Internship `json:"data"`
}

func (s *Server) handleRegisterCandidate(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var candidate models.Candidate
	if err := decodeValidated(raw, validation.CandidateRegistration, &candidate, errors.NewRegistrationValidationFailedError); err != nil {
		s.writeError(w, r, err)
		return
	}

	stored, err := s.store.RegisterCandidate(r.Context(), candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	metrics.RegistrationsTotal.WithLabelValues("candidate").Inc()

	s.logger.Info("candidate registered", map[string]interface{}{
		"candidateId": stored.ID,
		"name":        stored.Name,
	})

	writeJSON(w, http.StatusOK, candidateRegistered{
		Status:      statusSuccess,
		Message:     "Candidate registered successfully",
		CandidateID: stored.ID,
		Data:        stored,
	})
}

func (s *Server) handleRegisterInternship(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var internship models.Internship
	if err := decodeValidated(raw, validation.InternshipRegistration, &internship, errors.NewRegistrationValidationFailedError); err != nil {
		s.writeError(w, r, err)
		return
	}

	stored, err := s.store.RegisterInternship(r.Context(), internship)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	metrics.RegistrationsTotal.WithLabelValues("internship").Inc()

	s.logger.Info("internship registered", map[string]interface{}{
		"internshipId": stored.ID,
		"company":      stored.CompanyName,
		"capacity":     stored.InternshipCapacity,
	})

	writeJSON(w, http.StatusOK, internshipRegistered{
		Status:       statusSuccess,
		Message:      "Internship registered successfully",
		InternshipID: stored.ID,
		Data:         stored,
	})
}
