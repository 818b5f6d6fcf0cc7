// internal/api/match.go
package api

import (
	"net/http"
	"time"

	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/common/metrics"
	"internship-matcher/internal/common/validation"
	"internship-matcher/internal/matching"
	"internship-matcher/internal/models"
)

// matchBody accepts industry_id as an alias of internship_id.
type matchBody struct {
	CandidateID       *string  `json:"candidate_id"`
	InternshipID      *string  `json:"internship_id"`
	IndustryID        *string  `json:"industry_id"`
	TopN              *int     `json:"top_n"`
	MinScoreThreshold *float64 `json:"min_score_threshold"`
}

type matchingCriteria struct {
	MinScoreThreshold float64 `json:"min_score_threshold"`
	TopN              int     `json:"top_n"`
	CandidateID       *string `json:"candidate_id"`
	InternshipID      *string `json:"internship_id"`
}

type matchResponse struct {
	Status           string               `json:"status"`
	TotalMatches     int                  `json:"total_matches"`
	Matches          []models.MatchResult `json:"matches"`
	MatchingCriteria matchingCriteria     `json:"matching_criteria"`
	Timestamp        string               `json:"timestamp"`
}

type scoreBody struct {
	CandidateID  string `json:"candidate_id"`
	InternshipID string `json:"internship_id"`
}

type scoreResponse struct {
	Status          string                     `json:"status"`
	CandidateID     string                     `json:"candidate_id"`
	CandidateName   string                     `json:"candidate_name"`
	InternshipID    string                     `json:"internship_id"`
	CompanyName     string                     `json:"company_name"`
	InternshipTitle string                     `json:"internship_title"`
	MatchScore      models.MatchScoreBreakdown `json:"match_score"`
}

// toRequest applies the configured defaults to absent fields.
func (s *Server) toRequest(body matchBody) (matching.MatchRequest, matchingCriteria) {
	internshipID := body.InternshipID
	if internshipID == nil || *internshipID == "" {
		internshipID = body.IndustryID
	}

	criteria := matchingCriteria{
		MinScoreThreshold: s.defaults.DefaultMinScore,
		TopN:              s.defaults.DefaultTopN,
		CandidateID:       nonEmpty(body.CandidateID),
		InternshipID:      nonEmpty(internshipID),
	}
	if body.TopN != nil {
		criteria.TopN = *body.TopN
	}
	if body.MinScoreThreshold != nil {
		criteria.MinScoreThreshold = *body.MinScoreThreshold
	}

	req := matching.MatchRequest{
		MinScoreThreshold: criteria.MinScoreThreshold,
		TopN:              criteria.TopN,
	}
	if criteria.CandidateID != nil {
		req.CandidateID = *criteria.CandidateID
	}
	if criteria.InternshipID != nil {
		req.InternshipID = *criteria.InternshipID
	}
	return req, criteria
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body matchBody
	if err := decodeValidated(raw, validation.MatchRequest, &body, errors.NewInvalidMatchRequestError); err != nil {
		metrics.MatchRequests.WithLabelValues("unknown", "invalid").Inc()
		s.writeError(w, r, err)
		return
	}

	req, criteria := s.toRequest(body)
	mode := string(req.Mode())

	start := time.Now()
	candidates, internships, err := s.store.Snapshot(r.Context())
	if err != nil {
		metrics.MatchRequests.WithLabelValues(mode, "error").Inc()
		s.writeError(w, r, err)
		return
	}

	matches, err := s.engine.FindMatches(req, candidates, internships)
	if err != nil {
		outcome := "error"
		if errors.IsNotFound(err) {
			outcome = "not_found"
		}
		metrics.MatchRequests.WithLabelValues(mode, outcome).Inc()
		s.writeError(w, r, err)
		return
	}

	metrics.MatchRequests.WithLabelValues(mode, "success").Inc()
	metrics.MatchDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	metrics.MatchResultsReturned.WithLabelValues(mode).Observe(float64(len(matches)))

	s.logger.Info("matches generated", map[string]interface{}{
		"mode":      mode,
		"matches":   len(matches),
		"topN":      req.TopN,
		"threshold": req.MinScoreThreshold,
	})

	writeJSON(w, http.StatusOK, matchResponse{
		Status:           statusSuccess,
		TotalMatches:     len(matches),
		Matches:          matches,
		MatchingCriteria: criteria,
		Timestamp:        s.timestamp(),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var body scoreBody
	if err := decodeValidated(raw, validation.ScoreRequest, &body, errors.NewInvalidMatchRequestError); err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	candidate, err := s.store.Candidates.Get(ctx, body.CandidateID)
	if err != nil {
		s.writeError(w, r, storageError(err, "candidate", func() *errors.StandardError {
			return errors.NewCandidateNotFoundError(body.CandidateID)
		}))
		return
	}
	internship, err := s.store.Internships.Get(ctx, body.InternshipID)
	if err != nil {
		s.writeError(w, r, storageError(err, "internship", func() *errors.StandardError {
			return errors.NewInternshipNotFoundError(body.InternshipID)
		}))
		return
	}

	writeJSON(w, http.StatusOK, scoreResponse{
		Status:          statusSuccess,
		CandidateID:     candidate.ID,
		CandidateName:   candidate.Name,
		InternshipID:    internship.ID,
		CompanyName:     internship.CompanyName,
		InternshipTitle: internship.InternshipTitle,
		MatchScore:      s.engine.ComputeMatch(candidate, internship),
	})
}

