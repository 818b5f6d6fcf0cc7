package computematchscore

import "internship-matcher/internal/models"

// Input identifies the pair to score. An inline record takes precedence over
// the matching id.
type Input struct {
	CandidateID  string             `json:"candidateId,omitempty"`
	InternshipID string             `json:"internshipId,omitempty"`
	Candidate    *models.Candidate  `json:"candidate,omitempty"`
	Internship   *models.Internship `json:"internship,omitempty"`
}

type Output struct {
	CandidateID  string                     `json:"candidateId"`
	InternshipID string                     `json:"internshipId"`
	OverallScore float64                    `json:"overallScore"`
	MatchScore   models.MatchScoreBreakdown `json:"matchScore"`
}
