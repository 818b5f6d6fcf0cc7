package findinternshipmatches

import "internship-matcher/internal/models"

// Input mirrors the API match request using job variable naming. Absent
// TopN and MinScoreThreshold fall back to the matching defaults.
type Input struct {
	CandidateID       string   `json:"candidateId,omitempty"`
	InternshipID      string   `json:"internshipId,omitempty"`
	TopN              *int     `json:"topN,omitempty"`
	MinScoreThreshold *float64 `json:"minScoreThreshold,omitempty"`
}

type Output struct {
	Mode         string               `json:"mode"`
	TotalMatches int                  `json:"totalMatches"`
	Matches      []models.MatchResult `json:"matches"`
}
