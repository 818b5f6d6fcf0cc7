// internal/models/match.go
package models

// MatchScoreBreakdown holds the composite score and every sub-score for a
// single candidate/internship pair, each rounded to 3 decimals.
type MatchScoreBreakdown struct {
	OverallScore       float64 `json:"overall_score"`
	SkillsScore        float64 `json:"skills_score"`
	LocationScore      float64 `json:"location_score"`
	QualificationScore float64 `json:"qualification_score"`
	SectorScore        float64 `json:"sector_score"`
	AffirmativeBonus   float64 `json:"affirmative_bonus"`
	ExperiencePenalty  float64 `json:"experience_penalty"`
}

type MatchResult struct {
	CandidateID        string              `json:"candidate_id"`
	CandidateName      string              `json:"candidate_name"`
	InternshipID       string              `json:"internship_id"`
	CompanyName        string              `json:"company_name"`
	InternshipTitle    string              `json:"internship_title"`
	MatchScore         MatchScoreBreakdown `json:"match_score"`
	AvailablePositions int                 `json:"available_positions"`
}
