// internal/matching/engine.go
package matching

import (
	"math"
	"sort"

	"internship-matcher/internal/common/errors"
	"internship-matcher/internal/models"
)

const (
	skillsWeight        = 0.35
	locationWeight      = 0.20
	qualificationWeight = 0.15
	sectorWeight        = 0.15
	baseScore           = 0.15
	maxOverallScore     = 1.0
)

// Mode selects which side of the match is fixed.
type Mode string

const (
	ModeCandidate  Mode = "candidate"
	ModeInternship Mode = "internship"
	ModeAll        Mode = "all"
)

// MatchRequest describes a bulk match. CandidateID wins over InternshipID
// when both are set; neither selects all-vs-all. TopN <= 0 disables
// truncation.
type MatchRequest struct {
	CandidateID       string  `json:"candidate_id,omitempty"`
	InternshipID      string  `json:"internship_id,omitempty"`
	MinScoreThreshold float64 `json:"min_score_threshold"`
	TopN              int     `json:"top_n"`
}

func (r MatchRequest) Mode() Mode {
	switch {
	case r.CandidateID != "":
		return ModeCandidate
	case r.InternshipID != "":
		return ModeInternship
	default:
		return ModeAll
	}
}

// Engine scores candidate/internship pairs. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	regions RegionTable
}

func NewEngine(regions RegionTable) *Engine {
	return &Engine{regions: regions}
}

// Default uses DefaultRegions.
var Default = NewEngine(DefaultRegions)

// ComputeMatch scores a pair with the Default engine.
func ComputeMatch(c models.Candidate, i models.Internship) models.MatchScoreBreakdown {
	return Default.ComputeMatch(c, i)
}

// FindMatches runs a bulk match with the Default engine.
func FindMatches(req MatchRequest, candidates []models.Candidate, internships []models.Internship) ([]models.MatchResult, error) {
	return Default.FindMatches(req, candidates, internships)
}

// ComputeMatch combines every sub-score into the composite. The composite is
// capped at 1.0 but has no lower clamp. Rounding is applied only to the
// returned values.
func (e *Engine) ComputeMatch(c models.Candidate, i models.Internship) models.MatchScoreBreakdown {
	skills := SkillsSimilarity(c.Skills, i.RequiredSkills)
	location := locationScore(e.regions, c.LocationPreference, i.Location)
	qualification := QualificationMatch(c.Qualifications, i.PreferredQualifications)
	bonus := AffirmativeActionBonus(c.Category, c.DistrictType, c.PastParticipation)
	sector := SectorScore(c.PreferredSectors, i.Sector)
	penalty := ExperiencePenalty(c.ExperienceMonths)

	overall := composite(skills, location, qualification, sector, bonus, penalty)

	return models.MatchScoreBreakdown{
		OverallScore:       round3(overall),
		SkillsScore:        round3(skills),
		LocationScore:      round3(location),
		QualificationScore: round3(qualification),
		SectorScore:        round3(sector),
		AffirmativeBonus:   round3(bonus),
		ExperiencePenalty:  round3(penalty),
	}
}

func composite(skills, location, qualification, sector, bonus, penalty float64) float64 {
	weighted := skills*skillsWeight +
		location*locationWeight +
		qualification*qualificationWeight +
		sector*sectorWeight +
		baseScore

	return math.Min(weighted+bonus-penalty, maxOverallScore)
}

func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// FindMatches scores the pairs selected by req.Mode(), drops results under
// MinScoreThreshold, and returns the best TopN by descending overall score.
// Internships without open seats are skipped except in ModeInternship.
func (e *Engine) FindMatches(req MatchRequest, candidates []models.Candidate, internships []models.Internship) ([]models.MatchResult, error) {
	var matches []models.MatchResult

	keep := func(c models.Candidate, i models.Internship) {
		breakdown := e.ComputeMatch(c, i)
		if breakdown.OverallScore < req.MinScoreThreshold {
			return
		}
		matches = append(matches, newResult(c, i, breakdown))
	}

	switch req.Mode() {
	case ModeCandidate:
		candidate, ok := findCandidate(candidates, req.CandidateID)
		if !ok {
			return nil, errors.NewCandidateNotFoundError(req.CandidateID)
		}
		for _, internship := range internships {
			if internship.HasOpenings() {
				keep(candidate, internship)
			}
		}

	case ModeInternship:
		internship, ok := findInternship(internships, req.InternshipID)
		if !ok {
			return nil, errors.NewInternshipNotFoundError(req.InternshipID)
		}
		for _, candidate := range candidates {
			keep(candidate, internship)
		}

	default:
		for _, candidate := range candidates {
			for _, internship := range internships {
				if internship.HasOpenings() {
					keep(candidate, internship)
				}
			}
		}
	}

	return rank(matches, req.TopN), nil
}

// rank sorts by overall score, highest first, and truncates to topN.
func rank(matches []models.MatchResult, topN int) []models.MatchResult {
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].MatchScore.OverallScore > matches[b].MatchScore.OverallScore
	})

	if topN > 0 && len(matches) > topN {
		matches = matches[:topN]
	}
	if matches == nil {
		matches = []models.MatchResult{}
	}
	return matches
}

func newResult(c models.Candidate, i models.Internship, breakdown models.MatchScoreBreakdown) models.MatchResult {
	return models.MatchResult{
		CandidateID:        c.ID,
		CandidateName:      c.Name,
		InternshipID:       i.ID,
		CompanyName:        i.CompanyName,
		InternshipTitle:    i.InternshipTitle,
		MatchScore:         breakdown,
		AvailablePositions: i.AvailablePositions(),
	}
}

func findCandidate(candidates []models.Candidate, id string) (models.Candidate, bool) {
	for _, c := range candidates {
		if c.ID == id {
			return c, true
		}
	}
	return models.Candidate{}, false
}

func findInternship(internships []models.Internship, id string) (models.Internship, bool) {
	for _, i := range internships {
		if i.ID == id {
			return i, true
		}
	}
	return models.Internship{}, false
}
