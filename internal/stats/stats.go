// internal/stats/stats.go
package stats

import (
	"math"

	"internship-matcher/internal/models"
)

const unknown = "Unknown"

type SystemStats struct {
	Candidates  CandidateStats `json:"candidates"`
	Industries  IndustryStats  `json:"industries"`
	Internships CapacityStats  `json:"internships"`
}

type CandidateStats struct {
	Total                int            `json:"total"`
	Active               int            `json:"active"`
	CategoryDistribution map[string]int `json:"category_distribution"`
	DistrictDistribution map[string]int `json:"district_distribution"`
}

type IndustryStats struct {
	Total              int            `json:"total"`
	Active             int            `json:"active"`
	SectorDistribution map[string]int `json:"sector_distribution"`
}

type CapacityStats struct {
	TotalCapacity      int     `json:"total_capacity"`
	FilledPositions    int     `json:"filled_positions"`
	AvailablePositions int     `json:"available_positions"`
	UtilizationRate    float64 `json:"utilization_rate"`
}

// Compute summarizes the registered records. Empty category, district, and
// sector values are counted under "Unknown".
func Compute(candidates []models.Candidate, internships []models.Internship) SystemStats {
	s := SystemStats{
		Candidates: CandidateStats{
			Total:                len(candidates),
			CategoryDistribution: map[string]int{},
			DistrictDistribution: map[string]int{},
		},
		Industries: IndustryStats{
			Total:              len(internships),
			SectorDistribution: map[string]int{},
		},
	}

	for _, c := range candidates {
		if c.Status == models.StatusActive {
			s.Candidates.Active++
		}
		s.Candidates.CategoryDistribution[orUnknown(c.Category)]++
		s.Candidates.DistrictDistribution[orUnknown(c.DistrictType)]++
	}

	for _, i := range internships {
		if i.Status == models.StatusActive {
			s.Industries.Active++
		}
		s.Industries.SectorDistribution[orUnknown(i.Sector)]++
		s.Internships.TotalCapacity += i.InternshipCapacity
		s.Internships.FilledPositions += i.FilledPositions
	}

	s.Internships.AvailablePositions = s.Internships.TotalCapacity - s.Internships.FilledPositions
	s.Internships.UtilizationRate = utilization(s.Internships.FilledPositions, s.Internships.TotalCapacity)

	return s
}

func utilization(filled, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	rate := float64(filled) / float64(capacity) * 100
	return math.Round(rate*100) / 100
}

func orUnknown(v string) string {
	if v == "" {
		return unknown
	}
	return v
}
