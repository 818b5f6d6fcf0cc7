package stats

import (
	"testing"

	"internship-matcher/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	candidates := []models.Candidate{
		{ID: "c1", Category: models.CategoryGeneral, DistrictType: models.DistrictUrban, Status: models.StatusActive},
		{ID: "c2", Category: models.CategorySC, DistrictType: models.DistrictAspirational, Status: models.StatusActive},
		{ID: "c3", Category: models.CategoryGeneral, Status: "inactive"},
	}
	internships := []models.Internship{
		{ID: "i1", Sector: "Technology", InternshipCapacity: 5, FilledPositions: 1, Status: models.StatusActive},
		{ID: "i2", Sector: "Finance", InternshipCapacity: 3, FilledPositions: 1, Status: models.StatusActive},
		{ID: "i3", InternshipCapacity: 4},
	}

	s := Compute(candidates, internships)

	assert.Equal(t, 3, s.Candidates.Total)
	assert.Equal(t, 2, s.Candidates.Active)
	assert.Equal(t, map[string]int{"General": 2, "SC": 1}, s.Candidates.CategoryDistribution)
	assert.Equal(t, map[string]int{"Urban": 1, "Aspirational": 1, "Unknown": 1}, s.Candidates.DistrictDistribution)

	assert.Equal(t, 3, s.Industries.Total)
	assert.Equal(t, 2, s.Industries.Active)
	assert.Equal(t, map[string]int{"Technology": 1, "Finance": 1, "Unknown": 1}, s.Industries.SectorDistribution)

	assert.Equal(t, 12, s.Internships.TotalCapacity)
	assert.Equal(t, 2, s.Internships.FilledPositions)
	assert.Equal(t, 10, s.Internships.AvailablePositions)
	assert.Equal(t, 16.67, s.Internships.UtilizationRate)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, nil)

	assert.Zero(t, s.Candidates.Total)
	assert.Empty(t, s.Candidates.CategoryDistribution)
	assert.NotNil(t, s.Industries.SectorDistribution)
	assert.Zero(t, s.Internships.UtilizationRate)
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		filled, capacity int
		want             float64
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 10, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{4, 4, 100},
		{5, 4, 125},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utilization(tt.filled, tt.capacity), "filled=%d capacity=%d", tt.filled, tt.capacity)
	}
}
