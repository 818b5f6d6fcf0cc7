// internal/seed/seed_test.go
package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"internship-matcher/internal/matching"
	"internship-matcher/internal/models"
	"internship-matcher/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	data, err := Records()

	require.NoError(t, err)
	require.Len(t, data.Candidates, 4)
	require.Len(t, data.Internships, 4)

	arjun := data.Candidates[0]
	assert.Equal(t, "Arjun Sharma", arjun.Name)
	assert.Equal(t, []string{"Python", "Machine Learning", "Data Analysis", "SQL", "Django"}, arjun.Skills)
	assert.Equal(t, models.CategoryGeneral, arjun.Category)
	assert.Equal(t, 6, arjun.ExperienceMonths)
	assert.True(t, data.Candidates[2].PastParticipation)

	techCorp := data.Internships[0]
	assert.Equal(t, "TechCorp India", techCorp.CompanyName)
	assert.Equal(t, "Delhi", techCorp.Location)
	assert.Equal(t, 5, techCorp.InternshipCapacity)
	assert.Equal(t, "₹25,000 - ₹35,000", techCorp.StipendRange)
	assert.True(t, techCorp.RemoteAllowed)
}

func TestRecords_DataScienceMatch(t *testing.T) {
	data, err := Records()
	require.NoError(t, err)

	score := matching.ComputeMatch(data.Candidates[0], data.Internships[0])

	assert.InDelta(t, 0.866, score.OverallScore, 1e-9)
	assert.Equal(t, 1.0, score.LocationScore)
	assert.Equal(t, 1.0, score.SectorScore)
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	candidates, internships, err := Apply(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, 4, candidates)
	assert.Equal(t, 4, internships)

	storedCandidates, storedInternships, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, storedCandidates, 4)
	require.Len(t, storedInternships, 4)

	ids := map[string]bool{}
	for _, c := range storedCandidates {
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, models.StatusActive, c.Status)
		assert.NotEmpty(t, c.RegistrationDate)
		ids[c.ID] = true
	}
	assert.Len(t, ids, 4)

	for _, i := range storedInternships {
		assert.True(t, i.HasOpenings())
		assert.Equal(t, 0, i.FilledPositions)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
candidates:
  - id: c-1
    name: Test Candidate
    skills: [Go]
internships:
  - id: i-1
    company_name: Test Co
    internship_capacity: 1
`), 0o600))

	data, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "c-1", data.Candidates[0].ID)
	assert.Equal(t, []string{"Go"}, data.Candidates[0].Skills)
	assert.Equal(t, "Test Co", data.Internships[0].CompanyName)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("candidates: [oops"))
	assert.Error(t, err)
}
