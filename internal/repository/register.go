// internal/repository/register.go
package repository

import (
	"context"
	"time"

	"internship-matcher/internal/models"

	"github.com/google/uuid"
)

const defaultStipendRange = "Not specified"

var (
	newID = uuid.NewString
	now   = time.Now
)

// RegisterCandidate assigns a fresh id, registration date and active status,
// fills the optional fields' defaults and stores the candidate.
func (s *Store) RegisterCandidate(ctx context.Context, c models.Candidate) (models.Candidate, error) {
	c.ID = newID()
	c.RegistrationDate = now().UTC().Format(time.RFC3339)
	c.Status = models.StatusActive
	if c.PreferredSectors == nil {
		c.PreferredSectors = []string{}
	}
	if len(c.Languages) == 0 {
		c.Languages = []string{"English"}
	}

	if err := s.Candidates.Put(ctx, c); err != nil {
		return models.Candidate{}, err
	}
	return c, nil
}

// RegisterInternship assigns a fresh id, registration date and active status
// and stores the internship with no filled positions.
func (s *Store) RegisterInternship(ctx context.Context, i models.Internship) (models.Internship, error) {
	i.ID = newID()
	i.RegistrationDate = now().UTC().Format(time.RFC3339)
	i.Status = models.StatusActive
	i.FilledPositions = 0
	if i.StipendRange == "" {
		i.StipendRange = defaultStipendRange
	}

	if err := s.Internships.Put(ctx, i); err != nil {
		return models.Internship{}, err
	}
	return i, nil
}

// Snapshot lists every candidate and internship for a matching run.
func (s *Store) Snapshot(ctx context.Context) ([]models.Candidate, []models.Internship, error) {
	candidates, err := s.Candidates.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	internships, err := s.Internships.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return candidates, internships, nil
}
