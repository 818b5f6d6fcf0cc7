package cli

import (
	"fmt"
	"strings"

	"internship-matcher/internal/models"
	"internship-matcher/internal/seed"
)

type dataset struct {
	candidates  []models.Candidate
	internships []models.Internship
}

// loadDataset reads the data file, or the embedded samples when path is
// empty. Records without an id get a positional one and records without a
// status count as active.
func loadDataset(path string) (*dataset, error) {
	var (
		data *seed.Data
		err  error
	)
	if path == "" {
		data, err = seed.Records()
	} else {
		data, err = seed.Load(path)
	}
	if err != nil {
		return nil, err
	}

	ds := &dataset{candidates: data.Candidates, internships: data.Internships}
	for i := range ds.candidates {
		if ds.candidates[i].ID == "" {
			ds.candidates[i].ID = fmt.Sprintf("candidate-%d", i+1)
		}
		if ds.candidates[i].Status == "" {
			ds.candidates[i].Status = models.StatusActive
		}
	}
	for i := range ds.internships {
		if ds.internships[i].ID == "" {
			ds.internships[i].ID = fmt.Sprintf("internship-%d", i+1)
		}
		if ds.internships[i].Status == "" {
			ds.internships[i].Status = models.StatusActive
		}
	}
	return ds, nil
}

func (d *dataset) candidate(ref string) (models.Candidate, error) {
	for _, c := range d.candidates {
		if c.ID == ref {
			return c, nil
		}
	}
	for _, c := range d.candidates {
		if strings.EqualFold(c.Name, ref) {
			return c, nil
		}
	}
	return models.Candidate{}, fmt.Errorf("no candidate with id or name %q", ref)
}

func (d *dataset) internship(ref string) (models.Internship, error) {
	for _, i := range d.internships {
		if i.ID == ref {
			return i, nil
		}
	}
	for _, i := range d.internships {
		if strings.EqualFold(i.CompanyName, ref) || strings.EqualFold(i.InternshipTitle, ref) {
			return i, nil
		}
	}
	return models.Internship{}, fmt.Errorf("no internship with id, company or title %q", ref)
}
