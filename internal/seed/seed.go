// internal/seed/seed.go
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"internship-matcher/internal/models"
	"internship-matcher/internal/repository"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

// Data is the on-disk layout of a seed or CLI data file.
type Data struct {
	Candidates  []models.Candidate  `yaml:"candidates"`
	Internships []models.Internship `yaml:"internships"`
}

// Records parses the embedded sample data.
func Records() (*Data, error) {
	return Parse(defaultData)
}

// Parse decodes a YAML data document.
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}

// Load reads a YAML data file from disk.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", path, err)
	}
	return Parse(raw)
}

// Apply registers every sample record with a fresh id and returns how many
// candidates and internships were stored.
func Apply(ctx context.Context, store *repository.Store) (int, int, error) {
	data, err := Records()
	if err != nil {
		return 0, 0, err
	}

	for _, c := range data.Candidates {
		if _, err := store.RegisterCandidate(ctx, c); err != nil {
			return 0, 0, fmt.Errorf("seed candidate %s: %w", c.Name, err)
		}
	}
	for _, i := range data.Internships {
		if _, err := store.RegisterInternship(ctx, i); err != nil {
			return 0, 0, fmt.Errorf("seed internship %s: %w", i.CompanyName, err)
		}
	}

	return len(data.Candidates), len(data.Internships), nil
}
