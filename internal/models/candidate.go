// internal/models/candidate.go
package models

// Candidate categories recognised by the affirmative-action bonus.
const (
	CategoryGeneral = "General"
	CategoryOBC     = "OBC"
	CategorySC      = "SC"
	CategoryST      = "ST"
)

// District types recognised by the affirmative-action bonus.
const (
	DistrictUrban        = "Urban"
	DistrictRural        = "Rural"
	DistrictAspirational = "Aspirational"
)

const StatusActive = "active"

type Candidate struct {
	ID                 string   `json:"id" yaml:"id"`
	Name               string   `json:"name" yaml:"name"`
	Email              string   `json:"email" yaml:"email"`
	Phone              string   `json:"phone" yaml:"phone"`
	Skills             []string `json:"skills" yaml:"skills"`
	Qualifications     []string `json:"qualifications" yaml:"qualifications"`
	LocationPreference []string `json:"location_preference" yaml:"location_preference"`
	CurrentLocation    string   `json:"current_location" yaml:"current_location"`
	Category           string   `json:"category" yaml:"category"`
	DistrictType       string   `json:"district_type" yaml:"district_type"`
	PastParticipation  bool     `json:"past_participation" yaml:"past_participation"`
	ExperienceMonths   int      `json:"experience_months" yaml:"experience_months"`
	PreferredSectors   []string `json:"preferred_sectors" yaml:"preferred_sectors"`
	Languages          []string `json:"languages" yaml:"languages"`
	RegistrationDate   string   `json:"registration_date,omitempty" yaml:"registration_date,omitempty"`
	Status             string   `json:"status,omitempty" yaml:"status,omitempty"`
}
