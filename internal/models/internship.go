// internal/models/internship.go
package models

type Internship struct {
	ID                        string   `json:"id" yaml:"id"`
	CompanyName               string   `json:"company_name" yaml:"company_name"`
	ContactEmail              string   `json:"contact_email" yaml:"contact_email"`
	ContactPhone              string   `json:"contact_phone" yaml:"contact_phone"`
	InternshipTitle           string   `json:"internship_title" yaml:"internship_title"`
	InternshipDescription     string   `json:"internship_description" yaml:"internship_description"`
	RequiredSkills            []string `json:"required_skills" yaml:"required_skills"`
	PreferredQualifications   []string `json:"preferred_qualifications" yaml:"preferred_qualifications"`
	Location                  string   `json:"location" yaml:"location"`
	Sector                    string   `json:"sector" yaml:"sector"`
	InternshipCapacity        int      `json:"internship_capacity" yaml:"internship_capacity"`
	FilledPositions           int      `json:"filled_positions" yaml:"filled_positions"`
	DurationMonths            int      `json:"duration_months" yaml:"duration_months"`
	StipendRange              string   `json:"stipend_range" yaml:"stipend_range"`
	RemoteAllowed             bool     `json:"remote_allowed" yaml:"remote_allowed"`
	PreferredCandidateProfile string   `json:"preferred_candidate_profile" yaml:"preferred_candidate_profile"`
	RegistrationDate          string   `json:"registration_date,omitempty" yaml:"registration_date,omitempty"`
	Status                    string   `json:"status,omitempty" yaml:"status,omitempty"`
}

// AvailablePositions is capacity minus filled seats. It is negative for
// over-filled (malformed) records.
func (i Internship) AvailablePositions() int {
	return i.InternshipCapacity - i.FilledPositions
}

// HasOpenings reports whether the internship is eligible in bulk matching.
func (i Internship) HasOpenings() bool {
	return i.AvailablePositions() > 0
}
