// internal/matching/regions.go
package matching

// RegionTable maps an internship city to the region and zone names a
// candidate may list as a location preference.
type RegionTable struct {
	regions map[string][]string
}

// NewRegionTable copies entries so later mutation of the input cannot leak in.
func NewRegionTable(entries map[string][]string) RegionTable {
	regions := make(map[string][]string, len(entries))
	for city, names := range entries {
		regions[city] = append([]string(nil), names...)
	}
	return RegionTable{regions: regions}
}

// Contains reports whether name is one of city's regions.
func (t RegionTable) Contains(city, name string) bool {
	for _, region := range t.regions[city] {
		if region == name {
			return true
		}
	}
	return false
}

// Regions returns a copy of city's region names.
func (t RegionTable) Regions(city string) []string {
	return append([]string(nil), t.regions[city]...)
}

// DefaultRegions is the static city → region table used for location scoring.
var DefaultRegions = NewRegionTable(map[string][]string{
	"Delhi":     {"NCR", "North India"},
	"Mumbai":    {"Maharashtra", "West India"},
	"Bangalore": {"Karnataka", "South India"},
	"Hyderabad": {"Telangana", "South India"},
	"Chennai":   {"Tamil Nadu", "South India"},
	"Kolkata":   {"West Bengal", "East India"},
	"Pune":      {"Maharashtra", "West India"},
	"Ahmedabad": {"Gujarat", "West India"},
	"Patna":     {"Bihar", "East India"},
})
