// internal/matching/score.go
package matching

import (
	"math"
	"strings"

	"internship-matcher/internal/models"
)

const (
	neutralLocationScore      = 0.5
	exactLocationScore        = 1.0
	regionalLocationScore     = 0.7
	mismatchedLocationScore   = 0.2
	neutralQualificationScore = 0.5
	exactQualificationScore   = 1.0
	keywordOverlapStep        = 0.3
	keywordOverlapCap         = 0.8
	preferredSectorScore      = 1.0
	otherSectorScore          = 0.3
	maxAffirmativeBonus       = 0.5
	firstTimeBonus            = 0.10
	experiencePenaltyMonths   = 24
	experiencePenalty         = 0.1
)

var categoryBonus = map[string]float64{
	models.CategoryST:      0.25,
	models.CategorySC:      0.20,
	models.CategoryOBC:     0.15,
	models.CategoryGeneral: 0.0,
}

var districtBonus = map[string]float64{
	models.DistrictAspirational: 0.20,
	models.DistrictRural:        0.15,
	models.DistrictUrban:        0.0,
}

// SkillsSimilarity scores candidate skills against required skills with
// TF-IDF cosine similarity. When neither list yields a usable token the
// lower-cased Jaccard index over whole skills is used instead.
func SkillsSimilarity(candidateSkills, requiredSkills []string) float64 {
	if len(candidateSkills) == 0 || len(requiredSkills) == 0 {
		return 0
	}

	candidateTokens := tokenize(strings.Join(candidateSkills, " "))
	requiredTokens := tokenize(strings.Join(requiredSkills, " "))

	if len(candidateTokens) == 0 && len(requiredTokens) == 0 {
		return jaccard(candidateSkills, requiredSkills)
	}

	return tfidfCosine(candidateTokens, requiredTokens)
}

// LocationScore uses DefaultRegions.
func LocationScore(preferences []string, location string) float64 {
	return locationScore(DefaultRegions, preferences, location)
}

func locationScore(regions RegionTable, preferences []string, location string) float64 {
	if len(preferences) == 0 {
		return neutralLocationScore
	}

	for _, pref := range preferences {
		if pref == location {
			return exactLocationScore
		}
	}

	for _, pref := range preferences {
		if regions.Contains(location, pref) {
			return regionalLocationScore
		}
	}

	return mismatchedLocationScore
}

// QualificationMatch rewards an exact (case-insensitive) qualification hit and
// otherwise gives partial credit for keyword overlaps between pairs.
func QualificationMatch(candidateQualifications, preferredQualifications []string) float64 {
	if len(preferredQualifications) == 0 {
		return neutralQualificationScore
	}

	candidate := lowerSet(candidateQualifications)
	preferred := lowerSet(preferredQualifications)

	for q := range candidate {
		if _, ok := preferred[q]; ok {
			return exactQualificationScore
		}
	}

	overlaps := 0
	for c := range candidate {
		for p := range preferred {
			if anyTokenWithin(p, c) || anyTokenWithin(c, p) {
				overlaps++
			}
		}
	}

	return math.Min(float64(overlaps)*keywordOverlapStep, keywordOverlapCap)
}

// anyTokenWithin reports whether any whitespace token of phrase is a
// substring of target.
func anyTokenWithin(phrase, target string) bool {
	for _, tok := range strings.Fields(phrase) {
		if strings.Contains(target, tok) {
			return true
		}
	}
	return false
}

// AffirmativeActionBonus sums the category, district and first-time bonuses,
// capped at 0.5. Unrecognised values contribute nothing; empty values fall
// back to General and Urban.
func AffirmativeActionBonus(category, districtType string, pastParticipation bool) float64 {
	if category == "" {
		category = models.CategoryGeneral
	}
	if districtType == "" {
		districtType = models.DistrictUrban
	}

	bonus := categoryBonus[category] + districtBonus[districtType]
	if !pastParticipation {
		bonus += firstTimeBonus
	}

	return math.Min(bonus, maxAffirmativeBonus)
}

func SectorScore(preferredSectors []string, sector string) float64 {
	for _, s := range preferredSectors {
		if s == sector {
			return preferredSectorScore
		}
	}
	return otherSectorScore
}

// ExperiencePenalty penalises candidates with more than two years of experience.
func ExperiencePenalty(experienceMonths int) float64 {
	if experienceMonths > experiencePenaltyMonths {
		return experiencePenalty
	}
	return 0
}
