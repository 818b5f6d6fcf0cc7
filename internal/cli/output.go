package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"internship-matcher/internal/models"
	"internship-matcher/internal/stats"

	"github.com/olekukonko/tablewriter"
)

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func matchesTable(w io.Writer, matches []models.MatchResult) error {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Candidate", "Company", "Title", "Overall", "Skills", "Location", "Open")
	for n, m := range matches {
		if err := table.Append(
			strconv.Itoa(n+1),
			m.CandidateName,
			m.CompanyName,
			m.InternshipTitle,
			score(m.MatchScore.OverallScore),
			score(m.MatchScore.SkillsScore),
			score(m.MatchScore.LocationScore),
			strconv.Itoa(m.AvailablePositions),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func breakdownTable(w io.Writer, c models.Candidate, i models.Internship, b models.MatchScoreBreakdown) error {
	fmt.Fprintf(w, "%s -> %s (%s)\n", c.Name, i.CompanyName, i.InternshipTitle)

	table := tablewriter.NewWriter(w)
	table.Header("Component", "Score")
	rows := [][]string{
		{"skills", score(b.SkillsScore)},
		{"location", score(b.LocationScore)},
		{"qualification", score(b.QualificationScore)},
		{"sector", score(b.SectorScore)},
		{"affirmative bonus", score(b.AffirmativeBonus)},
		{"experience penalty", score(b.ExperiencePenalty)},
		{"overall", score(b.OverallScore)},
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func candidatesTable(w io.Writer, candidates []models.Candidate) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Location", "Category", "District", "Experience")
	for _, c := range candidates {
		if err := table.Append(c.ID, c.Name, c.CurrentLocation, c.Category, c.DistrictType, strconv.Itoa(c.ExperienceMonths)); err != nil {
			return err
		}
	}
	return table.Render()
}

func internshipsTable(w io.Writer, internships []models.Internship) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Company", "Title", "Location", "Sector", "Open")
	for _, i := range internships {
		if err := table.Append(i.ID, i.CompanyName, i.InternshipTitle, i.Location, i.Sector, strconv.Itoa(i.AvailablePositions())); err != nil {
			return err
		}
	}
	return table.Render()
}

func statsTable(w io.Writer, s stats.SystemStats) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	rows := [][]string{
		{"candidates", strconv.Itoa(s.Candidates.Total)},
		{"active candidates", strconv.Itoa(s.Candidates.Active)},
		{"internships", strconv.Itoa(s.Industries.Total)},
		{"total capacity", strconv.Itoa(s.Internships.TotalCapacity)},
		{"filled positions", strconv.Itoa(s.Internships.FilledPositions)},
		{"available positions", strconv.Itoa(s.Internships.AvailablePositions)},
		{"utilization rate", strconv.FormatFloat(s.Internships.UtilizationRate, 'f', 2, 64) + "%"},
	}
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
