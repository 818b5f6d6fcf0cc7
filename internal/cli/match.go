package cli

import (
	"github.com/spf13/cobra"

	"internship-matcher/internal/matching"
	"internship-matcher/internal/models"
)

func newMatchCommand(opts *options) *cobra.Command {
	var (
		candidateRef  string
		internshipRef string
		topN          int
		minScore      float64
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank matches for a candidate, an internship, or every pair",
		Long: `Rank matches by overall score.

Examples:
  matchctl match                                # best pairs across everyone
  matchctl match --candidate "Arjun Sharma"     # internships for one candidate
  matchctl match --internship "TechCorp India"  # candidates for one internship
  matchctl match --top 3 --min-score 0.6 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(opts.dataPath)
			if err != nil {
				return err
			}

			req := matching.MatchRequest{TopN: topN, MinScoreThreshold: minScore}
			if candidateRef != "" {
				c, err := ds.candidate(candidateRef)
				if err != nil {
					return err
				}
				req.CandidateID = c.ID
			}
			if internshipRef != "" {
				i, err := ds.internship(internshipRef)
				if err != nil {
					return err
				}
				req.InternshipID = i.ID
			}

			matches, err := matching.FindMatches(req, ds.candidates, ds.internships)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.json {
				return writeJSON(out, struct {
					Mode         matching.Mode        `json:"mode"`
					TotalMatches int                  `json:"total_matches"`
					Matches      []models.MatchResult `json:"matches"`
				}{req.Mode(), len(matches), matches})
			}
			return matchesTable(out, matches)
		},
	}

	cmd.Flags().StringVar(&candidateRef, "candidate", "", "candidate id or name")
	cmd.Flags().StringVar(&internshipRef, "internship", "", "internship id, company or title")
	cmd.Flags().IntVar(&topN, "top", 10, "maximum number of matches (0 for all)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0.3, "minimum overall score")

	return cmd
}
