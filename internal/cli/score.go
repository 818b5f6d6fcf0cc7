package cli

import (
	"github.com/spf13/cobra"

	"internship-matcher/internal/matching"
)

func newScoreCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score <candidate> <internship>",
		Short: "Show the score breakdown for one candidate and internship",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(opts.dataPath)
			if err != nil {
				return err
			}
			c, err := ds.candidate(args[0])
			if err != nil {
				return err
			}
			i, err := ds.internship(args[1])
			if err != nil {
				return err
			}

			breakdown := matching.ComputeMatch(c, i)

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]interface{}{
					"candidate_id":  c.ID,
					"internship_id": i.ID,
					"match_score":   breakdown,
				})
			}
			return breakdownTable(cmd.OutOrStdout(), c, i, breakdown)
		},
	}
}
