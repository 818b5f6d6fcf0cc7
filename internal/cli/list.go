package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"internship-matcher/internal/stats"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "list <candidates|internships>",
		Short:     "List the records in the data set",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"candidates", "internships"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(opts.dataPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch args[0] {
			case "candidates":
				if opts.json {
					return writeJSON(out, ds.candidates)
				}
				return candidatesTable(out, ds.candidates)
			case "internships", "industries":
				if opts.json {
					return writeJSON(out, ds.internships)
				}
				return internshipsTable(out, ds.internships)
			default:
				return fmt.Errorf("unknown record kind %q (use candidates or internships)", args[0])
			}
		},
	}
}

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(opts.dataPath)
			if err != nil {
				return err
			}
			s := stats.Compute(ds.candidates, ds.internships)
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			return statsTable(cmd.OutOrStdout(), s)
		},
	}
}
