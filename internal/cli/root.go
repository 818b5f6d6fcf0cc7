package cli

import (
	"github.com/spf13/cobra"
)

type options struct {
	dataPath string
	json     bool
}

// NewRootCommand builds the matchctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "matchctl",
		Short: "Score and rank candidates against internships",
		Long: `matchctl runs the matching engine over a YAML data file, or over the
built-in sample records when no file is given.

Candidates and internships are addressed by id or by name. Internships also
match on company name or title.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.dataPath, "data", "", "YAML file with candidates and internships (default: built-in sample data)")
	root.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")

	root.AddCommand(newMatchCommand(opts))
	root.AddCommand(newScoreCommand(opts))
	root.AddCommand(newListCommand(opts))
	root.AddCommand(newStatsCommand(opts))

	return root
}

// Execute runs matchctl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
