package cli

import (
	"github.com/spf13/cobra"
)

const defaultFeatured = 6

func newFeaturedCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show the featured aircraft of the home page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}

			records := repo.Featured(n)
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, summarize(records))
			}
			return writeAircraftTable(out, records)
		},
	}

	cmd.Flags().IntVarP(&n, "limit", "n", defaultFeatured, "Number of aircraft to show")

	return cmd
}
