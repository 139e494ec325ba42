package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"planes_info/internal/query"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the aircraft types with their record counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}

			counts := query.TypeCounts(repo)
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return writeJSON(out, counts)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tLABEL\tCOUNT")
			for _, c := range counts {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", c.Value, c.Label, c.Count)
			}
			return tw.Flush()
		},
	}
}
