package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type searchOutput struct {
	Query    string    `json:"query"`
	Picker   bool      `json:"picker"`
	Count    int       `json:"count"`
	Aircraft []summary `json:"aircraft"`
}

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search aircraft by keyword",
		Long: "Search name, manufacturer, category and country. With --picker only name and " +
			"manufacturer are searched and an empty query returns nothing, as in the comparison picker.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, a, strings.Join(args, " "))
		},
	}

	cmd.Flags().Bool("picker", false, "Use the comparison picker search")

	return cmd
}

func runSearch(cmd *cobra.Command, a *app, q string) error {
	picker, _ := cmd.Flags().GetBool("picker")

	repo, err := a.repository()
	if err != nil {
		return err
	}

	results := repo.SearchWide(q)
	if picker {
		results = repo.SearchPicker(q)
	}

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, searchOutput{
			Query:    q,
			Picker:   picker,
			Count:    len(results),
			Aircraft: summarize(results),
		})
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No aircraft found.")
		return nil
	}
	return writeAircraftTable(out, results)
}
