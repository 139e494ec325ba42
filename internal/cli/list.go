package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planes_info/internal/query"
)

type listOutput struct {
	State    query.FilterState `json:"state"`
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Aircraft []summary         `json:"aircraft"`
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List aircraft, filtered by type and search text",
		Long: "List aircraft. --type narrows to commercial, military, private or helicopter; " +
			"--search matches name, manufacturer, category and country. " +
			"--state restores a filter saved as a query string (search=...&type=...).",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, a)
		},
	}

	cmd.Flags().StringP("type", "t", query.TypeAll, "Aircraft type: all, commercial, military, private, helicopter")
	cmd.Flags().StringP("search", "s", "", "Search text")
	cmd.Flags().String("state", "", "Saved filter state as a query string")

	return cmd
}

func runList(cmd *cobra.Command, a *app) error {
	state, err := listState(cmd)
	if err != nil {
		return err
	}

	repo, err := a.repository()
	if err != nil {
		return err
	}

	results := query.Filter(repo, state)
	out := cmd.OutOrStdout()

	if a.jsonOutput() {
		return writeJSON(out, listOutput{
			State:    state,
			Query:    state.Encode(),
			Count:    len(results),
			Aircraft: summarize(results),
		})
	}

	if len(results) == 0 {
		writeNoResults(out, state)
		return nil
	}

	fmt.Fprintf(out, "Showing %d aircraft", len(results))
	if state.Search != "" {
		fmt.Fprintf(out, " for %q", state.Search)
	}
	fmt.Fprintln(out)
	if err := writeAircraftTable(out, results); err != nil {
		return err
	}
	if q := state.Encode(); q != "" {
		fmt.Fprintf(out, "\nstate: %s\n", q)
	}
	return nil
}

// listState starts from --state and lets explicit --type/--search flags override it
func listState(cmd *cobra.Command) (query.FilterState, error) {
	raw, _ := cmd.Flags().GetString("state")
	state, err := query.ParseState(raw)
	if err != nil {
		return query.FilterState{}, err
	}

	if cmd.Flags().Changed("type") {
		state.Type, _ = cmd.Flags().GetString("type")
	}
	if cmd.Flags().Changed("search") {
		state.Search, _ = cmd.Flags().GetString("search")
	}

	return state.Normalize(), nil
}
