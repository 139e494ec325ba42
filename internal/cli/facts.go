package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"planes_info/internal/facts"
)

type factsOutput struct {
	Category string                `json:"category"`
	Stats    []facts.Stat          `json:"stats"`
	Groups   []facts.Group         `json:"groups"`
	Aircraft []facts.AircraftFacts `json:"aircraft,omitempty"`
}

func newFactsCmd(a *app) *cobra.Command {
	var (
		category     string
		withAircraft bool
	)

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Show aviation fun facts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacts(cmd, a, category, withAircraft)
		},
	}

	cmd.Flags().StringVar(&category, "category", facts.CategoryAll, "Fact category: all, speed, size, history, technology, passengers or military")
	cmd.Flags().BoolVar(&withAircraft, "aircraft", false, "Also list the fun facts of each catalog aircraft")

	return cmd
}

func runFacts(cmd *cobra.Command, a *app, category string, withAircraft bool) error {
	o := factsOutput{
		Category: category,
		Stats:    facts.Stats(),
		Groups:   facts.Groups(category),
	}
	if withAircraft {
		repo, err := a.repository()
		if err != nil {
			return err
		}
		o.Aircraft = facts.FromCatalog(repo)
	}

	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, o)
	}
	writeFacts(out, o)
	return nil
}

func writeFacts(w io.Writer, o factsOutput) {
	values := make([]string, 0, len(facts.Categories()))
	for _, c := range facts.Categories() {
		values = append(values, c.Value)
	}
	fmt.Fprintf(w, "Categories: %s\n\n", strings.Join(values, ", "))

	for _, s := range o.Stats {
		fmt.Fprintf(w, "%-12s %s\n", s.Number, s.Label)
	}
	for _, g := range o.Groups {
		writeList(w, g.Title, g.Facts)
	}
	for _, af := range o.Aircraft {
		writeList(w, af.Name, af.Facts)
	}
}
