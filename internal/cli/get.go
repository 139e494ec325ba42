package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"planes_info/internal/catalog"
	"planes_info/internal/models"
	"planes_info/internal/query"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show the full record of one aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, a, args[0])
		},
	}
}

func runGet(cmd *cobra.Command, a *app, id string) error {
	repo, err := a.repository()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ac, err := repo.GetByID(id)
	if errors.Is(err, catalog.ErrNotFound) && !a.jsonOutput() {
		fmt.Fprintf(out, "Aircraft not found: %s\n", id)
		fmt.Fprintln(out, "Run `planes-info list` to see the available aircraft.")
		return err
	}
	if err != nil {
		return err
	}

	if a.jsonOutput() {
		return writeJSON(out, ac)
	}
	writeDetail(out, &ac)
	return nil
}

func writeDetail(w io.Writer, ac *models.Aircraft) {
	fmt.Fprintf(w, "%s\n", ac.Name)
	fmt.Fprintf(w, "%s · %s · %s\n\n", ac.Manufacturer, query.TypeLabel(ac.Type), ac.Category)

	fmt.Fprintf(w, "Introduced:   %d\n", ac.Year)
	fmt.Fprintf(w, "Country:      %s\n", ac.Country)
	fmt.Fprintf(w, "Location:     %.4f, %.4f\n", ac.Coordinates.Lat(), ac.Coordinates.Lon())

	s := ac.Specs
	fmt.Fprintf(w, "\nPerformance\n")
	fmt.Fprintf(w, "  Max Speed:  %s\n", withUnit(s.MaxSpeed, "km/h"))
	fmt.Fprintf(w, "  Range:      %s\n", withUnit(s.Range, "km"))
	fmt.Fprintf(w, "  Ceiling:    %s\n", withUnit(s.Ceiling, "m"))
	fmt.Fprintf(w, "Dimensions\n")
	fmt.Fprintf(w, "  Length:     %s\n", withUnit(s.Length, "m"))
	fmt.Fprintf(w, "  Wingspan:   %s\n", withUnit(s.Wingspan, "m"))
	fmt.Fprintf(w, "  Height:     %s\n", withUnit(s.Height, "m"))
	fmt.Fprintf(w, "Technical\n")
	fmt.Fprintf(w, "  Weight:     %s\n", withUnit(s.Weight, "kg"))
	fmt.Fprintf(w, "  Engines:    %d\n", s.Engines)
	fmt.Fprintf(w, "  Engine:     %s\n", s.EngineType)
	if s.Passengers != nil {
		fmt.Fprintf(w, "  Passengers: %s\n", optionalInt(s.Passengers))
	}
	if s.Crew != nil {
		fmt.Fprintf(w, "  Crew:       %s\n", optionalInt(s.Crew))
	}

	if ac.History != "" {
		fmt.Fprintf(w, "\nHistory\n  %s\n", ac.History)
	}
	writeList(w, "Achievements", ac.Achievements)
	writeList(w, "Fun Facts", ac.FunFacts)
	writeList(w, "Variants", ac.Variants)
	writeList(w, "Operators", ac.Operators)
}
