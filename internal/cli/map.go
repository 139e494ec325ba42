package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"planes_info/internal/models"
	"planes_info/internal/query"
	"planes_info/internal/worldmap"
)

func newMapCmd(a *app) *cobra.Command {
	var aircraftType string

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show where each aircraft was built",
		Long:  "Print the world map markers, grouped by site, with the type legend and the default viewport.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, a, aircraftType)
		},
	}

	cmd.Flags().StringVarP(&aircraftType, "type", "t", query.TypeAll, "Aircraft type: all, commercial, military, private or helicopter")

	return cmd
}

func runMap(cmd *cobra.Command, a *app, aircraftType string) error {
	repo, err := a.repository()
	if err != nil {
		return err
	}

	view := worldmap.Build(repo, aircraftType)
	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, view)
	}
	return writeMap(out, view)
}

func writeMap(w io.Writer, v worldmap.View) error {
	fmt.Fprintf(w, "Center %.1f, %.1f  zoom %d  showing %s (%d)\n",
		v.Center.Lat, v.Center.Lon, v.Zoom, typeFilterLabel(v), len(v.Markers))

	if v.Bounds != nil {
		fmt.Fprintf(w, "Bounds S %.4f  W %.4f  N %.4f  E %.4f\n",
			v.Bounds.South, v.Bounds.West, v.Bounds.North, v.Bounds.East)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, site := range worldmap.Sites(v.Markers) {
		fmt.Fprintf(tw, "\n%.4f, %.4f\t\t\t\t\n", site.Lat, site.Lon)
		for _, m := range site.Markers {
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\t%s\n",
				m.Name, query.TypeLabel(m.Type), m.Year,
				withUnit(m.MaxSpeed, "km/h"), withUnit(m.Range, "km"))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nLegend")
	for _, l := range v.Legend {
		fmt.Fprintf(w, "  %s  %s\n", l.Color, l.Label)
	}
	return nil
}

func typeFilterLabel(v worldmap.View) string {
	for _, c := range v.Counts {
		if c.Value == v.Type {
			return c.Label
		}
	}
	return query.TypeLabel(models.AircraftType(v.Type))
}
