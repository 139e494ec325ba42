package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"planes_info/internal/models"
	"planes_info/internal/query"
)

var printer = message.NewPrinter(language.English)

// summary is the card shown for each aircraft in list views
type summary struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Manufacturer string              `json:"manufacturer"`
	Type         models.AircraftType `json:"type"`
	Category     string              `json:"category"`
	Year         int                 `json:"year"`
	Country      string              `json:"country"`
	MaxSpeed     float64             `json:"maxSpeed"`
	Range        float64             `json:"range"`
	Ceiling      float64             `json:"ceiling"`
	Engines      int                 `json:"engines"`
	Passengers   *int                `json:"passengers,omitempty"`
}

func summarize(records []models.Aircraft) []summary {
	out := make([]summary, 0, len(records))
	for _, ac := range records {
		out = append(out, summary{
			ID:           ac.ID,
			Name:         ac.Name,
			Manufacturer: ac.Manufacturer,
			Type:         ac.Type,
			Category:     ac.Category,
			Year:         ac.Year,
			Country:      ac.Country,
			MaxSpeed:     ac.Specs.MaxSpeed,
			Range:        ac.Specs.Range,
			Ceiling:      ac.Specs.Ceiling,
			Engines:      ac.Specs.Engines,
			Passengers:   ac.Specs.Passengers,
		})
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// formatNumber groups thousands for whole numbers and keeps decimals as written
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withUnit(v float64, unit string) string {
	if unit == "" {
		return formatNumber(v)
	}
	return formatNumber(v) + " " + unit
}

func writeAircraftTable(w io.Writer, records []models.Aircraft) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMANUFACTURER\tTYPE\tYEAR\tCOUNTRY\tMAX SPEED\tRANGE")
	for _, ac := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			ac.ID, ac.Name, ac.Manufacturer, query.TypeLabel(ac.Type), ac.Year, ac.Country,
			withUnit(ac.Specs.MaxSpeed, "km/h"), withUnit(ac.Specs.Range, "km"))
	}
	return tw.Flush()
}

func writeNoResults(w io.Writer, s query.FilterState) {
	fmt.Fprintln(w, "No aircraft found.")
	if strings.TrimSpace(s.Search) != "" {
		fmt.Fprintf(w, "Nothing matches %q", s.Search)
		if s.Type != query.TypeAll {
			fmt.Fprintf(w, " among %s", strings.ToLower(query.TypeLabel(models.AircraftType(s.Type))))
		}
		fmt.Fprintln(w, ".")
	}
	fmt.Fprintln(w, "Try adjusting your search terms or filters, or run `planes-info list` to reset them.")
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
