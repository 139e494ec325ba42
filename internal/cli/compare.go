package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"planes_info/internal/compare"
	"planes_info/internal/models"
)

// unsetSlot marks an empty comparison slot on the command line
const unsetSlot = "-"

type compareOutput struct {
	Ready  bool             `json:"ready"`
	Fields []fieldOutput    `json:"fields"`
	Score  *scoreOutput     `json:"score,omitempty"`
	Rows   []compare.Row    `json:"rows"`
	Info   []compare.Detail `json:"details"`
	Left   *summary         `json:"left,omitempty"`
	Right  *summary         `json:"right,omitempty"`
}

// fieldOutput is a compared field without its accessor
type fieldOutput struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Unit      string `json:"unit,omitempty"`
	Direction string `json:"direction"`
}

type scoreOutput struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [left-id] [right-id]",
		Short: "Compare the specs of two aircraft",
		Long: "Compare two aircraft field by field. Speed, range and ceiling favour the higher value; " +
			"length, wingspan, height, weight and engine count favour the lower. Pass - for an empty slot.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, a, args)
		},
	}
}

func runCompare(cmd *cobra.Command, a *app, args []string) error {
	var sel compare.Selection
	if len(args) > 0 && args[0] != unsetSlot {
		sel.Left = args[0]
	}
	if len(args) > 1 && args[1] != unsetSlot {
		sel.Right = args[1]
	}

	repo, err := a.repository()
	if err != nil {
		return err
	}

	engine := compare.Default()
	res, err := engine.CompareIDs(repo, sel)
	if err != nil {
		return err
	}

	fields := fieldOutputs(engine.Fields())
	out := cmd.OutOrStdout()
	if a.jsonOutput() {
		return writeJSON(out, newCompareOutput(res, fields))
	}

	if !res.Ready() {
		fmt.Fprintln(out, "Select two aircraft to compare.")
		fmt.Fprintln(out, "Use `planes-info search --picker <text>` to find their ids.")
		fmt.Fprintln(out, "\nCompared fields:")
		for _, f := range fields {
			fmt.Fprintf(out, "  %s (%s is better)\n", f.Label, f.Direction)
		}
		return nil
	}
	return writeComparison(out, res)
}

func fieldOutputs(fields []compare.Field) []fieldOutput {
	out := make([]fieldOutput, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldOutput{
			Key:       f.Key,
			Label:     f.Label,
			Unit:      f.Unit,
			Direction: f.Direction.String(),
		})
	}
	return out
}

func newCompareOutput(res compare.Result, fields []fieldOutput) compareOutput {
	o := compareOutput{
		Ready:  res.Ready(),
		Fields: fields,
		Rows:   res.Rows,
		Info:   res.Details,
	}
	if !o.Ready {
		o.Rows = []compare.Row{}
		o.Info = []compare.Detail{}
		return o
	}

	left, right := res.Score()
	o.Score = &scoreOutput{Left: left, Right: right}
	sums := summarize([]models.Aircraft{*res.Left, *res.Right})
	o.Left, o.Right = &sums[0], &sums[1]
	return o
}

func writeComparison(w io.Writer, res compare.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\t%s\t\n", res.Left.Name, res.Right.Name)
	for _, row := range res.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Label,
			mark(withUnit(row.Left, row.Unit), row.Winner == compare.WinnerLeft),
			mark(withUnit(row.Right, row.Unit), row.Winner == compare.WinnerRight),
			winnerNote(row.Winner))
	}
	fmt.Fprintln(tw, "\t\t\t")
	for _, d := range res.Details {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", d.Label, d.Left, d.Right)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	left, right := res.Score()
	fmt.Fprintf(w, "\nScore: %s %d, %s %d\n", res.Left.Name, left, res.Right.Name, right)
	return nil
}

func mark(s string, won bool) string {
	if won {
		return s + " *"
	}
	return s
}

func winnerNote(w compare.Winner) string {
	switch w {
	case compare.WinnerTie:
		return "tie"
	case compare.WinnerNone:
		return "n/a"
	}
	return ""
}
