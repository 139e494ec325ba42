// Package compare computes the side-by-side spec comparison of two aircraft.
package compare

import (
	"fmt"
	"math"
	"strconv"

	"planes_info/internal/catalog"
	"planes_info/internal/models"
)

// Winner identifies the better side of a compared field
type Winner string

const (
	WinnerLeft  Winner = "left"
	WinnerRight Winner = "right"
	WinnerTie   Winner = "tie"
	// WinnerNone marks a row whose values could not be compared
	WinnerNone Winner = "none"
)

// NotAvailable is shown for optional values a record does not have
const NotAvailable = "N/A"

// Row is one compared numeric field
type Row struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Unit   string  `json:"unit,omitempty"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Winner Winner  `json:"winner"`
}

// Detail is a field shown side by side without a winner
type Detail struct {
	Label string `json:"label"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Result is the comparison of two aircraft.
// The zero value means at least one slot is unset.
type Result struct {
	Left    *models.Aircraft `json:"left,omitempty"`
	Right   *models.Aircraft `json:"right,omitempty"`
	Rows    []Row            `json:"rows,omitempty"`
	Details []Detail         `json:"details,omitempty"`
}

// Ready reports whether both slots were filled and rows were computed
func (r Result) Ready() bool {
	return r.Left != nil && r.Right != nil
}

// Score counts the rows won by each side
func (r Result) Score() (left, right int) {
	for _, row := range r.Rows {
		switch row.Winner {
		case WinnerLeft:
			left++
		case WinnerRight:
			right++
		}
	}
	return left, right
}

// Selection holds the ids picked for the two comparison slots; empty means unset
type Selection struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Engine compares aircraft over a fixed field table
type Engine struct {
	fields []Field
}

// New validates the field table and returns an engine over it
func New(fields []Field) (*Engine, error) {
	if err := validateFields(fields); err != nil {
		return nil, err
	}
	f := make([]Field, len(fields))
	copy(f, fields)
	return &Engine{fields: f}, nil
}

// Default returns an engine over DefaultFields
func Default() *Engine {
	e, err := New(DefaultFields)
	if err != nil {
		panic(err)
	}
	return e
}

// Fields returns the engine's field table
func (e *Engine) Fields() []Field {
	out := make([]Field, len(e.fields))
	copy(out, e.fields)
	return out
}

// Decide applies the winner rule to a pair of values
func Decide(left, right float64, d Direction) Winner {
	if !usable(left) || !usable(right) {
		return WinnerNone
	}
	if left == right {
		return WinnerTie
	}
	switch d {
	case HigherIsBetter:
		if left > right {
			return WinnerLeft
		}
		return WinnerRight
	case LowerIsBetter:
		if left < right {
			return WinnerLeft
		}
		return WinnerRight
	}
	return WinnerNone
}

// usable is false for values a well-formed record never holds
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Compare builds the comparison of left and right.
// If either is nil the empty Result is returned.
func (e *Engine) Compare(left, right *models.Aircraft) Result {
	if left == nil || right == nil {
		return Result{}
	}

	res := Result{
		Left:  left,
		Right: right,
		Rows:  make([]Row, 0, len(e.fields)),
	}
	for _, f := range e.fields {
		lv, rv := f.Value(left.Specs), f.Value(right.Specs)
		res.Rows = append(res.Rows, Row{
			Key:    f.Key,
			Label:  f.Label,
			Unit:   f.Unit,
			Left:   lv,
			Right:  rv,
			Winner: Decide(lv, rv, f.Direction),
		})
	}
	res.Details = details(left, right)

	return res
}

// CompareIDs resolves the selection through repo and compares the two records.
// Unset slots yield the empty Result; unknown ids return catalog.ErrNotFound.
func (e *Engine) CompareIDs(repo catalog.Reader, sel Selection) (Result, error) {
	var left, right *models.Aircraft
	if sel.Left != "" {
		ac, err := repo.GetByID(sel.Left)
		if err != nil {
			return Result{}, fmt.Errorf("left slot: %w", err)
		}
		left = &ac
	}
	if sel.Right != "" {
		ac, err := repo.GetByID(sel.Right)
		if err != nil {
			return Result{}, fmt.Errorf("right slot: %w", err)
		}
		right = &ac
	}
	return e.Compare(left, right), nil
}

func details(left, right *models.Aircraft) []Detail {
	return []Detail{
		{Label: "Engine Type", Left: left.Specs.EngineType, Right: right.Specs.EngineType},
		{Label: "Passengers", Left: optional(left.Specs.Passengers), Right: optional(right.Specs.Passengers)},
		{Label: "Crew", Left: optional(left.Specs.Crew), Right: optional(right.Specs.Crew)},
		{Label: "Year", Left: strconv.Itoa(left.Year), Right: strconv.Itoa(right.Year)},
		{Label: "Country", Left: left.Country, Right: right.Country},
		{Label: "Manufacturer", Left: left.Manufacturer, Right: right.Manufacturer},
	}
}

func optional(v *int) string {
	if v == nil {
		return NotAvailable
	}
	return strconv.Itoa(*v)
}
