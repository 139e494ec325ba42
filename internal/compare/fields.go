package compare

import (
	"errors"
	"fmt"

	"planes_info/internal/models"
)

// Direction tells which of two values of a field is better
type Direction int

const (
	HigherIsBetter Direction = iota + 1
	LowerIsBetter
)

func (d Direction) String() string {
	switch d {
	case HigherIsBetter:
		return "higher"
	case LowerIsBetter:
		return "lower"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Field is a comparable numeric spec
type Field struct {
	Key       string
	Label     string
	Unit      string
	Direction Direction
	Value     func(models.Specs) float64
}

// DefaultFields is the spec table shown on the comparison page
var DefaultFields = []Field{
	{Key: "maxSpeed", Label: "Max Speed", Unit: "km/h", Direction: HigherIsBetter, Value: func(s models.Specs) float64 { return s.MaxSpeed }},
	{Key: "range", Label: "Range", Unit: "km", Direction: HigherIsBetter, Value: func(s models.Specs) float64 { return s.Range }},
	{Key: "ceiling", Label: "Ceiling", Unit: "m", Direction: HigherIsBetter, Value: func(s models.Specs) float64 { return s.Ceiling }},
	{Key: "length", Label: "Length", Unit: "m", Direction: LowerIsBetter, Value: func(s models.Specs) float64 { return s.Length }},
	{Key: "wingspan", Label: "Wingspan", Unit: "m", Direction: LowerIsBetter, Value: func(s models.Specs) float64 { return s.Wingspan }},
	{Key: "height", Label: "Height", Unit: "m", Direction: LowerIsBetter, Value: func(s models.Specs) float64 { return s.Height }},
	{Key: "weight", Label: "Weight", Unit: "kg", Direction: LowerIsBetter, Value: func(s models.Specs) float64 { return s.Weight }},
	{Key: "engines", Label: "Engines", Unit: "", Direction: LowerIsBetter, Value: func(s models.Specs) float64 { return float64(s.Engines) }},
}

// ErrInvalidField is returned by New for a field table that cannot be used
var ErrInvalidField = errors.New("invalid comparison field")

func validateFields(fields []Field) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidField)
	}

	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		if f.Key == "" {
			return fmt.Errorf("%w: field %d has no key", ErrInvalidField, i)
		}
		if seen[f.Key] {
			return fmt.Errorf("%w: duplicate key %s", ErrInvalidField, f.Key)
		}
		seen[f.Key] = true

		if f.Value == nil {
			return fmt.Errorf("%w: %s has no accessor", ErrInvalidField, f.Key)
		}
		if f.Direction != HigherIsBetter && f.Direction != LowerIsBetter {
			return fmt.Errorf("%w: %s has direction %s", ErrInvalidField, f.Key, f.Direction)
		}
	}

	return nil
}
