// Package dataset provides the fixed aircraft collection the catalog is built from.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"planes_info/internal/models"
)

//go:embed data/aircraft.json
var embedded []byte

// ErrMalformedRecord is returned when a record is missing a mandatory field
// or violates a record invariant
var ErrMalformedRecord = errors.New("malformed aircraft record")

// rawSpecs mirrors models.Specs with pointers so that missing mandatory
// fields can be told apart from zero values
type rawSpecs struct {
	MaxSpeed   *float64 `json:"maxSpeed"`
	Range      *float64 `json:"range"`
	Ceiling    *float64 `json:"ceiling"`
	Length     *float64 `json:"length"`
	Wingspan   *float64 `json:"wingspan"`
	Height     *float64 `json:"height"`
	Weight     *float64 `json:"weight"`
	Engines    *int     `json:"engines"`
	EngineType string   `json:"engineType"`
	Passengers *int     `json:"passengers"`
	Crew       *int     `json:"crew"`
}

type rawAircraft struct {
	models.Aircraft
	Specs *rawSpecs `json:"specs"`
}

// Default decodes the embedded dataset
func Default() ([]models.Aircraft, error) {
	return Decode(bytes.NewReader(embedded))
}

// LoadFile decodes a dataset file with the same layout as the embedded one
func LoadFile(path string) ([]models.Aircraft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}
	return records, nil
}

// Decode reads a JSON array of aircraft records, preserving their order.
// Every record is checked for mandatory spec fields and record invariants.
func Decode(r io.Reader) ([]models.Aircraft, error) {
	var raw []rawAircraft
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	records := make([]models.Aircraft, 0, len(raw))
	for i, ra := range raw {
		ac, err := ra.toAircraft()
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w", i, ra.ID, err)
		}
		records = append(records, ac)
	}

	return records, nil
}

func (ra rawAircraft) toAircraft() (models.Aircraft, error) {
	ac := ra.Aircraft
	if ra.Specs == nil {
		return ac, fmt.Errorf("%w: specs missing", ErrMalformedRecord)
	}

	s := ra.Specs
	mandatory := []struct {
		name string
		v    *float64
		dst  *float64
	}{
		{"maxSpeed", s.MaxSpeed, &ac.Specs.MaxSpeed},
		{"range", s.Range, &ac.Specs.Range},
		{"ceiling", s.Ceiling, &ac.Specs.Ceiling},
		{"length", s.Length, &ac.Specs.Length},
		{"wingspan", s.Wingspan, &ac.Specs.Wingspan},
		{"height", s.Height, &ac.Specs.Height},
		{"weight", s.Weight, &ac.Specs.Weight},
	}
	for _, m := range mandatory {
		if m.v == nil {
			return ac, fmt.Errorf("%w: specs.%s missing", ErrMalformedRecord, m.name)
		}
		*m.dst = *m.v
	}
	if s.Engines == nil {
		return ac, fmt.Errorf("%w: specs.engines missing", ErrMalformedRecord)
	}

	ac.Specs.Engines = *s.Engines
	ac.Specs.EngineType = s.EngineType
	ac.Specs.Passengers = s.Passengers
	ac.Specs.Crew = s.Crew

	if err := ac.Validate(); err != nil {
		return ac, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return ac, nil
}
