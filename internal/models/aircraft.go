package models

import (
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// AircraftType is the closed set of aircraft types in the catalog
type AircraftType string

const (
	TypeCommercial AircraftType = "commercial"
	TypeMilitary   AircraftType = "military"
	TypePrivate    AircraftType = "private"
	TypeHelicopter AircraftType = "helicopter"
)

// AircraftTypes lists every type in display order
var AircraftTypes = []AircraftType{
	TypeCommercial,
	TypeMilitary,
	TypePrivate,
	TypeHelicopter,
}

// Valid reports whether t is one of the known aircraft types
func (t AircraftType) Valid() bool {
	switch t {
	case TypeCommercial, TypeMilitary, TypePrivate, TypeHelicopter:
		return true
	}
	return false
}

// Coordinates is a [latitude, longitude] pair in decimal degrees
type Coordinates [2]float64

func (c Coordinates) Lat() float64 { return c[0] }
func (c Coordinates) Lon() float64 { return c[1] }

// Latlong converts the pair for use with the geo package
func (c Coordinates) Latlong() geo.Latlong {
	return geo.Latlong{Lat: c[0], Long: c[1]}
}

// Valid reports whether the pair lies within lat [-90,90] and lon [-180,180]
func (c Coordinates) Valid() bool {
	return c[0] >= -90 && c[0] <= 90 && c[1] >= -180 && c[1] <= 180
}

// Specs holds performance and dimension figures for an aircraft
type Specs struct {
	MaxSpeed   float64 `json:"maxSpeed"`             // km/h
	Range      float64 `json:"range"`                // km
	Ceiling    float64 `json:"ceiling"`              // m
	Length     float64 `json:"length"`               // m
	Wingspan   float64 `json:"wingspan"`             // m
	Height     float64 `json:"height"`               // m
	Weight     float64 `json:"weight"`               // kg
	Engines    int     `json:"engines"`              // Number of engines
	EngineType string  `json:"engineType"`           // e.g. Turbofan, Turboshaft
	Passengers *int    `json:"passengers,omitempty"` // nil when not applicable
	Crew       *int    `json:"crew,omitempty"`       // nil when not applicable
}

// Aircraft represents one record of the reference catalog
type Aircraft struct {
	ID           string       `json:"id"` // Unique slug, e.g. f-22-raptor
	Name         string       `json:"name"`
	Manufacturer string       `json:"manufacturer"`
	Type         AircraftType `json:"type"`
	Category     string       `json:"category"`
	Year         int          `json:"year"` // Introduction year
	Country      string       `json:"country"`
	Coordinates  Coordinates  `json:"coordinates"`
	Image        string       `json:"image"`
	Specs        Specs        `json:"specs"`
	History      string       `json:"history"`
	Achievements []string     `json:"achievements"`
	FunFacts     []string     `json:"funFacts"`
	Variants     []string     `json:"variants"`
	Operators    []string     `json:"operators"`
}

// Validate checks the record invariants that do not depend on the rest of the collection
func (a *Aircraft) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if !a.Type.Valid() {
		return fmt.Errorf("aircraft %s: invalid type %q", a.ID, a.Type)
	}
	if !a.Coordinates.Valid() {
		return fmt.Errorf("aircraft %s: coordinates out of range: %v", a.ID, a.Coordinates)
	}

	numeric := map[string]float64{
		"maxSpeed": a.Specs.MaxSpeed,
		"range":    a.Specs.Range,
		"ceiling":  a.Specs.Ceiling,
		"length":   a.Specs.Length,
		"wingspan": a.Specs.Wingspan,
		"height":   a.Specs.Height,
		"weight":   a.Specs.Weight,
		"engines":  float64(a.Specs.Engines),
	}
	if a.Specs.Passengers != nil {
		numeric["passengers"] = float64(*a.Specs.Passengers)
	}
	if a.Specs.Crew != nil {
		numeric["crew"] = float64(*a.Specs.Crew)
	}
	for name, v := range numeric {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("aircraft %s: spec %s must be a non-negative number, got %v", a.ID, name, v)
		}
	}

	return nil
}
