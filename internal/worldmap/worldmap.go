// Package worldmap prepares the marker data for the world map view.
// Tile rendering and marker icons are left to whatever draws the map.
package worldmap

import (
	"github.com/skypies/geo"

	"planes_info/internal/catalog"
	"planes_info/internal/models"
	"planes_info/internal/query"
)

// Default viewport of the map
const DefaultZoom = 2

var DefaultCenter = Point{Lat: 20, Lon: 0}

const otherColor = "#6b7280"

var typeColors = map[models.AircraftType]string{
	models.TypeCommercial: "#3b82f6",
	models.TypeMilitary:   "#ef4444",
	models.TypePrivate:    "#10b981",
	models.TypeHelicopter: "#8b5cf6",
}

// TypeColor returns the marker colour of a type, grey for anything unknown
func TypeColor(t models.AircraftType) string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return otherColor
}

// Point is a position in decimal degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is one plotted aircraft with its popup fields
type Marker struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Type     models.AircraftType `json:"type"`
	Color    string              `json:"color"`
	Lat      float64             `json:"lat"`
	Lon      float64             `json:"lon"`
	Year     int                 `json:"year"`
	MaxSpeed float64             `json:"maxSpeed"`
	Range    float64             `json:"range"`
}

func (m Marker) Latlong() geo.Latlong {
	return geo.Latlong{Lat: m.Lat, Long: m.Lon}
}

// LegendEntry explains one marker colour
type LegendEntry struct {
	Type  models.AircraftType `json:"type"`
	Label string              `json:"label"`
	Color string              `json:"color"`
}

// Bounds is the box enclosing every plotted marker
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Site groups the markers plotted at the same position
type Site struct {
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	Markers []Marker `json:"markers"`
}

// View is everything the map page needs
type View struct {
	Type    string            `json:"type"`
	Center  Point             `json:"center"`
	Zoom    int               `json:"zoom"`
	Markers []Marker          `json:"markers"`
	Legend  []LegendEntry     `json:"legend"`
	Counts  []query.TypeCount `json:"counts"`
	Bounds  *Bounds           `json:"bounds,omitempty"`
}

// Build returns the map view for the selected type ("all" or unknown shows every type)
func Build(repo catalog.Reader, selectedType string) View {
	state := query.FilterState{Type: selectedType}.Normalize()
	records := query.Filter(repo, state)

	v := View{
		Type:    state.Type,
		Center:  DefaultCenter,
		Zoom:    DefaultZoom,
		Markers: make([]Marker, 0, len(records)),
		Legend:  Legend(),
		Counts:  query.TypeCounts(repo),
	}
	for i := range records {
		v.Markers = append(v.Markers, NewMarker(&records[i]))
	}
	v.Bounds = BoundsOf(v.Markers)

	return v
}

// NewMarker builds the marker of a record
func NewMarker(ac *models.Aircraft) Marker {
	ll := ac.Coordinates.Latlong()
	return Marker{
		ID:       ac.ID,
		Name:     ac.Name,
		Type:     ac.Type,
		Color:    TypeColor(ac.Type),
		Lat:      ll.Lat,
		Lon:      ll.Long,
		Year:     ac.Year,
		MaxSpeed: ac.Specs.MaxSpeed,
		Range:    ac.Specs.Range,
	}
}

// Legend lists the marker colours in type order
func Legend() []LegendEntry {
	legend := make([]LegendEntry, 0, len(models.AircraftTypes))
	for _, t := range models.AircraftTypes {
		legend = append(legend, LegendEntry{
			Type:  t,
			Label: query.TypeLabel(t),
			Color: TypeColor(t),
		})
	}
	return legend
}

// BoundsOf returns the box enclosing the markers, or nil when there are none
func BoundsOf(markers []Marker) *Bounds {
	if len(markers) == 0 {
		return nil
	}

	first := markers[0].Latlong()
	box := first.BoxTo(first)
	for _, m := range markers[1:] {
		box.Enclose(m.Latlong())
	}

	return &Bounds{
		South: box.SW.Lat,
		West:  box.SW.Long,
		North: box.NE.Lat,
		East:  box.NE.Long,
	}
}

// Sites groups markers sharing a position, keeping first-seen order
func Sites(markers []Marker) []Site {
	var sites []Site
	index := make(map[[2]float64]int)
	for _, m := range markers {
		ll := [2]float64{m.Lat, m.Lon}
		if i, ok := index[ll]; ok {
			sites[i].Markers = append(sites[i].Markers, m)
			continue
		}
		index[ll] = len(sites)
		sites = append(sites, Site{Lat: m.Lat, Lon: m.Lon, Markers: []Marker{m}})
	}
	return sites
}
