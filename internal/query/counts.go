package query

import (
	"planes_info/internal/catalog"
	"planes_info/internal/models"
)

// TypeCount is one entry of the type filter bar
type TypeCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

var typeLabels = map[models.AircraftType]string{
	models.TypeCommercial: "Commercial",
	models.TypeMilitary:   "Military",
	models.TypePrivate:    "Private Jets",
	models.TypeHelicopter: "Helicopters",
}

// TypeLabel returns the display label of a type
func TypeLabel(t models.AircraftType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// TypeCounts returns "all" followed by every aircraft type with its record count
func TypeCounts(repo catalog.Reader) []TypeCount {
	counts := []TypeCount{{
		Value: TypeAll,
		Label: "All Aircraft",
		Count: len(repo.All()),
	}}
	for _, t := range models.AircraftTypes {
		counts = append(counts, TypeCount{
			Value: string(t),
			Label: TypeLabel(t),
			Count: len(repo.GetByType(t)),
		})
	}
	return counts
}
