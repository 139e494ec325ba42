// Package query combines the type selector and free-text search used by the list and map views.
package query

import (
	"strings"

	"planes_info/internal/catalog"
	"planes_info/internal/models"
)

// TypeAll selects every aircraft type
const TypeAll = "all"

// FilterState is the user-selected filter criteria
type FilterState struct {
	Type   string `json:"type"`
	Search string `json:"search"`
}

// ParseType maps s to a known aircraft type.
// "all", the empty string and unrecognised values report false, meaning no type restriction.
func ParseType(s string) (models.AircraftType, bool) {
	t := models.AircraftType(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// Normalize returns the state with unknown types replaced by "all"
func (s FilterState) Normalize() FilterState {
	if t, ok := ParseType(s.Type); ok {
		s.Type = string(t)
	} else {
		s.Type = TypeAll
	}
	return s
}

// Filter applies the state to the collection, keeping the collection order.
// An empty result is valid and is returned as an empty slice.
func Filter(repo catalog.Reader, s FilterState) []models.Aircraft {
	var records []models.Aircraft
	if t, ok := ParseType(s.Type); ok {
		records = repo.GetByType(t)
	} else {
		records = repo.All()
	}

	if strings.TrimSpace(s.Search) == "" {
		return records
	}

	out := make([]models.Aircraft, 0, len(records))
	for i := range records {
		if catalog.Matches(&records[i], s.Search, catalog.WideFields) {
			out = append(out, records[i])
		}
	}
	return out
}
