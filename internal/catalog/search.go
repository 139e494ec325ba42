package catalog

import (
	"strings"

	"planes_info/internal/models"
)

// SearchField selects a text field of a record for substring matching
type SearchField func(*models.Aircraft) string

func byName(a *models.Aircraft) string         { return a.Name }
func byManufacturer(a *models.Aircraft) string { return a.Manufacturer }
func byCategory(a *models.Aircraft) string     { return a.Category }
func byCountry(a *models.Aircraft) string      { return a.Country }

// Field sets used by the different search entry points
var (
	BasicFields  = []SearchField{byName, byManufacturer, byCategory}
	WideFields   = []SearchField{byName, byManufacturer, byCategory, byCountry}
	PickerFields = []SearchField{byName, byManufacturer}
)

// Matches reports whether any of the fields of ac contains query, ignoring case.
// The query is used as given; blank-query handling is up to the caller.
func Matches(ac *models.Aircraft, query string, fields []SearchField) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f(ac)), q) {
			return true
		}
	}
	return false
}

// Search matches name, manufacturer and category.
// A blank query returns the full collection.
func (r *Repository) Search(query string) []models.Aircraft {
	if strings.TrimSpace(query) == "" {
		return r.All()
	}
	return r.match(query, BasicFields)
}

// SearchWide matches name, manufacturer, category and country, as the list page does.
// A blank query returns the full collection.
func (r *Repository) SearchWide(query string) []models.Aircraft {
	if strings.TrimSpace(query) == "" {
		return r.All()
	}
	return r.match(query, WideFields)
}

// SearchPicker matches name and manufacturer only, as the comparison picker does.
// A blank query returns no results.
func (r *Repository) SearchPicker(query string) []models.Aircraft {
	if strings.TrimSpace(query) == "" {
		return []models.Aircraft{}
	}
	return r.match(query, PickerFields)
}

func (r *Repository) match(query string, fields []SearchField) []models.Aircraft {
	return r.filter(func(ac *models.Aircraft) bool {
		return Matches(ac, query, fields)
	})
}
