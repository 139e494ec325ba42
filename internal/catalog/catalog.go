// Package catalog holds the read-only aircraft repository the views query.
package catalog

import (
	"errors"
	"fmt"

	"planes_info/internal/models"
)

var (
	// ErrNotFound is returned when no record has the requested id
	ErrNotFound = errors.New("aircraft not found")
	// ErrDuplicateID is returned by New when two records share an id
	ErrDuplicateID = errors.New("duplicate aircraft id")
	// ErrInvalidRecord is returned by New when a record fails validation
	ErrInvalidRecord = errors.New("invalid aircraft record")
)

// Reader is the read-only view of the catalog used by the query and comparison layers
type Reader interface {
	All() []models.Aircraft
	GetByID(id string) (models.Aircraft, error)
	GetByType(t models.AircraftType) []models.Aircraft
}

// Repository is an immutable in-memory aircraft collection
type Repository struct {
	records []models.Aircraft
	byID    map[string]int
}

// New builds a repository from records, keeping their order.
// The input slice is copied; later changes to it are not observed.
func New(records []models.Aircraft) (*Repository, error) {
	r := &Repository{
		records: make([]models.Aircraft, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	copy(r.records, records)

	for i := range r.records {
		ac := &r.records[i]
		if err := ac.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
		}
		if _, ok := r.byID[ac.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, ac.ID)
		}
		r.byID[ac.ID] = i
	}

	return r, nil
}

// Len returns the number of records
func (r *Repository) Len() int {
	return len(r.records)
}

// All returns the full collection in its original order
func (r *Repository) All() []models.Aircraft {
	out := make([]models.Aircraft, len(r.records))
	copy(out, r.records)
	return out
}

// GetByID returns the record with the given id, or ErrNotFound
func (r *Repository) GetByID(id string) (models.Aircraft, error) {
	idx, ok := r.byID[id]
	if !ok {
		return models.Aircraft{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r.records[idx], nil
}

// GetByType returns all records of type t in collection order.
// The result is empty, not nil, when nothing matches.
func (r *Repository) GetByType(t models.AircraftType) []models.Aircraft {
	return r.filter(func(ac *models.Aircraft) bool {
		return ac.Type == t
	})
}

// Featured returns the first n records, as shown on the home page
func (r *Repository) Featured(n int) []models.Aircraft {
	if n < 0 {
		n = 0
	}
	if n > len(r.records) {
		n = len(r.records)
	}
	out := make([]models.Aircraft, n)
	copy(out, r.records[:n])
	return out
}

func (r *Repository) filter(keep func(*models.Aircraft) bool) []models.Aircraft {
	out := make([]models.Aircraft, 0)
	for i := range r.records {
		if keep(&r.records[i]) {
			out = append(out, r.records[i])
		}
	}
	return out
}
