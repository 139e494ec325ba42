package query

import (
	"fmt"
	"net/url"
	"strings"
)

// Keys used when the filter state is stored in a URL query string
const (
	KeySearch = "search"
	KeyType   = "type"
)

// Values encodes the state as key-value pairs.
// Blank searches and the "all" type are left out.
func (s FilterState) Values() url.Values {
	s = s.Normalize()
	v := url.Values{}
	if strings.TrimSpace(s.Search) != "" {
		v.Set(KeySearch, s.Search)
	}
	if s.Type != TypeAll {
		v.Set(KeyType, s.Type)
	}
	return v
}

// Encode returns the state as a URL query string
func (s FilterState) Encode() string {
	return s.Values().Encode()
}

// StateFromValues restores a state from key-value pairs, defaulting to all types and no search
func StateFromValues(v url.Values) FilterState {
	s := FilterState{
		Type:   v.Get(KeyType),
		Search: v.Get(KeySearch),
	}
	if strings.TrimSpace(s.Search) == "" {
		s.Search = ""
	}
	return s.Normalize()
}

// ParseState restores a state from a URL query string, with or without a leading '?'
func ParseState(raw string) (FilterState, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return FilterState{}, fmt.Errorf("failed to parse filter state: %w", err)
	}
	return StateFromValues(v), nil
}
