package states

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by Lookup when no record matches.
	ErrNotFound = errors.New("state not found")
	// ErrDuplicate is returned when two records share an abbreviation.
	ErrDuplicate = errors.New("duplicate abbreviation")
	// ErrEmptyAbbreviation is returned for records without a key.
	ErrEmptyAbbreviation = errors.New("abbreviation is required")
)

// Record is one US state as displayed on the globe. Records are immutable
// for the lifetime of a session.
type Record struct {
	Abbreviation string  `json:"abbreviation" yaml:"abbreviation"`
	Name         string  `json:"name" yaml:"name"`
	Capital      string  `json:"capital" yaml:"capital"`
	Nickname     string  `json:"nickname" yaml:"nickname"`
	Population   string  `json:"population" yaml:"population"`
	Region       string  `json:"region" yaml:"region"`
	Description  string  `json:"description" yaml:"description"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
}

// Key returns the normalized lookup key for the record.
func (r Record) Key() string { return NormalizeKey(r.Abbreviation) }

// NormalizeKey folds an abbreviation for case-insensitive matching.
// Surrounding whitespace is significant: " ca" does not match "CA".
func NormalizeKey(abbr string) string {
	return strings.ToUpper(abbr)
}
