package states

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/globe-explorer/internal/geo"
)

// Dataset is an ordered, immutable list of records with a case-insensitive
// abbreviation index.
type Dataset struct {
	records []Record
	index   map[string]int
}

// NewDataset validates records and builds the index. Abbreviations must be
// unique ignoring case and coordinates must be in geographic range.
func NewDataset(records []Record) (*Dataset, error) {
	d := &Dataset{
		records: make([]Record, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(d.records, records)

	for i, r := range d.records {
		key := r.Key()
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("record %d (%q): %w", i, r.Name, ErrEmptyAbbreviation)
		}
		if prev, ok := d.index[key]; ok {
			return nil, fmt.Errorf("record %d and %d share %q: %w", prev, i, r.Abbreviation, ErrDuplicate)
		}
		if err := geo.CheckCoordinates(r.Latitude, r.Longitude); err != nil {
			return nil, fmt.Errorf("record %q (%v, %v): %w", r.Abbreviation, r.Latitude, r.Longitude, err)
		}
		d.index[key] = i
	}
	return d, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns a copy of the ordered record list.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// First returns the first record, which is the default selection.
func (d *Dataset) First() (Record, bool) {
	if len(d.records) == 0 {
		return Record{}, false
	}
	return d.records[0], true
}

// Lookup finds a record by abbreviation, ignoring case.
func (d *Dataset) Lookup(abbr string) (Record, error) {
	i, ok := d.index[NormalizeKey(abbr)]
	if !ok {
		return Record{}, fmt.Errorf("%q: %w", abbr, ErrNotFound)
	}
	return d.records[i], nil
}

// Contains reports whether abbr names a record in the dataset.
func (d *Dataset) Contains(abbr string) bool {
	_, ok := d.index[NormalizeKey(abbr)]
	return ok
}
