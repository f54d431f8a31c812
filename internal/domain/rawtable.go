package domain

import "time"

// RawTable is one independently fetched source table before alignment:
// dates may be gapped (weekday-only equity data), duplicated, or empty.
// Columns are parallel to Dates; NaN marks unparseable or absent cells.
type RawTable struct {
	Name    string
	Dates   []time.Time
	Columns map[string][]float64
	// ColumnOrder preserves source column order for deterministic merges.
	ColumnOrder []string
}

// NewRawTable creates an empty raw table.
func NewRawTable(name string) *RawTable {
	return &RawTable{
		Name:    name,
		Columns: make(map[string][]float64),
	}
}

// Empty reports whether the table carries no rows or no columns.
func (t *RawTable) Empty() bool {
	return len(t.Dates) == 0 || len(t.ColumnOrder) == 0
}

// Start returns the earliest date in the table. Dates are expected to be
// in source order but not necessarily sorted; Start scans all rows.
func (t *RawTable) Start() (time.Time, bool) {
	if len(t.Dates) == 0 {
		return time.Time{}, false
	}
	min := t.Dates[0]
	for _, d := range t.Dates[1:] {
		if d.Before(min) {
			min = d
		}
	}
	return Day(min), true
}
