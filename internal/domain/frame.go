// Package domain defines the core data model: the wide date-indexed
// metric frame, raw source tables, and the shared column-name schema
// consumed by the derive engine, chart catalog and reporting.
package domain

import (
	"fmt"
	"math"
	"time"
)

// Frame is a wide, date-indexed metric table. The date index is a strictly
// increasing sequence of unique UTC calendar days; every column is a
// []float64 aligned to that index with math.NaN() as the missing value.
// Columns grow monotonically over a pipeline run and are never removed.
type Frame struct {
	dates []time.Time
	cols  map[string][]float64
	order []string // column insertion order, for deterministic export
	index map[time.Time]int
}

// NewFrame creates a Frame over the given date index.
// Dates must be strictly increasing UTC calendar days.
func NewFrame(dates []time.Time) (*Frame, error) {
	idx := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		d = Day(d)
		if i > 0 && !dates[i-1].Before(d) {
			return nil, fmt.Errorf("date index not strictly increasing at position %d (%s)", i, d.Format("2006-01-02"))
		}
		dates[i] = d
		idx[d] = i
	}
	return &Frame{
		dates: dates,
		cols:  make(map[string][]float64),
		index: idx,
	}, nil
}

// Day truncates t to a UTC calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange builds the inclusive daily index [start, end].
func DateRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}
	n := int(end.Sub(start).Hours()/24) + 1
	dates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.dates) }

// Dates returns a copy of the date index.
func (f *Frame) Dates() []time.Time {
	out := make([]time.Time, len(f.dates))
	copy(out, f.dates)
	return out
}

// Date returns the date at row i.
func (f *Frame) Date(i int) time.Time { return f.dates[i] }

// RowIndex returns the row position of a calendar date.
func (f *Frame) RowIndex(d time.Time) (int, bool) {
	i, ok := f.index[Day(d)]
	return i, ok
}

// Has reports whether the column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Columns returns column names in insertion order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// NumColumns returns the number of columns.
func (f *Frame) NumColumns() int { return len(f.order) }

// Column returns the values of a column. The returned slice is the frame's
// backing storage; callers must not mutate it. Returns ErrMissingColumn
// if the column does not exist.
func (f *Frame) Column(name string) ([]float64, error) {
	vals, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return vals, nil
}

// ColumnCopy returns a copy of the column values.
func (f *Frame) ColumnCopy(name string) ([]float64, error) {
	vals, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, nil
}

// Set adds or overwrites a column. Values must match the index length.
// Overwriting with identical values is how re-running the derive engine
// stays idempotent.
func (f *Frame) Set(name string, values []float64) error {
	if len(values) != len(f.dates) {
		return fmt.Errorf("column %s: %d values for %d dates", name, len(values), len(f.dates))
	}
	if _, exists := f.cols[name]; !exists {
		f.order = append(f.order, name)
	}
	f.cols[name] = values
	return nil
}

// SetConstant adds a column holding one value on every row.
func (f *Frame) SetConstant(name string, v float64) error {
	values := make([]float64, len(f.dates))
	for i := range values {
		values[i] = v
	}
	return f.Set(name, values)
}

// At returns the value of a column at row i, NaN if the column is absent.
func (f *Frame) At(name string, i int) float64 {
	vals, ok := f.cols[name]
	if !ok || i < 0 || i >= len(vals) {
		return math.NaN()
	}
	return vals[i]
}

// ValueOn returns the value of a column on a calendar date.
func (f *Frame) ValueOn(name string, d time.Time) (float64, bool) {
	i, ok := f.RowIndex(d)
	if !ok {
		return math.NaN(), false
	}
	vals, ok := f.cols[name]
	if !ok {
		return math.NaN(), false
	}
	v := vals[i]
	return v, !math.IsNaN(v)
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		dates: make([]time.Time, len(f.dates)),
		cols:  make(map[string][]float64, len(f.cols)),
		order: make([]string, len(f.order)),
		index: make(map[time.Time]int, len(f.index)),
	}
	copy(c.dates, f.dates)
	copy(c.order, f.order)
	for d, i := range f.index {
		c.index[d] = i
	}
	for name, vals := range f.cols {
		v := make([]float64, len(vals))
		copy(v, vals)
		c.cols[name] = v
	}
	return c
}

// NaNs returns a fresh slice of n NaN values, the starting point for
// every derived column.
func NaNs(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
