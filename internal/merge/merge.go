// Package merge aligns heterogeneous raw source tables onto one daily
// calendar index. Weekday-only equity series, sparse snapshot series and
// daily on-chain series all come out forward-filled on a shared index
// running from the earliest source start to yesterday.
package merge

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/domain"
)

// Result carries the merged frame plus merge diagnostics.
type Result struct {
	Frame *domain.Frame
	// DuplicatesDropped counts rows dropped because an earlier row in the
	// same source already carried their date.
	DuplicatesDropped int
	// EmptySources lists sources that contributed no columns.
	EmptySources []string
}

// Merger builds one frame out of N raw tables.
type Merger struct {
	now   func() time.Time // injectable clock; index ends at now()-1 day
	start time.Time        // optional index floor
}

// New creates a Merger using the real clock.
func New() *Merger {
	return &Merger{now: time.Now}
}

// WithClock sets a custom clock for deterministic output.
func (m *Merger) WithClock(now func() time.Time) *Merger {
	m.now = now
	return m
}

// WithStart clamps the index start: source rows before t are discarded.
func (m *Merger) WithStart(t time.Time) *Merger {
	m.start = domain.Day(t)
	return m
}

// Merge aligns all tables onto the union daily index and forward-fills
// every column. Duplicate dates within a source keep the first occurrence;
// later occurrences are dropped with a warning. Empty tables contribute
// nothing but do not abort the merge.
func (m *Merger) Merge(tables []*domain.RawTable) (*Result, error) {
	res := &Result{}

	start, ok := earliestStart(tables)
	if !ok {
		return nil, fmt.Errorf("merge: no source table carries any rows")
	}
	if !m.start.IsZero() && m.start.After(start) {
		start = m.start
	}
	end := domain.Day(m.now()).AddDate(0, 0, -1)
	if end.Before(start) {
		end = start
	}

	frame, err := domain.NewFrame(domain.DateRange(start, end))
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	for _, t := range tables {
		if t.Empty() {
			res.EmptySources = append(res.EmptySources, t.Name)
			log.Warn().Str("source", t.Name).Msg("source table is empty, contributing no columns")
			continue
		}
		res.DuplicatesDropped += mergeTable(frame, t)
	}

	res.Frame = frame
	return res, nil
}

// mergeTable scatters one raw table onto the frame index and forward-fills.
// Returns the number of duplicate rows dropped.
func mergeTable(frame *domain.Frame, t *domain.RawTable) int {
	n := frame.Len()

	// Row positions on the shared index, first occurrence wins.
	positions := make([]int, 0, len(t.Dates))
	seen := make(map[time.Time]bool, len(t.Dates))
	dropped := 0
	for _, d := range t.Dates {
		d = domain.Day(d)
		if seen[d] {
			dropped++
			positions = append(positions, -1)
			continue
		}
		seen[d] = true
		if i, ok := frame.RowIndex(d); ok {
			positions = append(positions, i)
		} else {
			// Outside [start, yesterday]; typically a partial today row.
			positions = append(positions, -1)
		}
	}
	if dropped > 0 {
		log.Warn().Str("source", t.Name).Int("rows", dropped).Msg("dropped duplicate timestamps")
	}

	for _, name := range t.ColumnOrder {
		src := t.Columns[name]
		dst := domain.NaNs(n)
		for row, pos := range positions {
			if pos < 0 || row >= len(src) {
				continue
			}
			dst[pos] = src[row]
		}
		forwardFill(dst)
		if err := frame.Set(name, dst); err != nil {
			// Length is constructed to match; reaching here is a bug.
			log.Error().Err(err).Str("column", name).Msg("merge: set column failed")
		}
	}
	return dropped
}

// forwardFill replaces each NaN with the last preceding non-NaN value.
// Leading NaNs, before the first observation, stay NaN.
func forwardFill(vals []float64) {
	last := math.NaN()
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = last
		} else {
			last = v
		}
	}
}

func earliestStart(tables []*domain.RawTable) (time.Time, bool) {
	var min time.Time
	found := false
	for _, t := range tables {
		s, ok := t.Start()
		if !ok {
			continue
		}
		if !found || s.Before(min) {
			min = s
			found = true
		}
	}
	return min, found
}
