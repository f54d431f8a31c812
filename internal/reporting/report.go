package reporting

import (
	"time"

	"bitcoin-metrics-lab/internal/cycles"
)

// Bundle is one rendered report: every artifact the dashboard and the
// flat-file consumers need, ready to be written to a directory.
type Bundle struct {
	GeneratedAt time.Time

	Summary Summary

	// FrameCSV is the full wide frame, one row per day.
	FrameCSV string
	// ColumnList is the newline-separated column manifest.
	ColumnList string
	// CycleCSVs holds one long-format table per era family.
	CycleCSVs map[cycles.Family]string
	// ChartsJSON is the serialized chart template catalog.
	ChartsJSON []byte
	// SummaryMarkdown is the human-readable run summary.
	SummaryMarkdown string
}

// Summary describes the frame behind a report.
type Summary struct {
	GeneratedAt time.Time
	FirstDate   time.Time
	LastDate    time.Time
	Rows        int
	Columns     int

	// Highlights are the latest values of the headline metrics.
	Highlights []Highlight

	// CycleEras counts eras per family; SkippedEras lists eras whose
	// anchor could not be resolved.
	CycleEras   map[cycles.Family]int
	SkippedEras []string
}

// Highlight is one headline metric with its most recent valid value.
type Highlight struct {
	Name   string
	Column string
	Date   time.Time
	Value  float64
}
