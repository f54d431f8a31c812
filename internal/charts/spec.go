// Package charts holds the declarative chart template catalog. Templates
// name the frame columns they plot; Validate checks those references
// against the frame before any rendering happens, so a renamed or missing
// column fails the run instead of producing a broken dashboard.
package charts

import (
	"fmt"
	"strings"

	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
)

// Axis selects the Y axis a series is drawn on.
type Axis string

const (
	AxisPrimary   Axis = "y1"
	AxisSecondary Axis = "y2"
)

// Series is one plotted line: a display name and the frame column (or
// cycle-table pivot) backing it.
type Series struct {
	Name   string `json:"name"`
	Column string `json:"column"`
	Axis   Axis   `json:"axis"`
}

// Event is a dated vertical annotation shared across charts.
type Event struct {
	Name  string   `json:"name"`
	Dates []string `json:"dates"`
}

// Spec is one chart template. Family distinguishes charts fed by the
// metric frame from charts fed by a cycle table; cycle charts pivot the
// long table by era and ignore Series columns.
type Spec struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	XLabel     string        `json:"x_label"`
	Y1Label    string        `json:"y1_label"`
	Y2Label    string        `json:"y2_label"`
	LogY       bool          `json:"log_y"`
	DataSource string        `json:"data_source"`
	Series     []Series      `json:"series"`
	Events     []Event       `json:"events,omitempty"`
	Family     cycles.Family `json:"family,omitempty"`
}

// Validate checks that every frame-backed series references an existing
// column. A failure is fatal at assembly time.
func Validate(specs []Spec, f *domain.Frame) error {
	var missing []string
	for _, s := range specs {
		if s.Family != "" {
			continue // cycle charts validate against cycle tables, not the frame
		}
		for _, series := range s.Series {
			if !f.Has(series.Column) {
				missing = append(missing, fmt.Sprintf("%s: %s", s.ID, series.Column))
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: chart references %s", domain.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}
