// Package cycles re-indexes absolute calendar time into relative
// "days since anchor" coordinates for the three hand-curated era
// families: drawdown cycles, cycle-low cycles and halving eras. The
// families use independently curated boundaries and may disagree on era
// edges; each answers a different question (peak-to-trough,
// trough-to-trough, halving-to-halving).
package cycles

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

// Family names the three era families. The strings double as the
// elapsed-day axis names in exported cycle tables.
type Family string

const (
	FamilyDrawdown Family = "days_since_ath"
	FamilyCycleLow Family = "days_since_cycle_low"
	FamilyHalving  Family = "days_since_halving"
)

// Point is one row of a cycle table: elapsed days from the era's anchor
// and the percentage value relative to the anchor.
type Point struct {
	ElapsedDays int
	Value       float64
	Era         string
}

// Table is a long-format per-family cycle table, eras stacked row-wise.
type Table struct {
	Family Family
	Points []Point
	// Skipped lists eras omitted because their anchor could not be
	// resolved against the frame.
	Skipped []string
}

// Engine segments a frame against configured era families. Open-ended
// eras close at the frame's last row, which the merger pins to yesterday.
type Engine struct {
	priceColumn string
}

// New creates a segmentation engine over the given price column.
func New(priceColumn string) *Engine {
	return &Engine{priceColumn: priceColumn}
}

// Drawdowns builds the drawdown family: anchor is the running maximum of
// price inside each era, values are (price/anchor - 1) * 100, always <= 0
// and exactly 0 whenever a new running maximum is set. Elapsed days count
// from the era start.
func (e *Engine) Drawdowns(f *domain.Frame, eras []dataset.Era) (*Table, error) {
	table := &Table{Family: FamilyDrawdown}
	price, err := f.Column(e.priceColumn)
	if err != nil {
		return nil, err
	}
	for _, era := range eras {
		lo, hi, ok := e.eraRange(f, era)
		if !ok {
			table.skip(era.Label, "era outside frame range")
			continue
		}
		runningMax := math.NaN()
		for i := lo; i <= hi; i++ {
			p := price[i]
			if math.IsNaN(p) {
				continue
			}
			if math.IsNaN(runningMax) || p > runningMax {
				runningMax = p
			}
			table.Points = append(table.Points, Point{
				ElapsedDays: daysBetween(era.Start.Time, f.Date(i)),
				Value:       (p/runningMax - 1) * 100,
				Era:         era.Label,
			})
		}
	}
	return table, nil
}

// CycleLows builds the cycle-low family: the anchor is the single minimum
// price inside each era, computed once, and the elapsed-day axis is
// centered on the trough date rather than the era boundary. Only rows
// from the trough onward are emitted, so values are >= 0 and exactly 0 on
// the trough date.
func (e *Engine) CycleLows(f *domain.Frame, eras []dataset.Era) (*Table, error) {
	table := &Table{Family: FamilyCycleLow}
	price, err := f.Column(e.priceColumn)
	if err != nil {
		return nil, err
	}
	for _, era := range eras {
		lo, hi, ok := e.eraRange(f, era)
		if !ok {
			table.skip(era.Label, "era outside frame range")
			continue
		}
		troughIdx := -1
		trough := math.NaN()
		for i := lo; i <= hi; i++ {
			p := price[i]
			if math.IsNaN(p) {
				continue
			}
			if troughIdx < 0 || p < trough {
				trough, troughIdx = p, i
			}
		}
		if troughIdx < 0 || trough == 0 {
			table.skip(era.Label, "no valid trough price in era")
			continue
		}
		for i := troughIdx; i <= hi; i++ {
			p := price[i]
			if math.IsNaN(p) {
				continue
			}
			table.Points = append(table.Points, Point{
				ElapsedDays: daysBetween(f.Date(troughIdx), f.Date(i)),
				Value:       (p/trough - 1) * 100,
				Era:         era.Label,
			})
		}
	}
	return table, nil
}

// Halvings builds the halving family: the anchor is the price on the
// halving date itself. An era whose anchor date has no price entry is
// omitted with a warning; the other eras are unaffected.
func (e *Engine) Halvings(f *domain.Frame, eras []dataset.Era) (*Table, error) {
	table := &Table{Family: FamilyHalving}
	price, err := f.Column(e.priceColumn)
	if err != nil {
		return nil, err
	}
	for _, era := range eras {
		lo, hi, ok := e.eraRange(f, era)
		if !ok {
			table.skip(era.Label, "era outside frame range")
			continue
		}
		anchor, ok := f.ValueOn(e.priceColumn, era.Start.Time)
		if !ok || anchor == 0 {
			table.skip(era.Label, "no price entry on halving date")
			continue
		}
		for i := lo; i <= hi; i++ {
			p := price[i]
			if math.IsNaN(p) {
				continue
			}
			table.Points = append(table.Points, Point{
				ElapsedDays: daysBetween(era.Start.Time, f.Date(i)),
				Value:       (p/anchor - 1) * 100,
				Era:         era.Label,
			})
		}
	}
	return table, nil
}

// eraRange resolves an era's inclusive row range on the frame. Open-ended
// eras run to the frame's last row; boundaries are clamped to the frame.
func (e *Engine) eraRange(f *domain.Frame, era dataset.Era) (lo, hi int, ok bool) {
	if f.Len() == 0 {
		return 0, 0, false
	}
	first, last := f.Date(0), f.Date(f.Len()-1)

	start := domain.Day(era.Start.Time)
	end := domain.Day(era.End.Time)
	if era.Open {
		end = last
	}
	if end.Before(first) || start.After(last) {
		return 0, 0, false
	}
	if start.Before(first) {
		start = first
	}
	if end.After(last) {
		end = last
	}
	lo, _ = f.RowIndex(start)
	hi, _ = f.RowIndex(end)
	return lo, hi, true
}

func (t *Table) skip(label, reason string) {
	t.Skipped = append(t.Skipped, label)
	log.Warn().Str("family", string(t.Family)).Str("era", label).Str("reason", reason).Msg("skipping era")
}

func daysBetween(a, b time.Time) int {
	return int(domain.Day(b).Sub(domain.Day(a)).Hours() / 24)
}
