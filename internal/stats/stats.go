// Package stats computes the fixed-window summary statistics: percentile
// rank and z-score over everything after the stats start date, plus
// rolling annualized volatility. Unlike the derive steps these are not
// rolling-window transforms; the window opens once at the configured date
// and runs to the end of the frame.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"bitcoin-metrics-lab/internal/domain"
)

// Engine computes summary statistics for a configured metric list.
type Engine struct {
	startDate  time.Time
	metrics    []string
	volWindows []int
}

// New creates a stats engine. startDate opens the fixed stats window;
// volWindows are the rolling volatility windows in days.
func New(startDate time.Time, metrics []string, volWindows []int) *Engine {
	return &Engine{
		startDate:  domain.Day(startDate),
		metrics:    metrics,
		volWindows: volWindows,
	}
}

// Run widens the frame with <metric>_percentile, <metric>_zscore and
// <metric>_volatility_<w> columns. A metric missing from the frame is a
// configuration error.
func (e *Engine) Run(f *domain.Frame) error {
	start := e.windowStart(f)
	for _, metric := range e.metrics {
		vals, err := f.Column(metric)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		pct, z := windowStats(vals, start)
		if err := f.Set(domain.PercentileCol(metric), pct); err != nil {
			return err
		}
		if err := f.Set(domain.ZScoreCol(metric), z); err != nil {
			return err
		}
		for _, w := range e.volWindows {
			if err := f.Set(domain.VolatilityCol(metric, w), rollingVolatility(vals, w)); err != nil {
				return err
			}
		}
	}
	return nil
}

// windowStart returns the first row inside the stats window.
func (e *Engine) windowStart(f *domain.Frame) int {
	if i, ok := f.RowIndex(e.startDate); ok {
		return i
	}
	// Start date before the frame: whole frame is in the window.
	if f.Len() > 0 && e.startDate.Before(f.Date(0)) {
		return 0
	}
	return f.Len()
}

// windowStats computes fractional percentile rank (0-1) and z-score of
// each in-window value against the whole window. Rows before the window
// and NaN rows stay NaN.
func windowStats(vals []float64, start int) (pct, z []float64) {
	n := len(vals)
	pct = domain.NaNs(n)
	z = domain.NaNs(n)

	window := make([]float64, 0, n-start)
	for i := start; i < n; i++ {
		if !math.IsNaN(vals[i]) {
			window = append(window, vals[i])
		}
	}
	if len(window) == 0 {
		return pct, z
	}

	sorted := make([]float64, len(window))
	copy(sorted, window)
	sort.Float64s(sorted)

	mean := 0.0
	for _, v := range window {
		mean += v
	}
	mean /= float64(len(window))
	variance := 0.0
	for _, v := range window {
		variance += (v - mean) * (v - mean)
	}
	stddev := math.Sqrt(variance / float64(len(window)))

	for i := start; i < n; i++ {
		v := vals[i]
		if math.IsNaN(v) {
			continue
		}
		// Fractional rank: share of window values at or below v.
		rank := sort.SearchFloat64s(sorted, math.Nextafter(v, math.Inf(1)))
		pct[i] = float64(rank) / float64(len(sorted))
		if stddev > 0 {
			z[i] = (v - mean) / stddev
		}
	}
	return pct, z
}

// rollingVolatility is the rolling stddev of daily percentage returns,
// annualized by sqrt(365) and expressed in percent.
func rollingVolatility(vals []float64, window int) []float64 {
	n := len(vals)
	out := domain.NaNs(n)
	if window <= 1 || n < 2 {
		return out
	}

	returns := domain.NaNs(n)
	for i := 1; i < n; i++ {
		if vals[i-1] != 0 && !math.IsNaN(vals[i-1]) && !math.IsNaN(vals[i]) {
			returns[i] = vals[i]/vals[i-1] - 1
		}
	}

	for i := window; i < n; i++ {
		sum, count := 0.0, 0
		for j := i - window + 1; j <= i; j++ {
			if !math.IsNaN(returns[j]) {
				sum += returns[j]
				count++
			}
		}
		if count < window {
			continue
		}
		mean := sum / float64(count)
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			variance += (returns[j] - mean) * (returns[j] - mean)
		}
		out[i] = math.Sqrt(variance/float64(count)) * math.Sqrt(365) * 100
	}
	return out
}
