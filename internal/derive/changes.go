package derive

import (
	"fmt"
	"math"

	"bitcoin-metrics-lab/internal/domain"
)

// Fixed lags for the percentage-change family, one through five years.
var changeLags = []int{1, 7, 30, 90, 365, 730, 1095, 1460, 1825}

// CAGR horizons in years.
var cagrYears = []int{2, 4}

// changeSteps builds the percentage-change and CAGR family for each
// configured metric: fixed-lag changes, YTD/MTD anchored at the first
// observation of the calendar year/month, YOY at the 365-day lag.
func changeSteps(metrics []string) []Step {
	steps := make([]Step, 0, len(metrics))
	for _, metric := range metrics {
		metric := metric
		produces := make([]string, 0, len(changeLags)+len(cagrYears)+3)
		for _, lag := range changeLags {
			produces = append(produces, domain.DayChangeCol(metric, lag))
		}
		produces = append(produces,
			domain.YTDChangeCol(metric),
			domain.MTDChangeCol(metric),
			domain.YOYChangeCol(metric),
		)
		for _, y := range cagrYears {
			produces = append(produces, domain.CAGRCol(metric, y))
		}

		steps = append(steps, Step{
			Name:     fmt.Sprintf("changes_%s", metric),
			Requires: []string{metric},
			Produces: produces,
			Apply: func(f *domain.Frame) error {
				vals := col(f, metric)

				for _, lag := range changeLags {
					if err := f.Set(domain.DayChangeCol(metric, lag), pctChange(lagRatio(vals, lag))); err != nil {
						return err
					}
				}
				if err := f.Set(domain.YTDChangeCol(metric), anchoredChange(f, vals, yearKey)); err != nil {
					return err
				}
				if err := f.Set(domain.MTDChangeCol(metric), anchoredChange(f, vals, monthKey)); err != nil {
					return err
				}
				if err := f.Set(domain.YOYChangeCol(metric), pctChange(lagRatio(vals, 365))); err != nil {
					return err
				}
				for _, y := range cagrYears {
					if err := f.Set(domain.CAGRCol(metric, y), rollingCAGR(vals, y)); err != nil {
						return err
					}
				}
				return nil
			},
		})
	}
	return steps
}

// pctChange turns ratios into percentage changes in place.
func pctChange(ratios []float64) []float64 {
	for i, r := range ratios {
		ratios[i] = (r - 1) * 100
	}
	return ratios
}

func yearKey(f *domain.Frame, i int) int {
	return f.Date(i).Year()
}

func monthKey(f *domain.Frame, i int) int {
	d := f.Date(i)
	return d.Year()*100 + int(d.Month())
}

// anchoredChange computes the change relative to the first valid
// observation of each group (calendar year for YTD, year+month for MTD).
// Each group anchors independently: the first observation of every group
// reads exactly 0.
func anchoredChange(f *domain.Frame, vals []float64, key func(*domain.Frame, int) int) []float64 {
	out := nans(len(vals))
	currentKey := 0
	anchor := math.NaN()
	for i, v := range vals {
		k := key(f, i)
		if k != currentKey {
			currentKey = k
			anchor = math.NaN()
		}
		if math.IsNaN(anchor) && !math.IsNaN(v) {
			anchor = v
		}
		if math.IsNaN(anchor) || anchor == 0 || math.IsNaN(v) {
			continue
		}
		out[i] = (v/anchor - 1) * 100
	}
	return out
}

// rollingCAGR computes the annualized growth rate over years*365 days.
// Entries before the first full window are NaN.
func rollingCAGR(vals []float64, years int) []float64 {
	out := nans(len(vals))
	lag := years * 365
	for i := lag; i < len(vals); i++ {
		base := vals[i-lag]
		if base <= 0 || math.IsNaN(vals[i]) || vals[i] < 0 {
			continue
		}
		out[i] = (math.Pow(vals[i]/base, 1/float64(years)) - 1) * 100
	}
	return out
}
