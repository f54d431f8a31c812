package stats

import (
	"errors"
	"math"
	"testing"
	"time"

	"bitcoin-metrics-lab/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRun_PercentileAndZScore(t *testing.T) {
	f, _ := domain.NewFrame(domain.DateRange(day(2020, 1, 1), day(2020, 1, 5)))
	f.Set("m", []float64{10, 20, 30, 40, 50})

	// Window opens on day one: all five values participate.
	e := New(day(2020, 1, 1), []string{"m"}, nil)
	if err := e.Run(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pct, _ := f.Column(domain.PercentileCol("m"))
	// 10 is the smallest of five values: rank 1/5.
	if pct[0] != 0.2 {
		t.Errorf("expected percentile 0.2, got %f", pct[0])
	}
	if pct[4] != 1.0 {
		t.Errorf("expected percentile 1.0 for the maximum, got %f", pct[4])
	}

	z, _ := f.Column(domain.ZScoreCol("m"))
	// Mean 30, population stddev sqrt(200).
	want := (50.0 - 30.0) / math.Sqrt(200)
	if math.Abs(z[4]-want) > 1e-9 {
		t.Errorf("expected z %.6f, got %f", want, z[4])
	}
	if math.Abs(z[2]) > 1e-9 {
		t.Errorf("expected z 0 at the mean, got %f", z[2])
	}
}

func TestRun_RowsBeforeWindowStayNaN(t *testing.T) {
	f, _ := domain.NewFrame(domain.DateRange(day(2020, 1, 1), day(2020, 1, 5)))
	f.Set("m", []float64{10, 20, 30, 40, 50})

	e := New(day(2020, 1, 3), []string{"m"}, nil)
	if err := e.Run(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pct, _ := f.Column(domain.PercentileCol("m"))
	if !math.IsNaN(pct[0]) || !math.IsNaN(pct[1]) {
		t.Error("expected NaN before the stats window opens")
	}
	// Window holds {30, 40, 50}: 30 ranks 1/3.
	if math.Abs(pct[2]-1.0/3.0) > 1e-9 {
		t.Errorf("expected percentile 1/3, got %f", pct[2])
	}
}

func TestRun_StartDateBeforeFrame(t *testing.T) {
	f, _ := domain.NewFrame(domain.DateRange(day(2020, 1, 1), day(2020, 1, 3)))
	f.Set("m", []float64{1, 2, 3})

	e := New(day(2012, 11, 28), []string{"m"}, nil)
	if err := e.Run(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pct, _ := f.Column(domain.PercentileCol("m"))
	if math.IsNaN(pct[0]) {
		t.Error("expected whole frame in window when start predates it")
	}
}

func TestRun_MissingMetricFails(t *testing.T) {
	f, _ := domain.NewFrame(domain.DateRange(day(2020, 1, 1), day(2020, 1, 3)))

	e := New(day(2020, 1, 1), []string{"missing"}, nil)
	err := e.Run(f)
	if !errors.Is(err, domain.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestRollingVolatility_ConstantSeriesIsZero(t *testing.T) {
	vals := make([]float64, 40)
	for i := range vals {
		vals[i] = 100
	}
	out := rollingVolatility(vals, 30)

	if !math.IsNaN(out[29]) {
		t.Error("expected NaN before the window fills")
	}
	if out[30] != 0 {
		t.Errorf("expected zero volatility for a flat series, got %f", out[30])
	}
}

func TestRollingVolatility_KnownValue(t *testing.T) {
	// Alternating +10% / -10% daily returns over a 4-day window.
	vals := []float64{100, 110, 99, 108.9, 98.01, 107.811}
	out := rollingVolatility(vals, 4)

	// Returns in the window are {+0.1, -0.1, +0.1, -0.1}: mean 0,
	// population stddev 0.1, annualized to 0.1*sqrt(365)*100 percent.
	want := 0.1 * math.Sqrt(365) * 100
	if math.Abs(out[4]-want) > 1e-6 {
		t.Errorf("expected %.4f, got %f", want, out[4])
	}
}
