package derive

import (
	"math"
	"testing"
	"time"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
)

func TestAnchoredChange_ResetsAtYearBoundary(t *testing.T) {
	// Index spanning Dec 30 2019 through Jan 3 2020.
	start := time.Date(2019, 12, 30, 0, 0, 0, 0, time.UTC)
	f, _ := domain.NewFrame(domain.DateRange(start, start.AddDate(0, 0, 4)))
	vals := []float64{100, 110, 120, 150, 180}
	f.Set("m", vals)

	out := anchoredChange(f, vals, yearKey)

	// Dec 30 anchors 2019: first observation reads exactly 0.
	if out[0] != 0 {
		t.Errorf("expected 0 at year anchor, got %f", out[0])
	}
	if out[1] != 10 {
		t.Errorf("expected 10%% on Dec 31, got %f", out[1])
	}
	// Jan 1 re-anchors at 120: reads 0 again.
	if out[2] != 0 {
		t.Errorf("expected 0 at new year anchor, got %f", out[2])
	}
	if out[3] != 25 {
		t.Errorf("expected 25%% (150/120), got %f", out[3])
	}
	if out[4] != 50 {
		t.Errorf("expected 50%% (180/120), got %f", out[4])
	}
}

func TestAnchoredChange_SkipsLeadingNaN(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	f, _ := domain.NewFrame(domain.DateRange(start, start.AddDate(0, 0, 3)))
	vals := []float64{math.NaN(), 200, 220, 240}
	f.Set("m", vals)

	out := anchoredChange(f, vals, yearKey)

	if !math.IsNaN(out[0]) {
		t.Error("expected NaN where the metric is missing")
	}
	// The first valid observation becomes the anchor.
	if out[1] != 0 {
		t.Errorf("expected 0 at first valid observation, got %f", out[1])
	}
	if out[2] != 10 {
		t.Errorf("expected 10%%, got %f", out[2])
	}
}

func TestAnchoredChange_MonthKey(t *testing.T) {
	start := time.Date(2020, 1, 30, 0, 0, 0, 0, time.UTC)
	f, _ := domain.NewFrame(domain.DateRange(start, start.AddDate(0, 0, 3)))
	vals := []float64{100, 110, 200, 300}
	f.Set("m", vals)

	out := anchoredChange(f, vals, monthKey)

	// Feb 1 (row 2) re-anchors at 200.
	if out[2] != 0 {
		t.Errorf("expected 0 at month anchor, got %f", out[2])
	}
	if out[3] != 50 {
		t.Errorf("expected 50%% (300/200), got %f", out[3])
	}
}

func TestPctChange_FixedLag(t *testing.T) {
	vals := []float64{100, 0, 0, 0, 0, 0, 0, 150}
	out := pctChange(lagRatio(vals, 7))

	if !math.IsNaN(out[6]) {
		t.Error("expected NaN before the lag is available")
	}
	if out[7] != 50 {
		t.Errorf("expected 50%% 7-day change, got %f", out[7])
	}
}

func TestRollingCAGR(t *testing.T) {
	// 730 days of history quadrupling: 2-year CAGR is exactly 100%.
	n := 731
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 100
	}
	vals[n-1] = 400

	out := rollingCAGR(vals, 2)
	if !math.IsNaN(out[n-2]) {
		t.Error("expected NaN before a full window")
	}
	if math.Abs(out[n-1]-100) > 1e-9 {
		t.Errorf("expected 100%% CAGR, got %f", out[n-1])
	}
}

func TestStockToFlow_WorkedExample(t *testing.T) {
	n := flowLagDays + 1
	sply := make([]float64, n)
	price := make([]float64, n)
	for i := range sply {
		// Linear issuance from 18.65M to 19M coins over the year.
		sply[i] = 18.65e6 + 350e3*float64(i)/float64(flowLagDays)
		price[i] = 50000
	}
	f := testFrame(t, n, map[string][]float64{
		domain.ColSplyCur:  sply,
		domain.ColPriceUSD: price,
	})

	step := stockToFlowStep(dataset.StockToFlow{Intercept: 14.6, Power: 3.3})

	if err := step.Apply(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Flow over the trailing year is 350k coins: SF = 19M / 350k.
	wantSF := 19e6 / 350e3
	if got := f.At(domain.ColSF, n-1); math.Abs(got-wantSF) > 1e-9 {
		t.Errorf("expected SF %.4f, got %f", wantSF, got)
	}

	wantPrice := math.Exp(14.6) * math.Pow(wantSF, 3.3) / 19e6
	if got := f.At(domain.ColSFPredictedPrice, n-1); math.Abs(got-wantPrice) > 1e-6 {
		t.Errorf("expected predicted price %.2f, got %f", wantPrice, got)
	}

	wantMultiple := 50000 / wantPrice
	if got := f.At(domain.ColSFMultiple, n-1); math.Abs(got-wantMultiple) > 1e-9 {
		t.Errorf("expected multiple %.4f, got %f", wantMultiple, got)
	}

	// No full year of history yet: everything NaN.
	if !math.IsNaN(f.At(domain.ColSF, flowLagDays-1)) {
		t.Error("expected NaN SF before a year of history")
	}
}
