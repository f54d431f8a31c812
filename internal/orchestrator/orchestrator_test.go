// Package orchestrator tests exercise the full pipeline end to end over
// a small synthetic on-chain table.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/storage/memory"
)

// fixedNow pins the clock so the merged index always ends 2020-12-30.
func fixedNow() time.Time {
	return time.Date(2020, 12, 31, 10, 0, 0, 0, time.UTC)
}

// testConfig trims the reference config down to what the synthetic
// table can feed: no TradFi tickers, no market-cap comparisons, a single
// era per family.
func testConfig() *dataset.Config {
	cfg := dataset.Default()
	cfg.StartDate = dataset.MustDate("2020-01-01")
	cfg.StatsStartDate = dataset.MustDate("2020-06-01")
	cfg.MovingAvgMetrics = []string{domain.ColNVTPrice, domain.ColIssContNtv}
	cfg.ChangeMetrics = []string{domain.ColPriceUSD}
	cfg.VolatilityWindows = []int{30}
	cfg.Tickers = nil
	cfg.StockMarketCaps = nil
	cfg.FiatSupplies = nil
	cfg.Metals = nil
	cfg.GoldBreakdown = nil
	cfg.DrawdownEras = []dataset.Era{{Label: "2020", Start: dataset.MustDate("2020-01-01"), Open: true}}
	cfg.CycleLowEras = []dataset.Era{{Label: "2020", Start: dataset.MustDate("2020-01-01"), Open: true}}
	cfg.HalvingEras = []dataset.Era{{Label: "Epoch 4", Start: dataset.MustDate("2020-05-11"), Open: true}}
	return cfg
}

// onChainTable builds 366 daily rows covering every raw column the
// derivation pipeline requires. Values are arbitrary but positive so no
// division produces NaN beyond warmup windows.
func onChainTable() *domain.RawTable {
	t := domain.NewRawTable("coinmetrics")
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 366
	cols := []string{
		domain.ColPriceUSD, domain.ColCapMrktCurUSD, domain.ColCapRealUSD,
		domain.ColSplyCur, domain.ColSplyExpFut10yr, domain.ColSplyActPct1yr,
		domain.ColHashRate, domain.ColTxTfrValAdjUSD, domain.ColRevAllTimeUSD,
		domain.ColIssContNtv, domain.ColNVTAdj90, domain.ColNVTAdjFF90,
	}
	for i := 0; i < n; i++ {
		t.Dates = append(t.Dates, start.AddDate(0, 0, i))
	}
	for _, c := range cols {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = 100 + float64(i)
		}
		t.Columns[c] = vals
		t.ColumnOrder = append(t.ColumnOrder, c)
	}
	return t
}

func TestOrchestrator_RunFullPipeline(t *testing.T) {
	ctx := context.Background()
	sourceStore := memory.NewSourceStore()
	reportStore := memory.NewReportStore()
	if err := sourceStore.Put(ctx, onChainTable()); err != nil {
		t.Fatalf("seed source: %v", err)
	}

	orch := New(Options{
		SourceStore: sourceStore,
		ReportStore: reportStore,
		Config:      testConfig(),
		Now:         fixedNow,
	})

	result, err := orch.Run(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SourcesLoaded != 1 {
		t.Errorf("expected 1 source, got %d", result.SourcesLoaded)
	}
	// 2020-01-01 through 2020-12-30 inclusive.
	if result.Rows != 365 {
		t.Errorf("expected 365 rows, got %d", result.Rows)
	}
	if result.CyclePoints == 0 {
		t.Error("expected cycle points")
	}

	report, err := reportStore.Latest(ctx)
	if err != nil {
		t.Fatalf("latest report: %v", err)
	}
	if !report.GeneratedAt.Equal(fixedNow().UTC()) {
		t.Errorf("expected GeneratedAt %v, got %v", fixedNow().UTC(), report.GeneratedAt)
	}

	for _, col := range []string{
		domain.ColMVRVRatio,
		domain.ColRealisedPrice,
		domain.ColNUPL,
		domain.Col200DayMultiple,
		domain.ColSFPredictedPrice,
		domain.ColProductionCost,
		domain.MovingAvgCol(200, domain.ColPriceUSD),
		domain.YTDChangeCol(domain.ColPriceUSD),
		domain.PercentileCol(domain.ColPriceUSD),
		domain.ZScoreCol(domain.ColPriceUSD),
		domain.VolatilityCol(domain.ColPriceUSD, 30),
	} {
		if !report.Frame.Has(col) {
			t.Errorf("expected derived column %s in saved frame", col)
		}
	}

	for _, fam := range []cycles.Family{cycles.FamilyDrawdown, cycles.FamilyCycleLow, cycles.FamilyHalving} {
		table, ok := report.Cycles[fam]
		if !ok || len(table.Points) == 0 {
			t.Errorf("expected points for family %s", fam)
		}
	}
	// The drawdown era spans the whole 365-row frame.
	if got := len(report.Cycles[cycles.FamilyDrawdown].Points); got != 365 {
		t.Errorf("expected 365 drawdown points, got %d", got)
	}
}

func TestOrchestrator_RunEmptySourceStore(t *testing.T) {
	orch := New(Options{
		SourceStore: memory.NewSourceStore(),
		ReportStore: memory.NewReportStore(),
		Config:      testConfig(),
		Now:         fixedNow,
	})

	_, err := orch.Run(context.Background())
	if err == nil {
		t.Fatal("expected error for empty source store")
	}
	if !strings.Contains(err.Error(), "phase 1") {
		t.Errorf("expected phase 1 failure, got %v", err)
	}
}

func TestOrchestrator_RunChartValidationFailure(t *testing.T) {
	ctx := context.Background()
	sourceStore := memory.NewSourceStore()
	sourceStore.Put(ctx, onChainTable())
	reportStore := memory.NewReportStore()

	orch := New(Options{
		SourceStore: sourceStore,
		ReportStore: reportStore,
		Config:      testConfig(),
		ChartSpecs: []charts.Spec{{
			ID:     "bad_chart",
			Series: []charts.Series{{Name: "Missing", Column: "no_such_column"}},
		}},
		Now: fixedNow,
	})

	_, err := orch.Run(ctx)
	if !errors.Is(err, domain.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}

	// The failed run must not save a report.
	if _, err := reportStore.Latest(ctx); err == nil {
		t.Error("failed run should leave the report store empty")
	}
}
