package reporting

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/storage"
	"bitcoin-metrics-lab/internal/storage/memory"
)

func day(d int) time.Time {
	return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
}

// seedReport stores a three-row report: price has a trailing NaN so the
// highlight scan must fall back to the middle row.
func seedReport(t *testing.T, store storage.ReportStore) {
	t.Helper()

	frame, err := domain.NewFrame([]time.Time{day(1), day(2), day(3)})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	frame.Set(domain.ColPriceUSD, []float64{10000, 20000, math.NaN()})
	frame.Set(domain.ColMVRVRatio, []float64{1, 2, 3})

	report := &storage.Report{
		GeneratedAt: day(4),
		Frame:       frame,
		Cycles: map[cycles.Family]*cycles.Table{
			cycles.FamilyDrawdown: {
				Family: cycles.FamilyDrawdown,
				Points: []cycles.Point{
					{ElapsedDays: 0, Value: 0, Era: "2019-2020"},
					{ElapsedDays: 1, Value: -25, Era: "2019-2020"},
					{ElapsedDays: 0, Value: 0, Era: "2020-"},
				},
				Skipped: []string{"2011-2013"},
			},
		},
	}
	if err := store.Save(context.Background(), report); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func testSpecs() []charts.Spec {
	return []charts.Spec{{
		ID:    "price_chart",
		Title: "Bitcoin Price",
		Series: []charts.Series{
			{Name: "Price", Column: domain.ColPriceUSD, Axis: charts.AxisPrimary},
		},
	}}
}

func TestGenerator_Generate(t *testing.T) {
	store := memory.NewReportStore()
	seedReport(t, store)

	gen := NewGenerator(store, testSpecs()).WithClock(func() time.Time { return day(5) })
	bundle, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bundle.GeneratedAt.Equal(day(5)) {
		t.Errorf("expected clock timestamp, got %v", bundle.GeneratedAt)
	}

	lines := strings.Split(strings.TrimRight(bundle.FrameCSV, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "time,PriceUSD,mvrv_ratio" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "2020-01-01,10000,1" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	// NaN renders as an empty cell.
	if lines[3] != "2020-01-03,,3" {
		t.Errorf("unexpected last row: %q", lines[3])
	}

	if bundle.ColumnList != "PriceUSD\nmvrv_ratio\n" {
		t.Errorf("unexpected column list: %q", bundle.ColumnList)
	}

	cycleCSV := bundle.CycleCSVs[cycles.FamilyDrawdown]
	if !strings.HasPrefix(cycleCSV, "days_since_ath,value,era\n") {
		t.Errorf("unexpected cycle header: %q", cycleCSV)
	}
	if !strings.Contains(cycleCSV, "1,-25,2019-2020\n") {
		t.Errorf("cycle CSV missing point row: %q", cycleCSV)
	}

	if !strings.Contains(string(bundle.ChartsJSON), `"id": "price_chart"`) {
		t.Errorf("charts JSON missing spec: %s", bundle.ChartsJSON)
	}
}

func TestGenerator_SummaryHighlights(t *testing.T) {
	store := memory.NewReportStore()
	seedReport(t, store)

	bundle, err := NewGenerator(store, nil).Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := bundle.Summary

	if s.Rows != 3 || s.Columns != 2 {
		t.Errorf("expected 3x2 frame, got %dx%d", s.Rows, s.Columns)
	}

	var price *Highlight
	for i := range s.Highlights {
		if s.Highlights[i].Column == domain.ColPriceUSD {
			price = &s.Highlights[i]
		}
	}
	if price == nil {
		t.Fatal("expected a price highlight")
	}
	// Last row is NaN, so the highlight carries the Jan 2 value.
	if price.Value != 20000 || !price.Date.Equal(day(2)) {
		t.Errorf("expected 20000 on Jan 2, got %f on %v", price.Value, price.Date)
	}

	if s.CycleEras[cycles.FamilyDrawdown] != 2 {
		t.Errorf("expected 2 drawdown eras, got %d", s.CycleEras[cycles.FamilyDrawdown])
	}
	if len(s.SkippedEras) != 1 || s.SkippedEras[0] != "2011-2013" {
		t.Errorf("unexpected skipped eras: %v", s.SkippedEras)
	}

	md := bundle.SummaryMarkdown
	for _, want := range []string{
		"# Bitcoin Metrics Report",
		"3 rows x 2 columns",
		"| Bitcoin Price | 2020-01-02 | 20000.0000 |",
		"| days_since_ath | 2 |",
		"- 2011-2013",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestGenerator_NoReport(t *testing.T) {
	gen := NewGenerator(memory.NewReportStore(), nil)
	_, err := gen.Generate(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteDir(t *testing.T) {
	store := memory.NewReportStore()
	seedReport(t, store)

	bundle, err := NewGenerator(store, testSpecs()).Generate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dir := t.TempDir()
	if err := WriteDir(bundle, filepath.Join(dir, "out")); err != nil {
		t.Fatalf("WriteDir: %v", err)
	}

	for _, name := range []string{
		"report_data.csv", "columns.txt", "summary.md", "charts.json",
		"cycles_days_since_ath.csv",
	} {
		data, err := os.ReadFile(filepath.Join(dir, "out", name))
		if err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("empty artifact %s", name)
		}
	}
}

func TestCSVEscape(t *testing.T) {
	cases := map[string]string{
		"PriceUSD":    "PriceUSD",
		"BRK-A_close": "BRK-A_close",
		"a,b":         `"a,b"`,
		`say "hi"`:    `"say ""hi"""`,
	}
	for in, want := range cases {
		if got := csvEscape(in); got != want {
			t.Errorf("csvEscape(%q) = %q, want %q", in, got, want)
		}
	}
}
