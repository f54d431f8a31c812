package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/storage"
)

// headlineMetrics are the columns surfaced in the summary, in display
// order. Missing columns are skipped rather than failing the report.
var headlineMetrics = []Highlight{
	{Name: "Bitcoin Price", Column: domain.ColPriceUSD},
	{Name: "Realized Price", Column: domain.ColRealisedPrice},
	{Name: "200 Day Multiple", Column: domain.Col200DayMultiple},
	{Name: "MVRV Ratio", Column: domain.ColMVRVRatio},
	{Name: "NUPL", Column: domain.ColNUPL},
	{Name: "Thermocap Multiple", Column: domain.ColThermocapMultiple},
	{Name: "Stock-To-Flow Price", Column: domain.ColSFPredictedPrice},
	{Name: "Production Cost", Column: domain.ColProductionCost},
	{Name: "Sats Per Dollar", Column: domain.ColSatPerDollar},
	{Name: "YTD Change (%)", Column: domain.YTDChangeCol(domain.ColPriceUSD)},
}

// Generator renders report bundles from the stored pipeline output.
type Generator struct {
	reportStore storage.ReportStore
	chartSpecs  []charts.Spec
	now         func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(reportStore storage.ReportStore, chartSpecs []charts.Spec) *Generator {
	return &Generator{
		reportStore: reportStore,
		chartSpecs:  chartSpecs,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate renders a complete bundle from the latest stored report.
// Returns storage.ErrNotFound if no pipeline run has completed.
func (g *Generator) Generate(ctx context.Context) (*Bundle, error) {
	report, err := g.reportStore.Latest(ctx)
	if err != nil {
		return nil, err
	}

	summary := g.buildSummary(report)

	chartsJSON, err := json.MarshalIndent(g.chartSpecs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("reporting: marshal chart catalog: %w", err)
	}

	cycleCSVs := make(map[cycles.Family]string, len(report.Cycles))
	for fam, table := range report.Cycles {
		cycleCSVs[fam] = RenderCycleCSV(table)
	}

	return &Bundle{
		GeneratedAt:     g.now(),
		Summary:         summary,
		FrameCSV:        RenderFrameCSV(report.Frame),
		ColumnList:      RenderColumnList(report.Frame),
		CycleCSVs:       cycleCSVs,
		ChartsJSON:      chartsJSON,
		SummaryMarkdown: RenderMarkdown(&summary),
	}, nil
}

// buildSummary extracts the headline view of a stored report.
func (g *Generator) buildSummary(report *storage.Report) Summary {
	f := report.Frame
	s := Summary{
		GeneratedAt: report.GeneratedAt,
		Rows:        f.Len(),
		Columns:     f.NumColumns(),
		CycleEras:   make(map[cycles.Family]int, len(report.Cycles)),
	}
	if f.Len() > 0 {
		s.FirstDate = f.Date(0)
		s.LastDate = f.Date(f.Len() - 1)
	}

	for _, h := range headlineMetrics {
		vals, err := f.Column(h.Column)
		if err != nil {
			continue
		}
		for i := len(vals) - 1; i >= 0; i-- {
			if !math.IsNaN(vals[i]) {
				h.Date = f.Date(i)
				h.Value = vals[i]
				s.Highlights = append(s.Highlights, h)
				break
			}
		}
	}

	for fam, table := range report.Cycles {
		eras := make(map[string]struct{})
		for _, p := range table.Points {
			eras[p.Era] = struct{}{}
		}
		s.CycleEras[fam] = len(eras)
		s.SkippedEras = append(s.SkippedEras, table.Skipped...)
	}
	return s
}
