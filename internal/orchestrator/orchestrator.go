// Package orchestrator coordinates the full report build.
// Flow: load sources → merge → derive → stats → cycles → save report.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/derive"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/merge"
	"bitcoin-metrics-lab/internal/observability"
	"bitcoin-metrics-lab/internal/stats"
	"bitcoin-metrics-lab/internal/storage"
)

// Orchestrator runs the pipeline phases against a source store and saves
// the result into a report store. Every run rebuilds the frame from
// scratch; nothing carries over between runs.
type Orchestrator struct {
	sourceStore storage.SourceStore
	reportStore storage.ReportStore
	cfg         *dataset.Config
	chartSpecs  []charts.Spec
	metrics     *observability.Metrics
	now         func() time.Time
	verbose     bool
}

// Options for creating an Orchestrator.
type Options struct {
	// Required stores
	SourceStore storage.SourceStore
	ReportStore storage.ReportStore

	// Config drives the derive, stats and cycle phases. Required.
	Config *dataset.Config

	// ChartSpecs, when set, are validated against the derived frame so a
	// renamed column fails the run instead of producing an empty chart.
	ChartSpecs []charts.Spec

	// Metrics is optional; nil disables instrumentation.
	Metrics *observability.Metrics

	// Now is an injectable clock for deterministic runs. Defaults to
	// time.Now.
	Now func() time.Time

	Verbose bool
}

// New creates a new Orchestrator.
func New(opts Options) *Orchestrator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Orchestrator{
		sourceStore: opts.SourceStore,
		reportStore: opts.ReportStore,
		cfg:         opts.Config,
		chartSpecs:  opts.ChartSpecs,
		metrics:     opts.Metrics,
		now:         now,
		verbose:     opts.Verbose,
	}
}

// RunResult contains results from one pipeline run.
type RunResult struct {
	SourcesLoaded     int
	Rows              int
	Columns           int
	DuplicatesDropped int
	CyclePoints       int
	SkippedEras       []string
	Duration          time.Duration
}

// Run executes the full pipeline.
// Phases:
//  1. Load raw source tables
//  2. Merge onto the daily index
//  3. Derive metric columns
//  4. Summary statistics
//  5. Cycle segmentation
//  6. Save report
//
// Any phase error aborts the run and leaves the previously saved report
// untouched.
func (o *Orchestrator) Run(ctx context.Context) (*RunResult, error) {
	started := o.now()
	result, err := o.run(ctx)
	if o.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		o.metrics.PipelineRunsTotal.WithLabelValues(status).Inc()
		o.metrics.PipelineDuration.Observe(o.now().Sub(started).Seconds())
		if err == nil {
			o.metrics.ReportsGenerated.Inc()
			o.metrics.LastSuccessfulPipeline.SetToCurrentTime()
		}
	}
	if result != nil {
		result.Duration = o.now().Sub(started)
	}
	return result, err
}

func (o *Orchestrator) run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{}

	// Phase 1: Load sources
	o.log("phase 1: loading source tables")
	tables, err := o.sourceStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("phase 1 (load sources) failed: %w", err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("phase 1 (load sources) failed: source store is empty")
	}
	result.SourcesLoaded = len(tables)
	o.log("loaded %d source tables", len(tables))

	// Phase 2: Merge
	o.log("phase 2: merging onto daily index")
	merged, err := merge.New().WithClock(o.now).WithStart(o.cfg.StartDate.Time).Merge(tables)
	if err != nil {
		return nil, fmt.Errorf("phase 2 (merge) failed: %w", err)
	}
	frame := merged.Frame
	result.DuplicatesDropped = merged.DuplicatesDropped
	if o.metrics != nil {
		o.metrics.RowsMerged.Set(float64(frame.Len()))
		o.metrics.ColumnsMerged.Set(float64(frame.NumColumns()))
		o.metrics.DuplicateTimestampsDropped.Add(float64(merged.DuplicatesDropped))
	}
	o.log("merged %d rows x %d columns (%d duplicates dropped)",
		frame.Len(), frame.NumColumns(), merged.DuplicatesDropped)

	// Phase 3: Derive
	o.log("phase 3: deriving metric columns")
	engine := derive.DefaultEngine(o.cfg)
	before := frame.NumColumns()
	if err := engine.Run(frame); err != nil {
		return nil, fmt.Errorf("phase 3 (derive) failed: %w", err)
	}
	if o.metrics != nil {
		o.metrics.StepsExecuted.Add(float64(len(engine.Steps())))
	}
	o.log("derived %d columns in %d steps", frame.NumColumns()-before, len(engine.Steps()))

	// Phase 4: Stats
	o.log("phase 4: computing summary statistics")
	statsEngine := stats.New(o.cfg.StatsStartDate.Time, o.cfg.ChangeMetrics, o.cfg.VolatilityWindows)
	if err := statsEngine.Run(frame); err != nil {
		return nil, fmt.Errorf("phase 4 (stats) failed: %w", err)
	}
	if o.metrics != nil {
		o.metrics.ColumnsComputed.Set(float64(frame.NumColumns()))
	}
	result.Rows = frame.Len()
	result.Columns = frame.NumColumns()

	if len(o.chartSpecs) > 0 {
		if err := charts.Validate(o.chartSpecs, frame); err != nil {
			return nil, fmt.Errorf("phase 4 (chart validation) failed: %w", err)
		}
	}

	// Phase 5: Cycles
	o.log("phase 5: segmenting cycles")
	cycleTables, err := o.runCycles(frame)
	if err != nil {
		return nil, fmt.Errorf("phase 5 (cycles) failed: %w", err)
	}
	for _, t := range cycleTables {
		result.CyclePoints += len(t.Points)
		result.SkippedEras = append(result.SkippedEras, t.Skipped...)
	}
	o.log("segmented %d cycle points (%d eras skipped)",
		result.CyclePoints, len(result.SkippedEras))

	// Phase 6: Save
	o.log("phase 6: saving report")
	report := &storage.Report{
		GeneratedAt: o.now().UTC(),
		Frame:       frame,
		Cycles:      cycleTables,
	}
	if err := o.reportStore.Save(ctx, report); err != nil {
		return nil, fmt.Errorf("phase 6 (save report) failed: %w", err)
	}

	o.log("pipeline completed: %d sources, %d rows, %d columns, %d cycle points",
		result.SourcesLoaded, result.Rows, result.Columns, result.CyclePoints)

	return result, nil
}

// runCycles segments all three era families.
func (o *Orchestrator) runCycles(frame *domain.Frame) (map[cycles.Family]*cycles.Table, error) {
	engine := cycles.New(domain.ColPriceUSD)

	drawdowns, err := engine.Drawdowns(frame, o.cfg.DrawdownEras)
	if err != nil {
		return nil, err
	}
	lows, err := engine.CycleLows(frame, o.cfg.CycleLowEras)
	if err != nil {
		return nil, err
	}
	halvings, err := engine.Halvings(frame, o.cfg.HalvingEras)
	if err != nil {
		return nil, err
	}

	tables := map[cycles.Family]*cycles.Table{
		cycles.FamilyDrawdown: drawdowns,
		cycles.FamilyCycleLow: lows,
		cycles.FamilyHalving:  halvings,
	}
	if o.metrics != nil {
		for fam, t := range tables {
			eras := map[string]bool{}
			for _, p := range t.Points {
				eras[p.Era] = true
			}
			o.metrics.ErasSegmented.WithLabelValues(string(fam)).Add(float64(len(eras)))
			o.metrics.ErasSkipped.WithLabelValues(string(fam)).Add(float64(len(t.Skipped)))
		}
	}
	return tables, nil
}

func (o *Orchestrator) log(format string, args ...interface{}) {
	if o.verbose {
		log.Info().Msgf("[orchestrator] "+format, args...)
	}
}
