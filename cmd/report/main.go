// Package main regenerates report artifacts from a previously exported
// frame CSV, without refetching or rederiving anything.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/fetch"
	"bitcoin-metrics-lab/internal/reporting"
	"bitcoin-metrics-lab/internal/storage"
	"bitcoin-metrics-lab/internal/storage/memory"
)

func main() {
	inputCSV := flag.String("input", "docs/report_data.csv", "Exported frame CSV to rebuild from")
	configPath := flag.String("config", "", "Path to YAML config (empty uses embedded defaults)")
	outputDir := flag.String("output-dir", "docs", "Output directory for regenerated artifacts")
	flag.Parse()

	ctx := context.Background()

	cfg := dataset.Default()
	if *configPath != "" {
		var err error
		cfg, err = dataset.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	table, err := fetch.LoadCSVFile("report_data", *inputCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *inputCSV, err)
		os.Exit(1)
	}

	frame, err := rebuildFrame(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebuilding frame: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded frame: %d rows x %d columns\n", frame.Len(), frame.NumColumns())

	cycleTables, err := segment(frame, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error segmenting cycles: %v\n", err)
		os.Exit(1)
	}

	reportStore := memory.NewReportStore()
	report := &storage.Report{
		GeneratedAt: time.Now().UTC(),
		Frame:       frame,
		Cycles:      cycleTables,
	}
	if err := reportStore.Save(ctx, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving report: %v\n", err)
		os.Exit(1)
	}

	bundle, err := reporting.NewGenerator(reportStore, charts.Catalog()).Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reporting error: %v\n", err)
		os.Exit(1)
	}
	if err := reporting.WriteDir(bundle, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Artifacts regenerated in %s\n", *outputDir)
}

// rebuildFrame turns an exported raw table back into a frame on its own
// date index, with no forward-filling or index extension.
func rebuildFrame(t *domain.RawTable) (*domain.Frame, error) {
	frame, err := domain.NewFrame(t.Dates)
	if err != nil {
		return nil, err
	}
	for _, name := range t.ColumnOrder {
		if err := frame.Set(name, t.Columns[name]); err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
	}
	return frame, nil
}

func segment(frame *domain.Frame, cfg *dataset.Config) (map[cycles.Family]*cycles.Table, error) {
	engine := cycles.New(domain.ColPriceUSD)
	drawdowns, err := engine.Drawdowns(frame, cfg.DrawdownEras)
	if err != nil {
		return nil, err
	}
	lows, err := engine.CycleLows(frame, cfg.CycleLowEras)
	if err != nil {
		return nil, err
	}
	halvings, err := engine.Halvings(frame, cfg.HalvingEras)
	if err != nil {
		return nil, err
	}
	return map[cycles.Family]*cycles.Table{
		cycles.FamilyDrawdown: drawdowns,
		cycles.FamilyCycleLow: lows,
		cycles.FamilyHalving:  halvings,
	}, nil
}
