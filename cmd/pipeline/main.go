// Package main provides the report pipeline entry point.
// Executes: fetch/load sources → merge → derive → stats → cycles → report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/fetch"
	"bitcoin-metrics-lab/internal/observability"
	"bitcoin-metrics-lab/internal/orchestrator"
	"bitcoin-metrics-lab/internal/reporting"
	"bitcoin-metrics-lab/internal/storage"
	"bitcoin-metrics-lab/internal/storage/memory"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (empty uses embedded defaults)")
	dataDir := flag.String("data-dir", "", "Directory of raw source CSVs (empty fetches live)")
	outputDir := flag.String("output-dir", "docs", "Output directory for generated artifacts")
	timeout := flag.Duration("timeout", 10*time.Minute, "Overall run timeout")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling pipeline...\n", sig)
		cancel()
	}()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	metrics := observability.NewMetrics("")
	sourceStore := memory.NewSourceStore()
	reportStore := memory.NewReportStore()

	fmt.Println("=== Bitcoin Metrics Pipeline ===")
	if err := loadSources(ctx, sourceStore, cfg, *dataDir, metrics); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sources: %v\n", err)
		os.Exit(1)
	}

	orch := orchestrator.New(orchestrator.Options{
		SourceStore: sourceStore,
		ReportStore: reportStore,
		Config:      cfg,
		ChartSpecs:  charts.Catalog(),
		Metrics:     metrics,
		Verbose:     *verbose,
	})

	result, err := orch.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Orchestrator error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Pipeline completed in %s:\n", result.Duration.Round(time.Millisecond))
	fmt.Printf("  Sources: %d\n", result.SourcesLoaded)
	fmt.Printf("  Frame: %d rows x %d columns\n", result.Rows, result.Columns)
	fmt.Printf("  Cycle points: %d\n", result.CyclePoints)
	if len(result.SkippedEras) > 0 {
		fmt.Printf("  Skipped eras: %d\n", len(result.SkippedEras))
		for _, era := range result.SkippedEras {
			fmt.Printf("    - %s\n", era)
		}
	}

	fmt.Println("\n=== Reporting ===")
	generator := reporting.NewGenerator(reportStore, charts.Catalog())
	bundle, err := generator.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Reporting error: %v\n", err)
		os.Exit(1)
	}
	if err := reporting.WriteDir(bundle, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Artifacts written:")
	fmt.Printf("  - %s/report_data.csv\n", *outputDir)
	fmt.Printf("  - %s/columns.txt\n", *outputDir)
	fmt.Printf("  - %s/summary.md\n", *outputDir)
	fmt.Printf("  - %s/charts.json\n", *outputDir)
	for fam := range bundle.CycleCSVs {
		fmt.Printf("  - %s/cycles_%s.csv\n", *outputDir, fam)
	}
}

// loadConfig loads the YAML config or falls back to the embedded defaults.
func loadConfig(path string) (*dataset.Config, error) {
	if path == "" {
		return dataset.Default(), nil
	}
	return dataset.Load(path)
}

// loadSources fills the source store, either from a directory of raw
// CSVs or from the live endpoints.
func loadSources(ctx context.Context, store storage.SourceStore, cfg *dataset.Config, dataDir string, metrics *observability.Metrics) error {
	if dataDir != "" {
		return loadSourcesFromDir(ctx, store, dataDir)
	}

	client := fetch.NewClient()

	cm, err := client.FetchCoinMetrics(ctx, "")
	if err != nil {
		metrics.FetchErrors.WithLabelValues(fetch.SourceCoinMetrics).Inc()
		return fmt.Errorf("fetch coinmetrics: %w", err)
	}
	metrics.SourcesFetched.WithLabelValues(fetch.SourceCoinMetrics).Inc()
	metrics.BytesDownloaded.Add(float64(cm.Bytes))
	if err := store.Put(ctx, cm.Table); err != nil {
		return err
	}

	md, err := client.FetchDailyCloses(ctx, cfg, nil)
	if err != nil {
		metrics.FetchErrors.WithLabelValues(fetch.SourceMarketData).Inc()
		return fmt.Errorf("fetch market data: %w", err)
	}
	metrics.SourcesFetched.WithLabelValues(fetch.SourceMarketData).Inc()
	metrics.BytesDownloaded.Add(float64(md.Bytes))
	if len(md.Failed) > 0 {
		fmt.Printf("  %d tickers failed and were skipped\n", len(md.Failed))
	}
	if err := store.Put(ctx, md.Table); err != nil {
		return err
	}

	return store.Put(ctx, fetch.MarketCapTable(cfg, cfg.StartDate.Time))
}

// loadSourcesFromDir loads every CSV in dir as one raw table, named after
// the file.
func loadSourcesFromDir(ctx context.Context, store storage.SourceStore, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no CSV files in %s", dir)
	}
	for _, path := range paths {
		name := filepath.Base(path)
		name = name[:len(name)-len(filepath.Ext(name))]
		t, err := fetch.LoadCSVFile(name, path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if err := store.Put(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
