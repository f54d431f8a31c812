// Package main provides the source download entry point. It fetches the
// raw tables once and writes them as CSVs, so pipeline runs can work
// offline against a stable snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/domain"
	"bitcoin-metrics-lab/internal/fetch"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (empty uses embedded defaults)")
	dataDir := flag.String("data-dir", "data", "Output directory for raw source CSVs")
	timeout := flag.Duration("timeout", 10*time.Minute, "Overall fetch timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling fetch...\n", sig)
		cancel()
	}()

	cfg := dataset.Default()
	if *configPath != "" {
		var err error
		cfg, err = dataset.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data dir: %v\n", err)
		os.Exit(1)
	}

	client := fetch.NewClient()

	fmt.Println("Fetching CoinMetrics community CSV...")
	cm, err := client.FetchCoinMetrics(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "CoinMetrics fetch error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %d rows, %d columns, %d bytes\n", len(cm.Table.Dates), len(cm.Table.ColumnOrder), cm.Bytes)

	fmt.Println("Fetching daily closes...")
	md, err := client.FetchDailyCloses(ctx, cfg, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Market data fetch error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  %d rows, %d tickers, %d bytes\n", len(md.Table.Dates), len(md.Table.ColumnOrder), md.Bytes)
	if len(md.Failed) > 0 {
		fmt.Printf("  Failed tickers (skipped): %s\n", strings.Join(md.Failed, ", "))
	}

	tables := []*domain.RawTable{
		cm.Table,
		md.Table,
		fetch.MarketCapTable(cfg, cfg.StartDate.Time),
	}
	for _, t := range tables {
		path := filepath.Join(*dataDir, t.Name+".csv")
		if err := os.WriteFile(path, []byte(renderTable(t)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}

// renderTable serializes a raw table in the same "time,..." layout the
// parser reads back.
func renderTable(t *domain.RawTable) string {
	var sb strings.Builder
	sb.WriteString("time")
	for _, c := range t.ColumnOrder {
		sb.WriteByte(',')
		sb.WriteString(c)
	}
	sb.WriteByte('\n')

	for i, d := range t.Dates {
		sb.WriteString(d.Format("2006-01-02"))
		for _, c := range t.ColumnOrder {
			sb.WriteByte(',')
			vals := t.Columns[c]
			if i < len(vals) && !math.IsNaN(vals[i]) {
				sb.WriteString(strconv.FormatFloat(vals[i], 'g', -1, 64))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
