// Package main provides the unified dashboard service:
// - Pipeline (scheduled): fetch → merge → derive → stats → cycles
// - Reporting (after each pipeline run): CSV, Markdown and chart artifacts
// - HTTP: artifacts, status, health and Prometheus metrics
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bitcoin-metrics-lab/internal/charts"
	"bitcoin-metrics-lab/internal/dataset"
	"bitcoin-metrics-lab/internal/fetch"
	"bitcoin-metrics-lab/internal/observability"
	"bitcoin-metrics-lab/internal/orchestrator"
	"bitcoin-metrics-lab/internal/reporting"
	"bitcoin-metrics-lab/internal/storage/memory"
)

// Server holds all components of the unified service.
type Server struct {
	cfg              *dataset.Config
	outputDir        string
	pipelineInterval time.Duration
	metrics          *observability.Metrics
	client           *fetch.Client

	// State
	mu              sync.Mutex
	startedAt       time.Time
	lastPipelineRun time.Time
	lastError       string
	pipelineRunning bool
	pipelineRuns    int
}

func main() {
	configPath := flag.String("config", "", "Path to YAML config (empty uses embedded defaults)")
	outputDir := flag.String("output-dir", "docs", "Output directory for generated artifacts")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	pipelineInterval := flag.Duration("pipeline-interval", 6*time.Hour, "Pipeline run interval")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg := dataset.Default()
	if *configPath != "" {
		var err error
		cfg, err = dataset.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
	}

	server := &Server{
		cfg:              cfg,
		outputDir:        *outputDir,
		pipelineInterval: *pipelineInterval,
		metrics:          observability.NewMetrics(""),
		client:           fetch.NewClient(),
		startedAt:        time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("initiating graceful shutdown")
		cancel()
	}()

	httpServer := &http.Server{Addr: *addr, Handler: server.routes()}
	go func() {
		log.Info().Str("addr", *addr).Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
			cancel()
		}
	}()

	server.runScheduler(ctx)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	log.Info().Msg("shutdown complete")
}

// runScheduler runs the pipeline immediately on start, then on a ticker.
func (s *Server) runScheduler(ctx context.Context) {
	log.Info().Dur("interval", s.pipelineInterval).Msg("starting pipeline scheduler")

	s.runPipeline(ctx)

	ticker := time.NewTicker(s.pipelineInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPipeline(ctx)
		}
	}
}

// runPipeline executes one fetch-to-artifacts cycle.
func (s *Server) runPipeline(ctx context.Context) {
	s.mu.Lock()
	if s.pipelineRunning {
		s.mu.Unlock()
		log.Warn().Msg("pipeline already running, skipping")
		return
	}
	s.pipelineRunning = true
	s.mu.Unlock()

	var runErr error
	defer func() {
		s.mu.Lock()
		s.pipelineRunning = false
		s.lastPipelineRun = time.Now()
		s.pipelineRuns++
		s.lastError = ""
		if runErr != nil {
			s.lastError = runErr.Error()
		}
		s.mu.Unlock()
	}()

	log.Info().Msg("running pipeline")
	start := time.Now()

	sourceStore := memory.NewSourceStore()
	reportStore := memory.NewReportStore()

	if runErr = s.fetchSources(ctx, sourceStore); runErr != nil {
		log.Error().Err(runErr).Msg("fetch error")
		return
	}

	orch := orchestrator.New(orchestrator.Options{
		SourceStore: sourceStore,
		ReportStore: reportStore,
		Config:      s.cfg,
		ChartSpecs:  charts.Catalog(),
		Metrics:     s.metrics,
	})
	result, err := orch.Run(ctx)
	if err != nil {
		runErr = err
		log.Error().Err(err).Msg("pipeline error")
		return
	}

	bundle, err := reporting.NewGenerator(reportStore, charts.Catalog()).Generate(ctx)
	if err != nil {
		runErr = err
		log.Error().Err(err).Msg("reporting error")
		return
	}
	if err := reporting.WriteDir(bundle, s.outputDir); err != nil {
		runErr = err
		log.Error().Err(err).Msg("write error")
		return
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("rows", result.Rows).
		Int("columns", result.Columns).
		Int("cycle_points", result.CyclePoints).
		Msg("pipeline completed")
}

// fetchSources downloads all raw tables into the source store.
func (s *Server) fetchSources(ctx context.Context, store *memory.SourceStore) error {
	cm, err := s.client.FetchCoinMetrics(ctx, "")
	if err != nil {
		s.metrics.FetchErrors.WithLabelValues(fetch.SourceCoinMetrics).Inc()
		return fmt.Errorf("fetch coinmetrics: %w", err)
	}
	s.metrics.SourcesFetched.WithLabelValues(fetch.SourceCoinMetrics).Inc()
	s.metrics.BytesDownloaded.Add(float64(cm.Bytes))
	if err := store.Put(ctx, cm.Table); err != nil {
		return err
	}

	md, err := s.client.FetchDailyCloses(ctx, s.cfg, nil)
	if err != nil {
		s.metrics.FetchErrors.WithLabelValues(fetch.SourceMarketData).Inc()
		return fmt.Errorf("fetch market data: %w", err)
	}
	s.metrics.SourcesFetched.WithLabelValues(fetch.SourceMarketData).Inc()
	s.metrics.BytesDownloaded.Add(float64(md.Bytes))
	if err := store.Put(ctx, md.Table); err != nil {
		return err
	}

	return store.Put(ctx, fetch.MarketCapTable(s.cfg, s.cfg.StartDate.Time))
}

// routes builds the HTTP handler.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", observability.Handler())
	mux.HandleFunc("/status", s.handleStatus)
	mux.Handle("/reports/", http.StripPrefix("/reports/", http.FileServer(http.Dir(s.outputDir))))

	return mux
}

// StatusResponse is the JSON response for /status.
type StatusResponse struct {
	Status          string    `json:"status"`
	Uptime          string    `json:"uptime"`
	LastPipelineRun time.Time `json:"last_pipeline_run,omitempty"`
	PipelineRuns    int       `json:"pipeline_runs"`
	PipelineRunning bool      `json:"pipeline_running"`
	LastError       string    `json:"last_error,omitempty"`
}

// handleStatus returns server status as JSON.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := StatusResponse{
		Status:          "running",
		Uptime:          time.Since(s.startedAt).String(),
		LastPipelineRun: s.lastPipelineRun,
		PipelineRuns:    s.pipelineRuns,
		PipelineRunning: s.pipelineRunning,
		LastError:       s.lastError,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
