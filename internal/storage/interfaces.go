// Package storage defines the store contracts between the pipeline
// phases. Implementations live in subpackages; the in-memory one is the
// only implementation shipped, since the pipeline rebuilds everything
// from scratch on each run and persists nothing between runs.
package storage

import (
	"context"
	"time"

	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/domain"
)

// Report is the complete output of one pipeline run: the widened metric
// frame plus the three cycle tables. Consumers treat it as read-only.
type Report struct {
	GeneratedAt time.Time
	Frame       *domain.Frame
	Cycles      map[cycles.Family]*cycles.Table
}

// SourceStore holds the raw fetched tables feeding the frame merger.
type SourceStore interface {
	// Put adds a raw table. Returns ErrDuplicateKey if a table with the
	// same name exists; sources are fetched once per run.
	Put(ctx context.Context, t *domain.RawTable) error

	// Get retrieves a table by name. Returns ErrNotFound if absent.
	Get(ctx context.Context, name string) (*domain.RawTable, error)

	// List returns all tables in insertion order.
	List(ctx context.Context) ([]*domain.RawTable, error)
}

// ReportStore holds the latest pipeline run output.
type ReportStore interface {
	// Save replaces the stored report. Each run overwrites the previous
	// one; reports are never persisted independently of a run.
	Save(ctx context.Context, r *Report) error

	// Latest retrieves the stored report. Returns ErrNotFound before the
	// first completed run.
	Latest(ctx context.Context) (*Report, error)
}
