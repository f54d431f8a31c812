package memory

import (
	"context"
	"sync"

	"bitcoin-metrics-lab/internal/cycles"
	"bitcoin-metrics-lab/internal/storage"
)

// ReportStore is an in-memory implementation of storage.ReportStore.
type ReportStore struct {
	mu     sync.RWMutex
	report *storage.Report
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Save replaces the stored report.
func (s *ReportStore) Save(_ context.Context, r *storage.Report) error {
	if r == nil || r.Frame == nil {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = copyReport(r)
	return nil
}

// Latest retrieves the stored report. Returns ErrNotFound before the
// first completed run.
func (s *ReportStore) Latest(_ context.Context) (*storage.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return nil, storage.ErrNotFound
	}
	return copyReport(s.report), nil
}

func copyReport(r *storage.Report) *storage.Report {
	c := &storage.Report{
		GeneratedAt: r.GeneratedAt,
		Frame:       r.Frame.Clone(),
		Cycles:      make(map[cycles.Family]*cycles.Table, len(r.Cycles)),
	}
	for fam, t := range r.Cycles {
		tc := &cycles.Table{Family: t.Family}
		tc.Points = append(tc.Points, t.Points...)
		tc.Skipped = append(tc.Skipped, t.Skipped...)
		c.Cycles[fam] = tc
	}
	return c
}
