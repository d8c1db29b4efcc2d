package store

import (
	"context"
	"sort"
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	runs    map[string]RunRecord
	results map[string][]payroll.PaymentResult
}

func NewMemory() *Memory {
	return &Memory{
		runs:    make(map[string]RunRecord),
		results: make(map[string][]payroll.PaymentResult),
	}
}

func (m *Memory) SaveRun(_ context.Context, rec RunRecord, results []payroll.PaymentResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[rec.ID] = rec
	copied := make([]payroll.PaymentResult, len(results))
	copy(copied, results)
	m.results[rec.ID] = copied
	return nil
}

func (m *Memory) ListRuns(_ context.Context) ([]RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]RunRecord, 0, len(m.runs))
	for _, rec := range m.runs {
		runs = append(runs, rec)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}

func (m *Memory) GetRun(_ context.Context, id string) (*RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return &rec, nil
}

func (m *Memory) Results(_ context.Context, runID string) ([]payroll.PaymentResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.runs[runID]; !ok {
		return nil, ErrRunNotFound
	}
	results := make([]payroll.PaymentResult, len(m.results[runID]))
	copy(results, m.results[runID])
	return results, nil
}
