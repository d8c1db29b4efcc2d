// Package store defines run/result persistence used by the API and CLI.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// RunRecord describes one persisted payroll run.
type RunRecord struct {
	ID          string
	StartedAt   time.Time
	CompletedAt time.Time
	ResultCount int
}

// RunStore persists completed runs with their ordered results.
type RunStore interface {
	// SaveRun stores a run and its results. Result order is preserved.
	SaveRun(ctx context.Context, rec RunRecord, results []payroll.PaymentResult) error

	// ListRuns returns all runs, most recent first.
	ListRuns(ctx context.Context) ([]RunRecord, error)

	// GetRun returns one run, ErrRunNotFound when absent.
	GetRun(ctx context.Context, id string) (*RunRecord, error)

	// Results returns a run's results in emission order.
	Results(ctx context.Context, runID string) ([]payroll.PaymentResult, error)
}
