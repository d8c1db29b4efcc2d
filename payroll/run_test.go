package payroll_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

// stubSource serves a fixed dataset.
type stubSource struct {
	ds payroll.Dataset
}

func (s *stubSource) Employees() ([]payroll.Employee, error)   { return s.ds.Employees, nil }
func (s *stubSource) Rates() ([]payroll.Rate, error)           { return s.ds.Rates, nil }
func (s *stubSource) Payments() ([]payroll.Payment, error)     { return s.ds.Payments, nil }
func (s *stubSource) Overtimes() ([]payroll.Overtime, error)   { return s.ds.Overtimes, nil }
func (s *stubSource) TaxClasses() ([]payroll.TaxClass, error)  { return s.ds.TaxClasses, nil }
func (s *stubSource) Calendar() ([]payroll.CalendarDay, error) { return s.ds.Calendar, nil }

// captureSink records what the runner saved.
type captureSink struct {
	saved []payroll.PaymentResult
	calls int
}

func (c *captureSink) Save(_ context.Context, results []payroll.PaymentResult) error {
	c.saved = results
	c.calls++
	return nil
}

func TestRunner_EndToEnd(t *testing.T) {
	sink := &captureSink{}
	runner := payroll.NewRunner(&stubSource{ds: baseDataset()}, []payroll.Sink{sink}, testLog())

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.False(t, report.CompletedAt.Before(report.StartedAt))
	require.Len(t, report.Results, 1)
	assert.Equal(t, baseDataset().Employees, report.Employees,
		"report carries the roster for downstream renderers")
	assert.Equal(t, 1, sink.calls)
	assert.Equal(t, report.Results, sink.saved)
}

func TestRunner_ValidationFailureReachesNoSink(t *testing.T) {
	ds := baseDataset()
	ds.Rates = nil

	sink := &captureSink{}
	runner := payroll.NewRunner(&stubSource{ds: ds}, []payroll.Sink{sink}, testLog())

	_, err := runner.Run(context.Background())
	require.Error(t, err)
	assert.True(t, payroll.IsFatal(err))
	assert.Zero(t, sink.calls, "sinks must not see results of an aborted run")
}
