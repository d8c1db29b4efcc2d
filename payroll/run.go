/*
run.go - One payroll run, end to end

PURPOSE:
  Orchestrates a single batch run: load everything from the Source,
  validate, calculate, hand the ordered results to every Sink. The run
  either completes (possibly with logged warnings for skipped rows and
  employees) or fails with one clear reason.

  The whole run is synchronous and single-threaded. There is nothing to
  cancel mid-flight; the context only travels to sinks that talk to
  external systems.

SEE ALSO:
  - csvdata/: the CSV-backed Source
  - sink/: CSV and Elasticsearch sinks
*/
package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Source yields the input datasets for a run. Implementations own file
// paths, delimiters, and row-level parse recovery; the engine only sees
// typed entities.
type Source interface {
	Employees() ([]Employee, error)
	Rates() ([]Rate, error)
	Payments() ([]Payment, error)
	Overtimes() ([]Overtime, error)
	TaxClasses() ([]TaxClass, error)
	Calendar() ([]CalendarDay, error)
}

// Sink persists the ordered results of a run.
type Sink interface {
	Save(ctx context.Context, results []PaymentResult) error
}

// =============================================================================
// RUNNER
// =============================================================================

// RunReport summarizes one completed run. Employees is the roster
// snapshot the run was computed from; downstream renderers resolve
// display names from it without re-reading the source.
type RunReport struct {
	ID          string
	StartedAt   time.Time
	CompletedAt time.Time
	Results     []PaymentResult
	Employees   []Employee
}

// Runner wires source, validator, engine, and sinks into one pipeline.
type Runner struct {
	Source    Source
	Validator *Validator
	Engine    *Engine
	Sinks     []Sink
	Log       logrus.FieldLogger
}

func NewRunner(source Source, sinks []Sink, log logrus.FieldLogger) *Runner {
	return &Runner{
		Source:    source,
		Validator: NewValidator(log),
		Engine:    NewEngine(log),
		Sinks:     sinks,
		Log:       log,
	}
}

// Run executes one full payroll run.
func (r *Runner) Run(ctx context.Context) (*RunReport, error) {
	report := &RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	log := r.Log.WithField("run", report.ID)
	log.Info("starting payroll run")

	ds, err := r.load()
	if err != nil {
		return nil, err
	}

	if err := r.Validator.Validate(ds); err != nil {
		log.WithError(err).Error("validation failed")
		return nil, err
	}

	results, err := r.Engine.Calculate(ds)
	if err != nil {
		log.WithError(err).Error("calculation failed")
		return nil, err
	}

	for _, sink := range r.Sinks {
		if err := sink.Save(ctx, results); err != nil {
			log.WithError(err).Error("saving results failed")
			return nil, err
		}
	}

	report.Results = results
	report.Employees = ds.Employees
	report.CompletedAt = time.Now().UTC()
	log.WithField("results", len(results)).Info("payroll run completed")
	return report, nil
}

func (r *Runner) load() (Dataset, error) {
	var ds Dataset
	var err error

	if ds.Employees, err = r.Source.Employees(); err != nil {
		return ds, err
	}
	if ds.Rates, err = r.Source.Rates(); err != nil {
		return ds, err
	}
	if ds.Payments, err = r.Source.Payments(); err != nil {
		return ds, err
	}
	if ds.Overtimes, err = r.Source.Overtimes(); err != nil {
		return ds, err
	}
	if ds.TaxClasses, err = r.Source.TaxClasses(); err != nil {
		return ds, err
	}
	if ds.Calendar, err = r.Source.Calendar(); err != nil {
		return ds, err
	}
	return ds, nil
}
