/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All error types in one place for consistency and discoverability.

ERROR CATEGORIES:
  1. Data-completeness errors - a required dataset is empty or a payment
     period has no calendar rows. Fatal: the run aborts before (or as
     soon as) calculation touches them.
  2. Computation errors - a problem confined to one employee in one
     period (e.g. zero working days). Recoverable: the employee is
     skipped, the run continues.

  Per-row parse problems never surface as errors at all; the loader logs
  and skips them.

USAGE:
  if errors.Is(err, payroll.ErrDataIncomplete) {
      // abort the run
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrDataIncomplete is the root of all fatal data-completeness errors.
	ErrDataIncomplete = errors.New("required payroll data missing")

	// ErrNoWorkingDays is returned when a covered period has zero working
	// days, making the days ratio undefined. Recoverable per employee.
	ErrNoWorkingDays = errors.New("no working days in period")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MissingDatasetError reports an empty required input dataset.
type MissingDatasetError struct {
	Dataset string
}

func (e *MissingDatasetError) Error() string {
	return fmt.Sprintf("%s data is missing", e.Dataset)
}

func (e *MissingDatasetError) Unwrap() error { return ErrDataIncomplete }

// MissingCalendarError reports a calculation period with no calendar rows.
type MissingCalendarError struct {
	Period PeriodKey
}

func (e *MissingCalendarError) Error() string {
	return fmt.Sprintf("no calendar data for period %s", e.Period)
}

func (e *MissingCalendarError) Unwrap() error { return ErrDataIncomplete }

// ZeroWorkingDaysError reports a period where the days ratio cannot be
// computed because the divisor is zero.
type ZeroWorkingDaysError struct {
	Period PeriodKey
}

func (e *ZeroWorkingDaysError) Error() string {
	return fmt.Sprintf("period %s has no working days", e.Period)
}

func (e *ZeroWorkingDaysError) Unwrap() error { return ErrNoWorkingDays }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsFatal returns true if the error must abort the whole run rather than
// skip a single employee.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDataIncomplete)
}
