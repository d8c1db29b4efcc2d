/*
validate.go - Pre-calculation data validation

PURPOSE:
  Checks the loaded dataset before any pay is computed. Two severities:

  FATAL (returns an error, run aborts):
    - any of employees, rates, payments, tax classes, calendar is empty
    - a payment's calculation period has no calendar rows

  WARNING (logged, run continues):
    - a calculation period with zero working days
    - duplicate employee IDs
    - an employee missing name, tax class, or rate
    - an employee referencing an unknown tax class
    - an overtime entry for an unknown employee or without a date

  Soft problems do not abort the run but make the affected employee
  ineligible downstream (no rate means no result).

SEE ALSO:
  - engine.go: runs only after validation passes
*/
package payroll

import "github.com/sirupsen/logrus"

// Validator checks dataset completeness and consistency.
type Validator struct {
	Log logrus.FieldLogger
}

func NewValidator(log logrus.FieldLogger) *Validator {
	return &Validator{Log: log}
}

// Validate returns a fatal error when foundational data is missing and
// logs warnings for everything recoverable.
func (v *Validator) Validate(ds Dataset) error {
	v.Log.Info("starting data validation")

	if len(ds.Employees) == 0 {
		return &MissingDatasetError{Dataset: "employee"}
	}
	if len(ds.Rates) == 0 {
		return &MissingDatasetError{Dataset: "rate"}
	}
	if len(ds.Payments) == 0 {
		return &MissingDatasetError{Dataset: "payment"}
	}
	if len(ds.TaxClasses) == 0 {
		return &MissingDatasetError{Dataset: "tax class"}
	}
	if len(ds.Calendar) == 0 {
		return &MissingDatasetError{Dataset: "calendar"}
	}

	calendar := NewCalendarIndex(ds.Calendar)
	for _, payment := range ds.Payments {
		period := payment.CalculationPeriod()
		working, err := calendar.WorkingDays(period)
		if err != nil {
			return err
		}
		if working == 0 {
			v.Log.WithField("period", period.String()).
				Warn("no working days in calculation period")
		}
	}

	employees := make(map[EmployeeID]bool, len(ds.Employees))
	for _, emp := range ds.Employees {
		if employees[emp.ID] {
			v.Log.WithField("employee", emp.ID).Warn("duplicate employee ID")
		}
		employees[emp.ID] = true
	}

	rates := make(map[EmployeeID]bool, len(ds.Rates))
	for _, rate := range ds.Rates {
		rates[rate.EmployeeID] = true
	}
	taxClasses := make(map[string]bool, len(ds.TaxClasses))
	for _, class := range ds.TaxClasses {
		taxClasses[class.Code] = true
	}

	for _, emp := range ds.Employees {
		log := v.Log.WithField("employee", emp.ID)

		if emp.FullName == "" {
			log.Warn("employee has no name")
		}
		if emp.TaxClass == "" {
			log.Warn("employee has no tax class")
		} else if !taxClasses[emp.TaxClass] {
			log.WithField("taxClass", emp.TaxClass).Warn("unknown tax class")
		}
		if !rates[emp.ID] {
			log.Warn("no rate found for employee")
		}
	}

	for _, entry := range ds.Overtimes {
		log := v.Log.WithField("employee", entry.EmployeeID)
		if !employees[entry.EmployeeID] {
			log.Warn("overtime entry for unknown employee")
		}
		if entry.Date.IsZero() {
			log.Warn("overtime entry has no date")
		}
	}

	v.Log.Info("data validation completed")
	return nil
}
