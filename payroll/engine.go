/*
engine.go - The payroll calculation loop

PURPOSE:
  Walks the cross-product of payments x employees and emits one
  PaymentResult per eligible combination, in payment-then-employee input
  order.

ELIGIBILITY (all must hold, otherwise the employee is skipped silently
for that payment, with a debug/warn log):
  - status is ACTIVE (case-insensitive)
  - a rate exists for the employee
  - the full name matches letters/spaces/hyphens/slashes only

FAILURE SEMANTICS:
  - A missing calendar period is a data-completeness error and aborts
    the calculation (it would hit every employee anyway).
  - Any other error or panic while computing one employee is logged and
    skips only that employee/payment combination.

SEE ALSO:
  - basepay.go, overtime.go: the per-employee math
  - run.go: load -> validate -> calculate -> sink orchestration
*/
package payroll

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// SettlementAccountSentinel is emitted when no account code can be
// derived from the employee's name.
const SettlementAccountSentinel = "INVALID_ACCOUNT"

// namePattern accepts one or more letters, spaces, hyphens, or slashes.
var namePattern = regexp.MustCompile(`^[\p{L} /-]+$`)

// Engine computes payment results from a validated dataset.
type Engine struct {
	Log logrus.FieldLogger
}

func NewEngine(log logrus.FieldLogger) *Engine {
	return &Engine{Log: log}
}

// Calculate produces one result per eligible employee per payment.
// It returns an error only for fatal data-completeness problems; every
// per-employee problem is logged and skipped.
func (e *Engine) Calculate(ds Dataset) ([]PaymentResult, error) {
	e.Log.WithField("employees", len(ds.Employees)).
		Info("starting payroll calculation")

	rates := ratesByEmployee(ds.Rates)
	taxClasses := taxClassesByCode(ds.TaxClasses)
	calendar := NewCalendarIndex(ds.Calendar)
	overtime := AggregateOvertime(ds.Overtimes, e.Log)

	var results []PaymentResult
	for _, payment := range ds.Payments {
		period := payment.CalculationPeriod()
		e.Log.WithFields(logrus.Fields{
			"payment": payment.DateString(),
			"period":  period.String(),
		}).Info("processing payment")

		if !calendar.HasPeriod(period) {
			return nil, &MissingCalendarError{Period: period}
		}

		seen := make(map[EmployeeID]bool, len(ds.Employees))
		for _, emp := range ds.Employees {
			if seen[emp.ID] {
				e.Log.WithField("employee", emp.ID).
					Warn("duplicate employee ID, first occurrence wins")
				continue
			}
			seen[emp.ID] = true

			result, err := e.calculateOne(emp, rates, taxClasses, calendar, overtime, payment, period)
			if err != nil {
				if IsFatal(err) {
					return nil, err
				}
				e.Log.WithField("employee", emp.ID).WithError(err).
					Warn("skipping employee for this payment")
				continue
			}
			if result != nil {
				results = append(results, *result)
			}
		}
	}

	e.Log.WithField("results", len(results)).
		Info("payroll calculation completed")
	return results, nil
}

// calculateOne computes a single employee/payment combination. A nil
// result with nil error means the employee was ineligible. Panics are
// recovered into per-employee errors so one bad record never takes down
// the run.
func (e *Engine) calculateOne(
	emp Employee,
	rates map[EmployeeID]Rate,
	taxClasses map[string]*TaxClass,
	calendar *CalendarIndex,
	overtime OvertimeTotals,
	payment Payment,
	period PeriodKey,
) (result *PaymentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("employee computation panicked: %v", r)
		}
	}()

	if !emp.IsActive() {
		e.Log.WithField("employee", emp.ID).Debug("skipping inactive employee")
		return nil, nil
	}

	rate, ok := rates[emp.ID]
	if !ok {
		return nil, nil
	}

	class := taxClasses[emp.TaxClass]

	base, deducted, err := BasePay(emp, rate, class, calendar, period)
	if err != nil {
		return nil, err
	}

	hours := overtime.HoursFor(emp.ID, period)
	overtimePay := OvertimePay(rate, hours, e.Log)

	total := base.Add(overtimePay)

	if emp.FullName == "" || !namePattern.MatchString(emp.FullName) {
		e.Log.WithFields(logrus.Fields{
			"employee": emp.ID,
			"name":     emp.FullName,
		}).Info("employee has an invalid name")
		return nil, nil
	}

	return &PaymentResult{
		EmployeeID:        emp.ID,
		Pay:               total,
		Date:              payment.DateString(),
		SettlementAccount: settlementAccount(emp),
		Currency:          Currency,
		Breakdown: Breakdown{
			Base:      base,
			Overtime:  overtimePay,
			Deduction: deducted,
		},
	}, nil
}

// settlementAccount derives the deposit code: uppercase of the first
// four characters of the full name, or the sentinel when the name is too
// short to carry one.
func settlementAccount(emp Employee) string {
	name := []rune(emp.FullName)
	if len(name) < 4 {
		return SettlementAccountSentinel
	}
	return strings.ToUpper(string(name[:4]))
}

// ratesByEmployee indexes rates; a later row for the same employee
// overrides earlier ones.
func ratesByEmployee(rates []Rate) map[EmployeeID]Rate {
	m := make(map[EmployeeID]Rate, len(rates))
	for _, r := range rates {
		m[r.EmployeeID] = r
	}
	return m
}

// taxClassesByCode indexes tax classes, first occurrence wins.
func taxClassesByCode(classes []TaxClass) map[string]*TaxClass {
	m := make(map[string]*TaxClass, len(classes))
	for i := range classes {
		c := classes[i]
		if _, ok := m[c.Code]; !ok {
			m[c.Code] = &c
		}
	}
	return m
}
