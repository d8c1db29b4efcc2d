/*
Package payroll provides the core payroll calculation engine.

PURPOSE:
  This package contains the domain model and algorithms for turning a
  static snapshot of payroll input data (employees, rates, overtime logs,
  tax classes, calendar days, payment events) into a list of payment
  results. It is a deterministic batch transform: same inputs, same
  outputs, every time.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: roster entry with status and optional days-worked override
  - Rate: monthly rate and overtime hourly rate, keyed by employee
  - TaxClass: a deduction factor in [0,1], shared across employees
  - Overtime: a single logged overtime entry
  - Payment: a payment event defining which month gets paid out
  - PaymentResult: one output row per eligible employee per payment

DESIGN PRINCIPLES:
  1. Immutability: entities are loaded once per run and never mutated
  2. Precision: uses decimal.Decimal for all money, never float64
  3. Explicit optionality: "worked the full month" is a nil pointer,
     not a magic -1

SEE ALSO:
  - calendar.go: working-day counts per period
  - basepay.go: days ratio and tax factor
  - engine.go: the calculation loop
*/
package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string

// =============================================================================
// INPUT ENTITIES
// =============================================================================

// Employee is a roster entry. DaysWorked is nil when the employee worked
// the full calculation period.
type Employee struct {
	ID         EmployeeID
	FullName   string
	Location   string
	TaxClass   string
	ATLevel    string
	Status     string
	DaysWorked *int
	Phone      string
	Birthday   string
}

// IsActive reports whether the employee is eligible for payment at all.
// Status matching is case-insensitive.
func (e Employee) IsActive() bool {
	return strings.EqualFold(e.Status, "ACTIVE")
}

func (e Employee) String() string {
	return fmt.Sprintf("Employee{%s, %q, %s}", e.ID, e.FullName, e.Status)
}

// Rate holds the pay rates for one employee. One rate per employee; on
// duplicate input rows the last occurrence wins.
type Rate struct {
	EmployeeID   EmployeeID
	Monthly      decimal.Decimal
	OvertimeRate decimal.Decimal
}

// TaxClass maps a tax-class code to its deduction factor in [0,1].
// Factor is the deduction rate: net pay factor is (1 - Factor).
type TaxClass struct {
	Code   string
	Factor decimal.Decimal
}

// Overtime is a single overtime log entry. Entries are aggregated per
// employee per (year, month) of Date.
type Overtime struct {
	EmployeeID EmployeeID
	Hours      int
	Date       Date
}

// Date is a plain calendar date. The zero value means "no date".
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Period() PeriodKey { return PeriodKey{Year: d.Year, Month: d.Month} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Payment defines a payment event. The pay computed for it covers the
// *previous* calendar month (the calculation period), not the payment
// month itself.
type Payment struct {
	Month      int
	Year       int
	PaymentDay int
}

// CalculationPeriod returns the month this payment pays out for.
func (p Payment) CalculationPeriod() PeriodKey {
	return PeriodKey{Year: p.Year, Month: p.Month}.Previous()
}

// DateString formats the payment date for the output file (M.D.YYYY).
func (p Payment) DateString() string {
	return fmt.Sprintf("%d.%d.%d", p.Month, p.PaymentDay, p.Year)
}

// =============================================================================
// OUTPUT ENTITIES
// =============================================================================

// Currency is the settlement currency for all results.
const Currency = "EUR"

// Breakdown is the base/overtime/deduction split behind a total pay.
type Breakdown struct {
	Base      decimal.Decimal
	Overtime  decimal.Decimal
	Deduction decimal.Decimal
}

// PaymentResult is one output row: what one employee gets paid for one
// payment event.
type PaymentResult struct {
	EmployeeID        EmployeeID
	Pay               decimal.Decimal
	Date              string
	SettlementAccount string
	Currency          string
	Breakdown         Breakdown
}

func (r PaymentResult) String() string {
	return fmt.Sprintf("PaymentResult{%s, %s %s, %s}",
		r.EmployeeID, r.Pay.StringFixed(2), r.Currency, r.Date)
}

// =============================================================================
// DATASET - everything one run operates on
// =============================================================================

// Dataset is the full input snapshot for a single run.
type Dataset struct {
	Employees  []Employee
	Rates      []Rate
	Payments   []Payment
	Overtimes  []Overtime
	TaxClasses []TaxClass
	Calendar   []CalendarDay
}
