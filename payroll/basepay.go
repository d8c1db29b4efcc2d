/*
basepay.go - Days ratio, tax factor, and base pay

PURPOSE:
  Computes the monthly base pay for one employee for one calculation
  period:

    gross    = daysRatio x rate.Monthly
    basePay  = gross x (1 - taxFactor)
    deducted = gross x taxFactor

TAX SEMANTICS:
  TaxClass.Factor is the deduction rate. An employee with factor 0.2 on a
  5000 rate nets 4000. When the employee's tax class cannot be resolved
  the deduction defaults to zero: the employee is paid in full and the
  validator has already logged the reference-data gap.

DAYS RATIO:
  ratio = daysWorked / workingDaysInPeriod. A nil days-worked override
  means full attendance (ratio 1.0) regardless of the working-day count.
  A period with zero working days cannot produce a ratio; the employee
  gets a ZeroWorkingDaysError and is skipped by the engine.

SEE ALSO:
  - calendar.go: working-day counts
  - engine.go: assembles base + overtime into totals
*/
package payroll

import "github.com/shopspring/decimal"

// DaysRatio returns attendance as a fraction of the period's working
// days. Full attendance (nil override) is exactly 1.0 and never touches
// the divisor; an override above the working-day count yields a ratio
// above 1.
func DaysRatio(emp Employee, calendar *CalendarIndex, period PeriodKey) (decimal.Decimal, error) {
	if emp.DaysWorked == nil {
		return decimal.NewFromInt(1), nil
	}

	total, err := calendar.WorkingDays(period)
	if err != nil {
		return decimal.Zero, err
	}
	if total == 0 {
		return decimal.Zero, &ZeroWorkingDaysError{Period: period}
	}

	return decimal.NewFromInt(int64(*emp.DaysWorked)).
		Div(decimal.NewFromInt(int64(total))), nil
}

// TaxFactor returns the deduction rate for a tax class, 0 when the class
// is unknown.
func TaxFactor(class *TaxClass) decimal.Decimal {
	if class == nil {
		return decimal.Zero
	}
	return class.Factor
}

// BasePay computes the net-of-tax base pay and the deducted amount for
// one employee in one period.
func BasePay(emp Employee, rate Rate, class *TaxClass, calendar *CalendarIndex, period PeriodKey) (base, deducted decimal.Decimal, err error) {
	ratio, err := DaysRatio(emp, calendar, period)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	factor := TaxFactor(class)
	gross := ratio.Mul(rate.Monthly)
	deducted = gross.Mul(factor)
	base = gross.Sub(deducted)
	return base, deducted, nil
}
