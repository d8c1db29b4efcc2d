/*
overtime.go - Overtime aggregation and overtime pay

PURPOSE:
  Reduces raw overtime log entries into per-employee per-month totals and
  prices them. Overtime is paid at time-and-a-half on the hourly overtime
  rate, capped at MaxOvertimeHours per period.

AGGREGATION KEY:
  The period key comes from the overtime entry's own date, NOT from the
  payment period. An entry logged on 2025-03-14 always lands in "2025-3"
  no matter which payment later reads it.

SEE ALSO:
  - engine.go: looks up hours for each (employee, calculation period)
*/
package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MaxOvertimeHours caps payable overtime per employee per period.
const MaxOvertimeHours = 10

// overtimeCoefficient is the time-and-a-half multiplier.
var overtimeCoefficient = decimal.NewFromFloat(1.5)

// OvertimeTotals maps employee -> period key -> total logged hours.
type OvertimeTotals map[EmployeeID]map[string]int

// AggregateOvertime sums overtime hours per employee per month. Entries
// with a missing employee ID or date are logged and skipped, never fatal.
func AggregateOvertime(entries []Overtime, log logrus.FieldLogger) OvertimeTotals {
	totals := make(OvertimeTotals)
	for _, entry := range entries {
		if entry.EmployeeID == "" || entry.Date.IsZero() {
			log.WithFields(logrus.Fields{
				"employee": entry.EmployeeID,
				"date":     entry.Date,
			}).Warn("skipping overtime entry with missing employee or date")
			continue
		}

		key := entry.Date.Period().String()
		perPeriod := totals[entry.EmployeeID]
		if perPeriod == nil {
			perPeriod = make(map[string]int)
			totals[entry.EmployeeID] = perPeriod
		}
		perPeriod[key] += entry.Hours
	}
	return totals
}

// HoursFor returns the total overtime hours for the employee in the
// period, 0 when nothing was logged.
func (t OvertimeTotals) HoursFor(id EmployeeID, period PeriodKey) int {
	perPeriod := t[id]
	if perPeriod == nil {
		return 0
	}
	return perPeriod[period.String()]
}

// OvertimePay prices overtime hours against the employee's rate.
// Hours <= 0 pay nothing; hours above MaxOvertimeHours are paid as
// exactly MaxOvertimeHours.
func OvertimePay(rate Rate, hours int, log logrus.FieldLogger) decimal.Decimal {
	if hours <= 0 {
		return decimal.Zero
	}

	capped := hours
	if capped > MaxOvertimeHours {
		capped = MaxOvertimeHours
		log.WithFields(logrus.Fields{
			"employee": rate.EmployeeID,
			"logged":   hours,
			"capped":   capped,
		}).Warn("overtime hours capped")
	}

	return decimal.NewFromInt(int64(capped)).
		Mul(rate.OvertimeRate).
		Mul(overtimeCoefficient)
}
