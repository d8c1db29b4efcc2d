/*
calendar.go - Calendar index and working-day counts

PURPOSE:
  Answers the two calendar questions the engine asks:
  1. How many working days does month X have?
  2. Is day Y a holiday?

  A working day is a day that is neither a holiday nor a Saturday/Sunday.
  The calendar data is the authoritative source of working-day counts:
  nothing is derived from time.Now() or generated weekday math.

FAIL-FAST:
  A period with zero calendar rows is a data-completeness problem, not a
  zero. WorkingDays returns a MissingCalendarError for it so the run
  aborts instead of silently paying nobody.

SEE ALSO:
  - basepay.go: divides by the working-day count
  - validate.go: checks calendar coverage before any calculation
*/
package payroll

import (
	"fmt"
	"time"
)

// =============================================================================
// CALENDAR DAY
// =============================================================================

// CalendarDay is one row of loaded calendar data.
type CalendarDay struct {
	Year    int
	Month   int
	Day     int
	Weekday time.Weekday
	Holiday bool
}

// IsWorkingDay reports whether the day counts toward the working-day
// total: not a holiday and not a weekend.
func (d CalendarDay) IsWorkingDay() bool {
	return !d.Holiday && d.Weekday != time.Saturday && d.Weekday != time.Sunday
}

func (d CalendarDay) Period() PeriodKey {
	return PeriodKey{Year: d.Year, Month: d.Month}
}

func (d CalendarDay) String() string {
	return fmt.Sprintf("CalendarDay{%04d-%02d-%02d, %s, holiday=%t}",
		d.Year, d.Month, d.Day, d.Weekday, d.Holiday)
}

// =============================================================================
// CALENDAR INDEX
// =============================================================================

// CalendarIndex buckets calendar days by (year, month) for constant-time
// period lookups. Input order does not matter.
type CalendarIndex struct {
	periods  map[PeriodKey][]CalendarDay
	holidays map[Date]bool
}

// NewCalendarIndex builds an index over the loaded calendar rows.
func NewCalendarIndex(days []CalendarDay) *CalendarIndex {
	idx := &CalendarIndex{
		periods:  make(map[PeriodKey][]CalendarDay),
		holidays: make(map[Date]bool),
	}
	for _, d := range days {
		key := d.Period()
		idx.periods[key] = append(idx.periods[key], d)
		if d.Holiday {
			idx.holidays[Date{Year: d.Year, Month: d.Month, Day: d.Day}] = true
		}
	}
	return idx
}

// HasPeriod reports whether any calendar rows exist for the period.
func (idx *CalendarIndex) HasPeriod(period PeriodKey) bool {
	return len(idx.periods[period]) > 0
}

// WorkingDays returns the number of working days in the period. A period
// with no calendar rows at all yields a MissingCalendarError; a covered
// period where every day is a weekend or holiday yields 0 with no error.
func (idx *CalendarIndex) WorkingDays(period PeriodKey) (int, error) {
	days, ok := idx.periods[period]
	if !ok || len(days) == 0 {
		return 0, &MissingCalendarError{Period: period}
	}
	count := 0
	for _, d := range days {
		if d.IsWorkingDay() {
			count++
		}
	}
	return count, nil
}

// IsHoliday reports whether the specific day is flagged as a holiday.
// Days absent from the calendar are not holidays.
func (idx *CalendarIndex) IsHoliday(date Date) bool {
	return idx.holidays[date]
}
