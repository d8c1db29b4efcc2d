package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

func TestCalendarIndex_WorkingDays(t *testing.T) {
	days := []payroll.CalendarDay{
		{Year: 2025, Month: 3, Day: 3, Weekday: time.Monday},
		{Year: 2025, Month: 3, Day: 4, Weekday: time.Tuesday},
		{Year: 2025, Month: 3, Day: 5, Weekday: time.Wednesday, Holiday: true},
		{Year: 2025, Month: 3, Day: 8, Weekday: time.Saturday},
		{Year: 2025, Month: 3, Day: 9, Weekday: time.Sunday},
		// Different month, must not leak in
		{Year: 2025, Month: 4, Day: 1, Weekday: time.Tuesday},
	}
	idx := payroll.NewCalendarIndex(days)

	working, err := idx.WorkingDays(payroll.PeriodKey{Year: 2025, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, working, "holiday and weekend days must not count")
}

func TestCalendarIndex_MissingPeriodFailsFast(t *testing.T) {
	idx := payroll.NewCalendarIndex([]payroll.CalendarDay{
		{Year: 2025, Month: 3, Day: 3, Weekday: time.Monday},
	})

	_, err := idx.WorkingDays(payroll.PeriodKey{Year: 2025, Month: 2})
	require.Error(t, err)
	assert.True(t, payroll.IsFatal(err), "missing calendar data is a data-completeness error")

	var missing *payroll.MissingCalendarError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "2025-2", missing.Period.String())
}

func TestCalendarIndex_ZeroWorkingDaysIsNotAnError(t *testing.T) {
	// A covered period where every day is weekend/holiday returns 0;
	// deciding whether that is fatal is the caller's business.
	idx := payroll.NewCalendarIndex([]payroll.CalendarDay{
		{Year: 2025, Month: 3, Day: 1, Weekday: time.Saturday},
		{Year: 2025, Month: 3, Day: 3, Weekday: time.Monday, Holiday: true},
	})

	working, err := idx.WorkingDays(payroll.PeriodKey{Year: 2025, Month: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, working)
}

func TestCalendarIndex_IsHoliday(t *testing.T) {
	idx := payroll.NewCalendarIndex([]payroll.CalendarDay{
		{Year: 2025, Month: 12, Day: 25, Weekday: time.Thursday, Holiday: true},
		{Year: 2025, Month: 12, Day: 26, Weekday: time.Friday},
	})

	assert.True(t, idx.IsHoliday(payroll.Date{Year: 2025, Month: 12, Day: 25}))
	assert.False(t, idx.IsHoliday(payroll.Date{Year: 2025, Month: 12, Day: 26}))
	assert.False(t, idx.IsHoliday(payroll.Date{Year: 2025, Month: 12, Day: 27}), "unknown days are not holidays")
}

func TestCalendarDay_IsWorkingDay(t *testing.T) {
	cases := []struct {
		name string
		day  payroll.CalendarDay
		want bool
	}{
		{"weekday", payroll.CalendarDay{Weekday: time.Wednesday}, true},
		{"saturday", payroll.CalendarDay{Weekday: time.Saturday}, false},
		{"sunday", payroll.CalendarDay{Weekday: time.Sunday}, false},
		{"weekday holiday", payroll.CalendarDay{Weekday: time.Wednesday, Holiday: true}, false},
		{"saturday holiday", payroll.CalendarDay{Weekday: time.Saturday, Holiday: true}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.day.IsWorkingDay())
		})
	}
}
