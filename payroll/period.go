package payroll

import "fmt"

// =============================================================================
// PERIOD KEY - identifies a (year, month) pair
// =============================================================================

// PeriodKey identifies one calendar month. It keys both the calendar
// index and the overtime aggregate.
type PeriodKey struct {
	Year  int
	Month int
}

// Previous returns the preceding month, rolling the year back at January.
func (k PeriodKey) Previous() PeriodKey {
	if k.Month == 1 {
		return PeriodKey{Year: k.Year - 1, Month: 12}
	}
	return PeriodKey{Year: k.Year, Month: k.Month - 1}
}

// String renders the key the way the input files do: "{year}-{month}",
// without zero padding.
func (k PeriodKey) String() string {
	return fmt.Sprintf("%d-%d", k.Year, k.Month)
}
