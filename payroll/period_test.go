package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/payroll-engine/payroll"
)

func TestPeriodKey_Previous(t *testing.T) {
	assert.Equal(t,
		payroll.PeriodKey{Year: 2025, Month: 6},
		payroll.PeriodKey{Year: 2025, Month: 7}.Previous())

	// January rolls the year back
	assert.Equal(t,
		payroll.PeriodKey{Year: 2024, Month: 12},
		payroll.PeriodKey{Year: 2025, Month: 1}.Previous())
}

func TestPayment_CalculationPeriod(t *testing.T) {
	p := payroll.Payment{Month: 1, Year: 2025, PaymentDay: 15}
	assert.Equal(t, payroll.PeriodKey{Year: 2024, Month: 12}, p.CalculationPeriod())
}

func TestPeriodKey_StringNoPadding(t *testing.T) {
	// Matches the overtime/calendar file convention: "2025-3", not "2025-03".
	assert.Equal(t, "2025-3", payroll.PeriodKey{Year: 2025, Month: 3}.String())
}

func TestPayment_DateString(t *testing.T) {
	p := payroll.Payment{Month: 7, Year: 2025, PaymentDay: 5}
	assert.Equal(t, "7.5.2025", p.DateString())
}
