package payslip_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payslip"
)

func sampleResult() payroll.PaymentResult {
	return payroll.PaymentResult{
		EmployeeID:        "E1",
		Pay:               decimal.RequireFromString("4300"),
		Date:              "7.25.2025",
		SettlementAccount: "MAGR",
		Currency:          payroll.Currency,
		Breakdown: payroll.Breakdown{
			Base:      decimal.RequireFromString("4000"),
			Overtime:  decimal.RequireFromString("300"),
			Deduction: decimal.RequireFromString("1000"),
		},
	}
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "payslips")
	g := payslip.NewGenerator(dir)

	path, err := g.Generate(sampleResult(), payroll.Employee{ID: "E1", FullName: "Magret Kramer"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "E1_7-25-2025.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateAll(t *testing.T) {
	g := payslip.NewGenerator(t.TempDir())

	second := sampleResult()
	second.EmployeeID = "E2"
	employees := []payroll.Employee{
		{ID: "E1", FullName: "Magret Kramer"},
		{ID: "E1", FullName: "Duplicate Row"},
		// E2 intentionally unknown: the slip falls back to the bare ID.
	}

	paths, err := g.GenerateAll([]payroll.PaymentResult{sampleResult(), second}, employees)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	for _, path := range paths {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}
