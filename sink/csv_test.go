package sink_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/sink"
)

func testLog() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleResults() []payroll.PaymentResult {
	return []payroll.PaymentResult{
		{
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
		},
		{
			EmployeeID:        "E2",
			Pay:               decimal.RequireFromString("2400.5"),
			Date:              "7.25.2025",
			SettlementAccount: payroll.SettlementAccountSentinel,
			Currency:          payroll.Currency,
		},
	}
}

func TestCSV_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result", "main_data_result.csv")

	s := sink.NewCSV(path, testLog())
	require.NoError(t, s.Save(context.Background(), sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "EMPLOYEE_ID;PAY;DATE;SETTLEMENT_ACCOUNT;CURRENCY\n" +
		"E1;4300.00;7.25.2025;MAGR;EUR\n" +
		"E2;2400.50;7.25.2025;INVALID_ACCOUNT;EUR\n"
	assert.Equal(t, want, string(data))
}

func TestCSV_SaveWithBreakdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	s := sink.NewCSV(path, testLog())
	s.Breakdown = true
	require.NoError(t, s.Save(context.Background(), sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "EMPLOYEE_ID;PAY;DATE;SETTLEMENT_ACCOUNT;CURRENCY;BASE;OVERTIME;DEDUCTION\n" +
		"E1;4300.00;7.25.2025;MAGR;EUR;4000.00;300.00;1000.00\n" +
		"E2;2400.50;7.25.2025;INVALID_ACCOUNT;EUR;0.00;0.00;0.00\n"
	assert.Equal(t, want, string(data))
}

func TestCSV_SaveEmptyRunWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, sink.NewCSV(path, testLog()).Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EMPLOYEE_ID;PAY;DATE;SETTLEMENT_ACCOUNT;CURRENCY\n", string(data))
}

func TestCSV_SaveOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := sink.NewCSV(path, testLog())

	require.NoError(t, s.Save(context.Background(), sampleResults()))
	require.NoError(t, s.Save(context.Background(), sampleResults()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "EMPLOYEE_ID;PAY;DATE;SETTLEMENT_ACCOUNT;CURRENCY\n" +
		"E1;4300.00;7.25.2025;MAGR;EUR\n"
	assert.Equal(t, want, string(data))
}
