package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store"
	"github.com/warp/payroll-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testRun(id string, startedAt time.Time) (store.RunRecord, []payroll.PaymentResult) {
	rec := store.RunRecord{
		ID:          id,
		StartedAt:   startedAt,
		CompletedAt: startedAt.Add(2 * time.Second),
	}
	results := []payroll.PaymentResult{
		{
			EmployeeID:        "E2",
			Pay:               decimal.RequireFromString("2400.5"),
			Date:              "7.25.2025",
			SettlementAccount: "HANS",
			Currency:          payroll.Currency,
			Breakdown: payroll.Breakdown{
				Base:      decimal.RequireFromString("2400.5"),
				Overtime:  decimal.Zero,
				Deduction: decimal.RequireFromString("600.125"),
			},
		},
		{
			EmployeeID:        "E1",
			Pay:               decimal.RequireFromString("4300"),
			Date:              "7.25.2025",
			SettlementAccount: payroll.SettlementAccountSentinel,
			Currency:          payroll.Currency,
			Breakdown: payroll.Breakdown{
				Base:      decimal.RequireFromString("4000"),
				Overtime:  decimal.RequireFromString("300"),
				Deduction: decimal.RequireFromString("1000"),
			},
		},
	}
	return rec, results
}

func TestStore_SaveAndGetRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec, results := testRun("run-1", time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC))
	require.NoError(t, st.SaveRun(ctx, rec, results))

	got, err := st.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, got.StartedAt.Equal(rec.StartedAt))
	assert.True(t, got.CompletedAt.Equal(rec.CompletedAt))
	assert.Equal(t, 2, got.ResultCount)
}

func TestStore_ResultsRoundTripInOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec, results := testRun("run-1", time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC))
	require.NoError(t, st.SaveRun(ctx, rec, results))

	got, err := st.Results(ctx, "run-1")
	require.NoError(t, err)

	require.Len(t, got, 2)
	// Emission order survives, regardless of employee IDs.
	assert.Equal(t, payroll.EmployeeID("E2"), got[0].EmployeeID)
	assert.Equal(t, payroll.EmployeeID("E1"), got[1].EmployeeID)

	assert.True(t, got[0].Pay.Equal(results[0].Pay))
	assert.True(t, got[0].Breakdown.Deduction.Equal(results[0].Breakdown.Deduction),
		"decimals round-trip exactly")
	assert.Equal(t, "7.25.2025", got[1].Date)
	assert.Equal(t, payroll.SettlementAccountSentinel, got[1].SettlementAccount)
	assert.Equal(t, "EUR", got[1].Currency)
}

func TestStore_ListRunsMostRecentFirst(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	older, olderResults := testRun("run-old", time.Date(2025, 6, 25, 9, 0, 0, 0, time.UTC))
	newer, newerResults := testRun("run-new", time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC))
	require.NoError(t, st.SaveRun(ctx, older, olderResults))
	require.NoError(t, st.SaveRun(ctx, newer, newerResults))

	runs, err := st.ListRuns(ctx)
	require.NoError(t, err)

	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].ID)
	assert.Equal(t, "run-old", runs[1].ID)
}

func TestStore_GetRunNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestStore_ResultsForUnknownRun(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Results(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestStore_DuplicateRunIDRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	rec, results := testRun("run-1", time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC))
	require.NoError(t, st.SaveRun(ctx, rec, results))
	assert.Error(t, st.SaveRun(ctx, rec, results))
}
