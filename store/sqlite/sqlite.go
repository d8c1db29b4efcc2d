/*
Package sqlite provides a SQLite-backed implementation of store.RunStore.

PURPOSE:
  Persists payroll runs and their results so the API can serve history
  without re-running the pipeline. In production the same patterns apply
  to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  runs:    One row per completed payroll run
  results: The ordered payment results of each run

ORDERING:
  Results keep their engine emission order via an explicit position
  column; SELECTs order by it. Money is stored as TEXT to round-trip
  decimal values exactly.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so API reads don't
  block a run being saved.

USAGE:
  st, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

SEE ALSO:
  - store/store.go: Interface definition
  - store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/store"
)

const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

// Store implements store.RunStore using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		result_count INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at
		ON runs(started_at DESC);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		employee_id TEXT NOT NULL,
		pay TEXT NOT NULL,
		date TEXT NOT NULL,
		settlement_account TEXT NOT NULL,
		currency TEXT NOT NULL,
		base_pay TEXT NOT NULL,
		overtime_pay TEXT NOT NULL,
		deduction TEXT NOT NULL,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_results_employee
		ON results(employee_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) SaveRun(ctx context.Context, rec store.RunRecord, results []payroll.PaymentResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, completed_at, result_count)
		VALUES (?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.Format(timeLayout),
		rec.CompletedAt.Format(timeLayout),
		len(results),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, r := range results {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO results (run_id, position, employee_id, pay, date,
				settlement_account, currency, base_pay, overtime_pay, deduction)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, i, string(r.EmployeeID), r.Pay.String(), r.Date,
			r.SettlementAccount, r.Currency,
			r.Breakdown.Base.String(),
			r.Breakdown.Overtime.String(),
			r.Breakdown.Deduction.String(),
		)
		if err != nil {
			return fmt.Errorf("insert result %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (s *Store) ListRuns(ctx context.Context) ([]store.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, completed_at, result_count
		FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *rec)
	}
	return runs, rows.Err()
}

func (s *Store) GetRun(ctx context.Context, id string) (*store.RunRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, completed_at, result_count
		FROM runs WHERE id = ?`, id)

	rec, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrRunNotFound
	}
	return rec, err
}

func (s *Store) Results(ctx context.Context, runID string) ([]payroll.PaymentResult, error) {
	if _, err := s.GetRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, pay, date, settlement_account, currency,
			base_pay, overtime_pay, deduction
		FROM results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []payroll.PaymentResult
	for rows.Next() {
		var employeeID, pay, date, account, currency, base, overtime, deduction string
		if err := rows.Scan(&employeeID, &pay, &date, &account, &currency,
			&base, &overtime, &deduction); err != nil {
			return nil, err
		}

		result := payroll.PaymentResult{
			EmployeeID:        payroll.EmployeeID(employeeID),
			Date:              date,
			SettlementAccount: account,
			Currency:          currency,
		}
		if result.Pay, err = decimal.NewFromString(pay); err != nil {
			return nil, fmt.Errorf("corrupt pay value %q: %w", pay, err)
		}
		if result.Breakdown.Base, err = decimal.NewFromString(base); err != nil {
			return nil, fmt.Errorf("corrupt base value %q: %w", base, err)
		}
		if result.Breakdown.Overtime, err = decimal.NewFromString(overtime); err != nil {
			return nil, fmt.Errorf("corrupt overtime value %q: %w", overtime, err)
		}
		if result.Breakdown.Deduction, err = decimal.NewFromString(deduction); err != nil {
			return nil, fmt.Errorf("corrupt deduction value %q: %w", deduction, err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*store.RunRecord, error) {
	var rec store.RunRecord
	var started, completed string
	if err := row.Scan(&rec.ID, &started, &completed, &rec.ResultCount); err != nil {
		return nil, err
	}

	var err error
	if rec.StartedAt, err = parseTime(started); err != nil {
		return nil, err
	}
	if rec.CompletedAt, err = parseTime(completed); err != nil {
		return nil, err
	}
	return &rec, nil
}
