// Package sink provides payroll.Sink implementations: the CSV results
// file and an optional Elasticsearch export.
package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/warp/payroll-engine/payroll"
)

// DefaultOutputFile is the results file name under the data root.
const DefaultOutputFile = "result/main_data_result.csv"

// CSV writes results as a semicolon-delimited file. With Breakdown set
// the base/overtime/deduction columns are appended to each row.
type CSV struct {
	Path      string
	Breakdown bool
	Log       logrus.FieldLogger
}

func NewCSV(path string, log logrus.FieldLogger) *CSV {
	return &CSV{Path: path, Log: log}
}

func (s *CSV) Save(_ context.Context, results []payroll.PaymentResult) error {
	s.Log.WithField("path", s.Path).Info("saving results")

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create result directory: %w", err)
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	header := []string{"EMPLOYEE_ID", "PAY", "DATE", "SETTLEMENT_ACCOUNT", "CURRENCY"}
	if s.Breakdown {
		header = append(header, "BASE", "OVERTIME", "DEDUCTION")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write result header: %w", err)
	}

	for _, r := range results {
		row := []string{
			string(r.EmployeeID),
			r.Pay.StringFixed(2),
			r.Date,
			r.SettlementAccount,
			r.Currency,
		}
		if s.Breakdown {
			row = append(row,
				r.Breakdown.Base.StringFixed(2),
				r.Breakdown.Overtime.StringFixed(2),
				r.Breakdown.Deduction.StringFixed(2),
			)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write result row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}

	s.Log.WithField("results", len(results)).Info("saved results")
	return nil
}
