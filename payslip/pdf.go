// Package payslip renders one PDF payslip per payment result.
package payslip

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/warp/payroll-engine/payroll"
)

// Generator writes payslip PDFs into Dir, one file per result, named
// <employeeID>_<date>.pdf.
type Generator struct {
	Dir string
}

func NewGenerator(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Generate renders the payslip for one result and returns the file path.
// The employee provides the display name; results carry only the ID.
func (g *Generator) Generate(result payroll.PaymentResult, emp payroll.Employee) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s.pdf", result.EmployeeID,
		strings.ReplaceAll(result.Date, ".", "-"))
	path := filepath.Join(g.Dir, name)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.FullName, result.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payment date: %s", result.Date))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Settlement account: %s", result.SettlementAccount))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base pay: %s %s", result.Breakdown.Base.StringFixed(2), result.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime pay: %s %s", result.Breakdown.Overtime.StringFixed(2), result.Currency))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s %s", result.Breakdown.Deduction.StringFixed(2), result.Currency))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s %s", result.Pay.StringFixed(2), result.Currency))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateAll renders payslips for every result, resolving display
// names from the roster. Duplicate employee IDs resolve to the first
// entry, matching the engine; results without a known employee still
// get a slip with just the ID.
func (g *Generator) GenerateAll(results []payroll.PaymentResult, employees []payroll.Employee) ([]string, error) {
	byID := make(map[payroll.EmployeeID]payroll.Employee, len(employees))
	for _, emp := range employees {
		if _, ok := byID[emp.ID]; !ok {
			byID[emp.ID] = emp
		}
	}

	paths := make([]string, 0, len(results))
	for _, r := range results {
		path, err := g.Generate(r, byID[r.EmployeeID])
		if err != nil {
			return paths, fmt.Errorf("payslip for %s: %w", r.EmployeeID, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
