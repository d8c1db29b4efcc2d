/*
loader.go - CSV to typed entities

PURPOSE:
  Implements payroll.Source over a directory of semicolon-delimited CSV
  files. Each dataset has a fixed file name under the data root. Rows
  that fail to convert are logged with their reason and skipped; only
  unreadable files are fatal.

FILES:
  main_data.csv       employees
  rate.csv            rates
  payments.csv        payment events
  overtime_data.csv   overtime log
  tax_class_data.csv  tax classes
  calendar_data.csv   calendar days
*/
package csvdata

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/warp/payroll-engine/payroll"
)

// Dataset file names under the data root.
const (
	EmployeeFile = "main_data.csv"
	RateFile     = "rate.csv"
	PaymentFile  = "payments.csv"
	OvertimeFile = "overtime_data.csv"
	TaxClassFile = "tax_class_data.csv"
	CalendarFile = "calendar_data.csv"
)

const overtimeDateLayout = "2006-01-02"

// Loader reads all payroll datasets from one directory.
type Loader struct {
	Dir string
	Log logrus.FieldLogger
}

func NewLoader(dir string, log logrus.FieldLogger) *Loader {
	return &Loader{Dir: dir, Log: log}
}

// load reads one file and converts each record, skipping rows the
// converter rejects.
func load[T any](l *Loader, file string, convert func(Record) (T, error)) ([]T, error) {
	path := filepath.Join(l.Dir, file)
	l.Log.WithField("path", path).Info("loading data")

	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out []T
	for _, record := range records {
		item, err := convert(record)
		if err != nil {
			l.Log.WithField("path", path).WithError(err).
				Warn("skipping unparseable record")
			continue
		}
		out = append(out, item)
	}

	l.Log.WithFields(logrus.Fields{"path": path, "items": len(out)}).
		Info("loaded data")
	return out, nil
}

func (l *Loader) Employees() ([]payroll.Employee, error) {
	return load(l, EmployeeFile, func(r Record) (payroll.Employee, error) {
		if r["Employee ID"] == "" {
			return payroll.Employee{}, errMissingField("Employee ID")
		}

		// "Days Worked" is optional: anything non-numeric means the
		// employee worked the full period.
		var daysWorked *int
		if n, err := strconv.Atoi(r["Days Worked"]); err == nil && n >= 0 {
			daysWorked = &n
		}

		return payroll.Employee{
			ID:         payroll.EmployeeID(r["Employee ID"]),
			FullName:   r["Name"],
			Location:   r["Location"],
			TaxClass:   r["Tax Class"],
			ATLevel:    r["AT Level"],
			Status:     r["Status"],
			DaysWorked: daysWorked,
			Phone:      r["Phone Number"],
			Birthday:   r["Birthday"],
		}, nil
	})
}

func (l *Loader) Rates() ([]payroll.Rate, error) {
	return load(l, RateFile, func(r Record) (payroll.Rate, error) {
		if r["EMPLOYEE_ID"] == "" {
			return payroll.Rate{}, errMissingField("EMPLOYEE_ID")
		}
		monthly, err := decimal.NewFromString(r["RATE"])
		if err != nil {
			return payroll.Rate{}, errBadField("RATE", err)
		}
		overtime, err := decimal.NewFromString(r["OVERTIME_RATE"])
		if err != nil {
			return payroll.Rate{}, errBadField("OVERTIME_RATE", err)
		}
		return payroll.Rate{
			EmployeeID:   payroll.EmployeeID(r["EMPLOYEE_ID"]),
			Monthly:      monthly,
			OvertimeRate: overtime,
		}, nil
	})
}

func (l *Loader) Payments() ([]payroll.Payment, error) {
	return load(l, PaymentFile, func(r Record) (payroll.Payment, error) {
		month, err := strconv.Atoi(r["MONTH"])
		if err != nil {
			return payroll.Payment{}, errBadField("MONTH", err)
		}
		year, err := strconv.Atoi(r["YEAR"])
		if err != nil {
			return payroll.Payment{}, errBadField("YEAR", err)
		}
		day, err := strconv.Atoi(r["PAYMENT_DATE"])
		if err != nil {
			return payroll.Payment{}, errBadField("PAYMENT_DATE", err)
		}
		return payroll.Payment{Month: month, Year: year, PaymentDay: day}, nil
	})
}

func (l *Loader) Overtimes() ([]payroll.Overtime, error) {
	return load(l, OvertimeFile, func(r Record) (payroll.Overtime, error) {
		if r["EMPLOYEE_ID"] == "" {
			return payroll.Overtime{}, errMissingField("EMPLOYEE_ID")
		}
		hours, err := strconv.Atoi(r["OVERTIME_DATA"])
		if err != nil {
			return payroll.Overtime{}, errBadField("OVERTIME_DATA", err)
		}
		date, err := time.Parse(overtimeDateLayout, r["DATE"])
		if err != nil {
			return payroll.Overtime{}, errBadField("DATE", err)
		}
		return payroll.Overtime{
			EmployeeID: payroll.EmployeeID(r["EMPLOYEE_ID"]),
			Hours:      hours,
			Date: payroll.Date{
				Year:  date.Year(),
				Month: int(date.Month()),
				Day:   date.Day(),
			},
		}, nil
	})
}

func (l *Loader) TaxClasses() ([]payroll.TaxClass, error) {
	return load(l, TaxClassFile, func(r Record) (payroll.TaxClass, error) {
		if r["TAX_CLASS"] == "" {
			return payroll.TaxClass{}, errMissingField("TAX_CLASS")
		}
		factor, err := decimal.NewFromString(r["FACTOR"])
		if err != nil {
			return payroll.TaxClass{}, errBadField("FACTOR", err)
		}
		return payroll.TaxClass{Code: r["TAX_CLASS"], Factor: factor}, nil
	})
}

func (l *Loader) Calendar() ([]payroll.CalendarDay, error) {
	return load(l, CalendarFile, func(r Record) (payroll.CalendarDay, error) {
		year, err := strconv.Atoi(r["YEAR"])
		if err != nil {
			return payroll.CalendarDay{}, errBadField("YEAR", err)
		}
		month, err := strconv.Atoi(r["MONTH"])
		if err != nil {
			return payroll.CalendarDay{}, errBadField("MONTH", err)
		}
		day, err := strconv.Atoi(r["DAY"])
		if err != nil {
			return payroll.CalendarDay{}, errBadField("DAY", err)
		}
		weekday, err := parseWeekday(r["DAY_OF_WEEK"])
		if err != nil {
			return payroll.CalendarDay{}, err
		}
		return payroll.CalendarDay{
			Year:    year,
			Month:   month,
			Day:     day,
			Weekday: weekday,
			Holiday: isYes(r["HOLIDAY"]),
		}, nil
	})
}
