// Package csvdata implements the payroll Source over semicolon-delimited
// CSV files with header rows.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Record is one CSV row as a field-name -> raw-value mapping.
type Record map[string]string

// ReadFile parses a semicolon-delimited CSV file. The first row is the
// header; every following row becomes a Record keyed by header names.
// Ragged rows are tolerated: fields beyond the header are dropped, and
// missing fields are simply absent from the Record, so a malformed row
// surfaces as a conversion problem instead of failing the whole file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		record := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}
