package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/denshoproject/ddr-iaconvert/pkg/ddr"
)

// table is a parsed CSV export: the normalized header plus every data row in
// input order.
type table struct {
	name    string
	headers []string
	rows    [][]string
}

// readTable parses a CSV export and validates that the required columns are
// present. Headers are lowercased and trimmed so exports that round-tripped
// through spreadsheet tools still match. Rows shorter than the header are
// padded with empty fields.
func readTable(name, path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s csv: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s csv: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s csv %s: %w: %s", name, path, ddr.ErrMissingColumn, strings.Join(required, ", "))
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	have := make(map[string]bool, len(headers))
	for _, h := range headers {
		have[h] = true
	}
	for _, col := range required {
		if !have[col] {
			return nil, fmt.Errorf("%s csv %s: %w: %s", name, path, ddr.ErrMissingColumn, col)
		}
	}

	rows := records[1:]
	for i, row := range rows {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		rows[i] = row
	}

	return &table{name: name, headers: headers, rows: rows}, nil
}
