package convert

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV emits the header and every row to w in order. Output is
// byte-stable for identical inputs: no timestamps, no map iteration.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("writing row %d (%s): %w", i, row.Identifier, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
