package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// utf8BOM keeps non-ASCII names intact when the CSV is opened in spreadsheet
// applications that default to a legacy encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"Name", "FirstSeenTimestamp", "VisitCount", "AllTimestamps"}

// WriteCSV writes the report as UTF-8 CSV with a byte-order mark.
func WriteCSV(w io.Writer, rows []Row) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			row.FirstSeen.Format(TimeLayout),
			strconv.Itoa(row.VisitCount),
			row.AllTimestamps(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFile writes the report snapshot to path. The ledger is untouched on
// failure; a partially written file is removed.
func ExportFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
