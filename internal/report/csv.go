package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrEmptyReport is returned when there is nothing to write.
var ErrEmptyReport = errors.New("no expenses match the filters")

// CSVHeader is the first line of every CSV report.
var CSVHeader = []string{"Date", "Category", "Amount", "Notes"}

// FileName returns the default report file name for a generation time.
func FileName(now time.Time) string {
	return fmt.Sprintf("snacker_expense_report_%s.csv", now.Format("20060102_150405"))
}

// WriteCSV writes the report rows to w.
func WriteCSV(w io.Writer, r *Report) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	for _, row := range r.Rows {
		record := []string{
			row.Date.String(),
			row.Category,
			row.Amount.StringFixed(2),
			row.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("error writing row for %s: %w", row.Date, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("error flushing csv: %w", err)
	}
	return nil
}

// CSVWriter writes reports as files in a directory.
type CSVWriter struct {
	outputDir string
	// Path is the file written by the last successful Write.
	Path string
}

// NewCSVWriter creates a writer targeting outputDir.
func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// Write implements Writer.
func (w *CSVWriter) Write(_ context.Context, r *Report) error {
	if r.Empty() {
		return ErrEmptyReport
	}

	if err := os.MkdirAll(w.outputDir, 0750); err != nil {
		return fmt.Errorf("error creating %s: %w", w.outputDir, err)
	}

	filename := filepath.Join(w.outputDir, FileName(r.GeneratedAt))
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filename, err)
	}

	if err := WriteCSV(file, r); err != nil {
		_ = file.Close()
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing %s: %w", filename, err)
	}

	w.Path = filename
	return nil
}
