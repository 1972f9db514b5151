package csvexport

import (
	"encoding/csv"
	"io"
	"strings"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the access-matrix export.
var columns = []string{
	"Document Name",
	"Document Kind",
	"Document Variant",
	"Finished",
	"Permitted Writers",
}

// Row is one document's line in the access-matrix export.
type Row struct {
	DocumentName string
	Kind         string
	Variant      string
	Finished     bool
	Writers      []string
}

// Writer wraps csv.Writer for exporting an access matrix as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRows writes one CSV line per document.
func (w *Writer) WriteRows(rows []Row) error {
	for i := range rows {
		r := &rows[i]
		finished := "no"
		if r.Finished {
			finished = "yes"
		}
		record := []string{
			r.DocumentName,
			r.Kind,
			r.Variant,
			finished,
			strings.Join(r.Writers, "; "),
		}
		if err := w.csv.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
