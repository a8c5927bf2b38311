package export

import (
	"encoding/csv"
	"io"

	"apicatalog/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter wraps csv.Writer for exporting APIs.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteApis writes one row per API.
func (w *CSVWriter) WriteApis(apis []*domain.Api) error {
	for _, api := range apis {
		if err := w.csv.Write(apiToRow(api)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered rows and returns any write error.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
