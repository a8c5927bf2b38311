package export

import (
	"fmt"
	"io"

	"apicatalog/internal/domain"
	"apicatalog/internal/metrics"
)

// Write exports apis to w in the given format. CSV output starts with a BOM.
func Write(w io.Writer, format Format, sheet string, apis []*domain.Api) error {
	if err := write(w, format, sheet, apis); err != nil {
		return err
	}
	metrics.ExportRows.WithLabelValues(string(format)).Add(float64(len(apis)))
	return nil
}

func write(w io.Writer, format Format, sheet string, apis []*domain.Api) error {
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, sheet, apis)
	case FormatCSV:
		if _, err := w.Write(BOM); err != nil {
			return err
		}
		cw := NewCSVWriter(w)
		if err := cw.WriteHeader(); err != nil {
			return err
		}
		if err := cw.WriteApis(apis); err != nil {
			return err
		}
		return cw.Flush()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedExport, format)
	}
}
