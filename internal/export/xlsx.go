package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"apicatalog/internal/domain"
)

const defaultSheet = "Sheet1"

// WriteXLSX writes apis to a single-sheet workbook named sheet.
func WriteXLSX(w io.Writer, sheet string, apis []*domain.Api) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("naming sheet %q: %w", sheet, err)
		}
	}
	if err := setRow(f, sheet, 1, columns); err != nil {
		return err
	}
	for i, api := range apis {
		if err := setRow(f, sheet, i+2, apiToRow(api)); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
