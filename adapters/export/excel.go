package export

import (
	"fmt"
	"io"

	"datacraft/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter encodes the dataset as a single-sheet xlsx workbook.
type ExcelExporter struct{}

func (ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (ExcelExporter) FileExtension() string { return "xlsx" }

func (ExcelExporter) Encode(w io.Writer, ds *dataset.Generated) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := ds.ColumnNames()

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range ds.Data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		values := make([]any, len(headers))
		for j, name := range headers {
			if v := row[name]; v != nil {
				values[j] = v
			} else {
				values[j] = ""
			}
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
