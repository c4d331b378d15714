package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"datacraft/domain/dataset"
)

// CSVExporter encodes a dataset as RFC 4180 delimited text with a header row.
type CSVExporter struct{}

func (CSVExporter) ContentType() string   { return "text/csv" }
func (CSVExporter) FileExtension() string { return "csv" }

func (CSVExporter) Encode(w io.Writer, ds *dataset.Generated) error {
	cw := csv.NewWriter(w)

	headers := ds.ColumnNames()
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(headers))
	for i, row := range ds.Data {
		for j, name := range headers {
			record[j] = DisplayString(row[name])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
