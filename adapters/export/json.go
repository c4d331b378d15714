package export

import (
	"encoding/json"
	"io"

	"datacraft/domain/dataset"
)

// JSONExporter encodes the rows as an indented JSON array.
type JSONExporter struct{}

func (JSONExporter) ContentType() string   { return "application/json" }
func (JSONExporter) FileExtension() string { return "json" }

func (JSONExporter) Encode(w io.Writer, ds *dataset.Generated) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ds.Data)
}
