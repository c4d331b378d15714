package ports

import (
	"io"

	"datacraft/domain/dataset"
)

// ExporterPort serializes a generated dataset to one output format.
// Encoders emit columns in schema order and render absent values as empty
// strings.
type ExporterPort interface {
	ContentType() string
	FileExtension() string
	Encode(w io.Writer, ds *dataset.Generated) error
}
