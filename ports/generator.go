package ports

import (
	"context"

	"datacraft/domain/dataset"
)

// SchemaGeneratorPort turns a free-text description into a schema plus sample
// data. Implementations call an external model service and must return either
// a structurally valid dataset or an error; they never return partial shapes.
type SchemaGeneratorPort interface {
	GenerateFromPrompt(ctx context.Context, prompt string, rowCount int) (*dataset.Generated, error)
}
