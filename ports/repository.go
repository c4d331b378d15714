package ports

import (
	"context"

	"datacraft/domain/core"
	"datacraft/domain/dataset"
)

// DatasetRepository persists saved datasets scoped to an owner.
type DatasetRepository interface {
	Create(ctx context.Context, ds *dataset.Saved) error
	GetByID(ctx context.Context, id core.ID) (*dataset.Saved, error)
	ListByOwner(ctx context.Context, ownerID core.ID, limit, offset int) ([]*dataset.Saved, error)
	Delete(ctx context.Context, id core.ID) error
}
