package memory

import (
	"context"
	"sort"
	"sync"

	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/ports"
)

// datasetRepository is an in-memory DatasetRepository. It backs the server
// when no DATABASE_URL is configured and the handler tests.
type datasetRepository struct {
	mu    sync.RWMutex
	items map[core.ID]*dataset.Saved
}

// NewDatasetRepository creates an empty in-memory repository.
func NewDatasetRepository() ports.DatasetRepository {
	return &datasetRepository{items: make(map[core.ID]*dataset.Saved)}
}

func (r *datasetRepository) Create(ctx context.Context, ds *dataset.Saved) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ds
	r.items[ds.ID] = &cp
	return nil
}

func (r *datasetRepository) GetByID(ctx context.Context, id core.ID) (*dataset.Saved, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ds, ok := r.items[id]
	if !ok {
		return nil, core.NewNotFoundError("dataset", id.String())
	}
	cp := *ds
	return &cp, nil
}

func (r *datasetRepository) ListByOwner(ctx context.Context, ownerID core.ID, limit, offset int) ([]*dataset.Saved, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []*dataset.Saved
	for _, ds := range r.items {
		if ds.OwnerID == ownerID {
			cp := *ds
			owned = append(owned, &cp)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if offset >= len(owned) {
		return nil, nil
	}
	owned = owned[offset:]
	if limit > 0 && limit < len(owned) {
		owned = owned[:limit]
	}
	return owned, nil
}

func (r *datasetRepository) Delete(ctx context.Context, id core.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return core.NewNotFoundError("dataset", id.String())
	}
	delete(r.items, id)
	return nil
}
