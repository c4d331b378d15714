package memory

import (
	"context"
	"testing"
	"time"

	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
)

func savedFixture(owner core.ID, name string, createdAt time.Time) *dataset.Saved {
	return &dataset.Saved{
		ID:        core.NewID(),
		OwnerID:   owner,
		Name:      name,
		Columns:   []schema.Column{{ID: "1", Name: "N", Type: schema.TypeInteger}},
		Data:      []dataset.Row{{"N": 1}},
		RowCount:  1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestDatasetRepository_CRUD(t *testing.T) {
	repo := NewDatasetRepository()
	ctx := context.Background()
	owner := core.NewID()

	ds := savedFixture(owner, "first", time.Now())
	if err := repo.Create(ctx, ds); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(ctx, ds.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "first" || got.OwnerID != owner {
		t.Errorf("round trip wrong: %+v", got)
	}

	if err := repo.Delete(ctx, ds.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.GetByID(ctx, ds.ID); !core.IsNotFoundError(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, ds.ID); !core.IsNotFoundError(err) {
		t.Errorf("double delete should be not-found, got %v", err)
	}
}

func TestDatasetRepository_ListByOwner(t *testing.T) {
	repo := NewDatasetRepository()
	ctx := context.Background()
	owner := core.NewID()
	other := core.NewID()

	base := time.Now()
	for i, name := range []string{"oldest", "middle", "newest"} {
		if err := repo.Create(ctx, savedFixture(owner, name, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.Create(ctx, savedFixture(other, "foreign", base)); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListByOwner(ctx, owner, 10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(got))
	}
	if got[0].Name != "newest" || got[2].Name != "oldest" {
		t.Errorf("wrong ordering: %s ... %s", got[0].Name, got[2].Name)
	}

	paged, err := repo.ListByOwner(ctx, owner, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(paged) != 1 || paged[0].Name != "middle" {
		t.Errorf("pagination wrong: %+v", paged)
	}
}
