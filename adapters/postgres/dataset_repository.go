package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
	"datacraft/ports"

	"github.com/jmoiron/sqlx"
)

// datasetRepository implements the DatasetRepository interface
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sqlx.DB) ports.DatasetRepository {
	return &datasetRepository{db: db}
}

// Create inserts a new saved dataset into the database
func (r *datasetRepository) Create(ctx context.Context, ds *dataset.Saved) error {
	columnsJSON, err := json.Marshal(ds.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal columns: %w", err)
	}
	dataJSON, err := json.Marshal(ds.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	query := `INSERT INTO saved_datasets (
		id, owner_id, name, description, columns, data, row_count, template_name,
		created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.ExecContext(ctx, query,
		ds.ID, ds.OwnerID, ds.Name, ds.Description, columnsJSON, dataJSON,
		ds.RowCount, ds.TemplateName, ds.CreatedAt, ds.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create saved dataset: %w", err)
	}

	return nil
}

// GetByID retrieves a saved dataset by its ID
func (r *datasetRepository) GetByID(ctx context.Context, id core.ID) (*dataset.Saved, error) {
	query := `SELECT
		id, owner_id, name, COALESCE(description, '') as description, columns, data,
		row_count, COALESCE(template_name, '') as template_name, created_at, updated_at
	FROM saved_datasets WHERE id = $1`

	ds, err := scanSaved(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewNotFoundError("dataset", id.String())
		}
		return nil, fmt.Errorf("failed to get saved dataset: %w", err)
	}
	return ds, nil
}

// ListByOwner retrieves saved datasets for an owner with pagination
func (r *datasetRepository) ListByOwner(ctx context.Context, ownerID core.ID, limit, offset int) ([]*dataset.Saved, error) {
	query := `SELECT
		id, owner_id, name, COALESCE(description, '') as description, columns, data,
		row_count, COALESCE(template_name, '') as template_name, created_at, updated_at
	FROM saved_datasets
	WHERE owner_id = $1
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved datasets: %w", err)
	}
	defer rows.Close()

	var datasets []*dataset.Saved
	for rows.Next() {
		ds, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved dataset: %w", err)
		}
		datasets = append(datasets, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved datasets: %w", err)
	}

	return datasets, nil
}

// Delete removes a saved dataset
func (r *datasetRepository) Delete(ctx context.Context, id core.ID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_datasets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved dataset: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("dataset", id.String())
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanSaved(s scanner) (*dataset.Saved, error) {
	var ds dataset.Saved
	var columnsJSON, dataJSON []byte

	err := s.Scan(
		&ds.ID, &ds.OwnerID, &ds.Name, &ds.Description, &columnsJSON, &dataJSON,
		&ds.RowCount, &ds.TemplateName, &ds.CreatedAt, &ds.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(columnsJSON, &ds.Columns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal columns: %w", err)
	}
	if ds.Columns == nil {
		ds.Columns = []schema.Column{}
	}
	if err := json.Unmarshal(dataJSON, &ds.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return &ds, nil
}
