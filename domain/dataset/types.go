package dataset

import (
	"time"

	"datacraft/domain/core"
	"datacraft/domain/schema"
)

// Row maps column display names to synthesized values. Values are always
// JSON-safe: strings, float64, int, int64 or bool.
type Row map[string]any

// Generated is a materialized synthetic dataset: the schema that produced it,
// the rows in generation order, the requested row count and the seed used.
// It is immutable after construction; regeneration yields a new value.
//
// The JSON shape matches the prompt-to-schema service contract
// ({columns, data, rowCount, seed}) so AI-generated payloads decode directly
// into this type.
type Generated struct {
	Columns  []schema.Column `json:"columns"`
	Data     []Row           `json:"data"`
	RowCount int             `json:"rowCount"`
	Seed     *int64          `json:"seed,omitempty"`
}

// ColumnNames returns the header row for exports, in schema order.
func (g *Generated) ColumnNames() []string {
	return schema.Names(g.Columns)
}

// NumericalStats summarizes the first numeric column of a dataset.
type NumericalStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// Stats is the derived sanity summary of one generated dataset.
// NumericalStats is nil when no numeric column yields a parseable value.
type Stats struct {
	RowCount       int             `json:"rowCount"`
	ColumnCount    int             `json:"columnCount"`
	NumericalStats *NumericalStats `json:"numericalStats,omitempty"`
	HasNullValues  bool            `json:"hasNullValues"`
}

// Saved is a persisted dataset scoped to an owner.
type Saved struct {
	ID           core.ID         `json:"id"`
	OwnerID      core.ID         `json:"owner_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Columns      []schema.Column `json:"columns"`
	Data         []Row           `json:"data"`
	RowCount     int             `json:"row_count"`
	TemplateName string          `json:"template_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewSaved builds a Saved record from a generated dataset with fresh identity.
func NewSaved(ownerID core.ID, name, description, templateName string, g *Generated) *Saved {
	now := time.Now().UTC()
	return &Saved{
		ID:           core.NewID(),
		OwnerID:      ownerID,
		Name:         name,
		Description:  description,
		Columns:      g.Columns,
		Data:         g.Data,
		RowCount:     len(g.Data),
		TemplateName: templateName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
