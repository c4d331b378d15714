package synth

import (
	"fmt"
	"math/rand"
	"time"

	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
)

// Build materializes a rectangular dataset: rowCount rows, one synthesized
// value per column in schema order, keyed by the column's display name.
//
// A non-nil seed initializes a fresh random stream before any synthesis, so
// two calls with the same schema, row count and seed produce identical
// output. Each call owns its stream; concurrent builds never interleave
// draws.
func Build(columns []schema.Column, rowCount int, seed *int64) (*dataset.Generated, error) {
	if rowCount < 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidRowCount, rowCount)
	}
	if err := schema.Validate(columns); err != nil {
		return nil, err
	}

	var src rand.Source
	if seed != nil {
		src = rand.NewSource(*seed)
	} else {
		src = rand.NewSource(time.Now().UnixNano())
	}
	syn := NewSynthesizer(rand.New(src), time.Now())

	data := make([]dataset.Row, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		row := make(dataset.Row, len(columns))
		for _, col := range columns {
			row[col.Name] = syn.Value(col)
		}
		data = append(data, row)
	}

	return &dataset.Generated{
		Columns:  columns,
		Data:     data,
		RowCount: rowCount,
		Seed:     seed,
	}, nil
}
