package schema

import (
	"fmt"
	"strings"

	"datacraft/domain/core"
)

// Validate checks the structural integrity of a schema before generation.
//
// Duplicate display names are rejected rather than silently overwriting each
// other in the row map, and inverted numeric bounds fail fast rather than
// being swapped. An empty schema is valid.
func Validate(columns []Column) error {
	seen := make(map[string]struct{}, len(columns))
	for i, col := range columns {
		name := strings.TrimSpace(col.Name)
		if name == "" {
			return fmt.Errorf("%w: column %d", core.ErrEmptyColumnName, i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", core.ErrDuplicateColumn, name)
		}
		seen[name] = struct{}{}

		if col.Type.HasBounds() && col.Options != nil &&
			col.Options.Min != nil && col.Options.Max != nil &&
			*col.Options.Min > *col.Options.Max {
			return fmt.Errorf("%w: column %q has min %v > max %v",
				core.ErrInvalidBounds, name, *col.Options.Min, *col.Options.Max)
		}
	}
	return nil
}
