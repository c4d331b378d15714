package stats

import (
	"fmt"

	"datacraft/domain/dataset"
	"datacraft/domain/schema"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// NumericProfile holds distribution markers for one numeric column.
type NumericProfile struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ColumnProfile describes one column of an analyzed dataset.
type ColumnProfile struct {
	Name         string            `json:"name"`
	Type         schema.ColumnType `json:"type"`
	UniqueCount  int               `json:"unique_count"`
	MissingCount int               `json:"missing_count"`
	Numeric      *NumericProfile   `json:"numeric,omitempty"`
}

// Profile computes a per-column breakdown of the dataset: unique and missing
// counts for every column, plus distribution markers for numeric ones. This
// is the analyzer's deep view; Summarize stays the quick one.
func Profile(ds *dataset.Generated) []ColumnProfile {
	profiles := make([]ColumnProfile, 0, len(ds.Columns))

	for _, col := range ds.Columns {
		p := ColumnProfile{Name: col.Name, Type: col.Type}
		unique := make(map[string]struct{})
		var values []float64

		for _, row := range ds.Data {
			v := row[col.Name]
			if IsMissing(v) {
				p.MissingCount++
				continue
			}
			unique[fmt.Sprint(v)] = struct{}{}
			if col.Type.IsNumeric() {
				if f, ok := CoerceNumeric(v); ok {
					values = append(values, f)
				}
			}
		}
		p.UniqueCount = len(unique)

		if len(values) > 0 {
			min, _ := mstats.Min(values)
			max, _ := mstats.Max(values)
			stdDev := 0.0
			if len(values) > 1 {
				stdDev = stat.StdDev(values, nil)
			}
			p.Numeric = &NumericProfile{
				Min:    min,
				Max:    max,
				Mean:   stat.Mean(values, nil),
				StdDev: stdDev,
			}
		}

		profiles = append(profiles, p)
	}

	return profiles
}
