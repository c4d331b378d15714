package stats

import (
	"math"
	"strconv"
	"strings"

	"datacraft/domain/dataset"

	mstats "github.com/montanaflynn/stats"
)

// Summarize computes the sanity summary of a generated dataset: counts,
// min/max/mean over the first numeric-typed column, and a missing-value flag.
//
// The summary is deliberately shallow - a single numeric column, not full
// per-column profiling. Profile covers the deeper view.
func Summarize(ds *dataset.Generated) dataset.Stats {
	result := dataset.Stats{
		RowCount:    len(ds.Data),
		ColumnCount: len(ds.Columns),
	}

	if col, ok := firstNumericColumn(ds); ok && len(ds.Data) > 0 {
		values := make([]float64, 0, len(ds.Data))
		for _, row := range ds.Data {
			if v, ok := CoerceNumeric(row[col]); ok {
				values = append(values, v)
			}
		}
		if len(values) > 0 {
			min, _ := mstats.Min(values)
			max, _ := mstats.Max(values)
			mean, _ := mstats.Mean(values)
			result.NumericalStats = &dataset.NumericalStats{
				Min: min,
				Max: max,
				Avg: math.Round(mean*10) / 10,
			}
		}
	}

	// Presence check only: stop on the first missing field.
scan:
	for _, row := range ds.Data {
		for _, v := range row {
			if IsMissing(v) {
				result.HasNullValues = true
				break scan
			}
		}
	}

	return result
}

func firstNumericColumn(ds *dataset.Generated) (string, bool) {
	for _, col := range ds.Columns {
		if col.Type.IsNumeric() {
			return col.Name, true
		}
	}
	return "", false
}

// CoerceNumeric extracts a float from a field value. Non-numeric strings are
// stripped down to digits, decimal points and minus signs before parsing;
// values that still fail to parse are excluded, never treated as zero.
func CoerceNumeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		var b strings.Builder
		for _, r := range n {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				b.WriteRune(r)
			}
		}
		parsed, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// IsMissing reports whether a field value counts as null/missing.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
