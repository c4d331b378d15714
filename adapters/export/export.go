package export

import (
	"fmt"
	"strconv"

	"datacraft/ports"
)

// ForFormat returns the exporter for a format name (csv, json, xlsx).
func ForFormat(format string) (ports.ExporterPort, error) {
	switch format {
	case "csv":
		return CSVExporter{}, nil
	case "json":
		return JSONExporter{}, nil
	case "xlsx":
		return ExcelExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// DisplayString coerces a field value to its export representation.
// Absent/nil values render as the empty string.
func DisplayString(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	default:
		return fmt.Sprint(n)
	}
}
