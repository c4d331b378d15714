package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"datacraft/domain/dataset"
	"datacraft/domain/schema"
)

// ReadCSV parses header-row CSV into the domain dataset shape, inferring a
// column type for each header from the values beneath it. Numeric cells are
// parsed to numbers and booleans to bools so downstream statistics see typed
// values; everything else stays a string.
func ReadCSV(r io.Reader) (*dataset.Generated, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Real-world exports are often ragged; short records are padded with
	// empty cells instead of failing the whole upload.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	headers := records[0]
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
	}
	body := records[1:]

	columns := make([]schema.Column, len(headers))
	for i, name := range headers {
		columns[i] = schema.Column{
			ID:   strconv.Itoa(i + 1),
			Name: name,
			Type: inferType(body, i),
		}
	}

	data := make([]dataset.Row, 0, len(body))
	for _, record := range body {
		row := make(dataset.Row, len(headers))
		for i, name := range headers {
			if i >= len(record) {
				row[name] = ""
				continue
			}
			row[name] = parseCell(record[i], columns[i].Type)
		}
		data = append(data, row)
	}

	return &dataset.Generated{
		Columns:  columns,
		Data:     data,
		RowCount: len(data),
	}, nil
}

// inferType inspects every non-empty cell of a column and picks the
// narrowest type that fits all of them.
func inferType(body [][]string, idx int) schema.ColumnType {
	allInt, allFloat, allBool, allDate := true, true, true, true
	seen := false

	for _, record := range body {
		if idx >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[idx])
		if cell == "" {
			continue
		}
		seen = true

		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			allFloat = false
		}
		// Bare 0/1 columns stay numeric, so only the words count as booleans.
		if lower := strings.ToLower(cell); lower != "true" && lower != "false" {
			allBool = false
		}
		if _, err := time.Parse("2006-01-02", cell); err != nil {
			allDate = false
		}
	}

	switch {
	case !seen:
		return schema.TypeText
	case allBool:
		return schema.TypeBoolean
	case allInt:
		return schema.TypeInteger
	case allFloat:
		return schema.TypeFloat
	case allDate:
		return schema.TypeDate
	default:
		return schema.TypeText
	}
}

func parseCell(cell string, t schema.ColumnType) any {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return ""
	}
	switch t {
	case schema.TypeInteger:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
	case schema.TypeFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
	case schema.TypeBoolean:
		if b, err := strconv.ParseBool(trimmed); err == nil {
			return b
		}
	}
	return cell
}
