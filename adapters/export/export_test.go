package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacraft/domain/dataset"
	"datacraft/domain/schema"
)

func exportFixture() *dataset.Generated {
	return &dataset.Generated{
		Columns: []schema.Column{
			{ID: "1", Name: "Name", Type: schema.TypeName},
			{ID: "2", Name: "Age", Type: schema.TypeInteger},
			{ID: "3", Name: "Active", Type: schema.TypeBoolean},
		},
		Data: []dataset.Row{
			{"Name": "Jane Smith", "Age": 34, "Active": true},
			{"Name": "", "Age": 41.0, "Active": false},
			{"Name": "Bob Jones", "Age": nil, "Active": true},
		},
		RowCount: 3,
	}
}

func TestCSVExporter_HeaderOrderAndCoercion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSVExporter{}.Encode(&buf, exportFixture()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"Name", "Age", "Active"}, records[0])
	assert.Equal(t, []string{"Jane Smith", "34", "true"}, records[1])
	assert.Equal(t, []string{"", "41", "false"}, records[2])
	// nil renders as empty string, never "nil"
	assert.Equal(t, []string{"Bob Jones", "", "true"}, records[3])
}

func TestJSONExporter_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONExporter{}.Encode(&buf, exportFixture()))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Jane Smith", rows[0]["Name"])
	assert.Equal(t, float64(34), rows[0]["Age"])
}

func TestExcelExporter_WritesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExcelExporter{}.Encode(&buf, exportFixture()))
	assert.Greater(t, buf.Len(), 0)
	// xlsx files are zip archives
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"csv", "json", "xlsx"} {
		e, err := ForFormat(format)
		require.NoError(t, err)
		assert.Equal(t, format, e.FileExtension())
	}
	_, err := ForFormat("pdf")
	assert.Error(t, err)
}

func TestDisplayString(t *testing.T) {
	assert.Equal(t, "", DisplayString(nil))
	assert.Equal(t, "x", DisplayString("x"))
	assert.Equal(t, "3.5", DisplayString(3.5))
	assert.Equal(t, "42", DisplayString(42))
	assert.Equal(t, "true", DisplayString(true))
}
