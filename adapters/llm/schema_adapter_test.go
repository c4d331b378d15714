package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacraft/domain/core"
	"datacraft/domain/schema"
)

const fencedReply = "```json\n" + `{
  "columns": [
    { "id": "1", "name": "Name", "type": "name" },
    { "id": "2", "name": "Revenue", "type": "integer" }
  ],
  "data": [
    { "Name": "Acme Corp", "Revenue": 1200 },
    { "Name": "Globex Inc", "Revenue": 800 }
  ]
}` + "\n```"

func TestSchemaAdapter_DecodesFencedJSON(t *testing.T) {
	adapter := NewSchemaAdapterWithClient(&MockModelClient{Response: fencedReply})

	ds, err := adapter.GenerateFromPrompt(context.Background(), "companies with revenue", 2)
	require.NoError(t, err)

	require.Len(t, ds.Columns, 2)
	assert.Equal(t, "Name", ds.Columns[0].Name)
	assert.Equal(t, schema.TypeInteger, ds.Columns[1].Type)
	require.Len(t, ds.Data, 2)
	assert.Equal(t, 2, ds.RowCount)
	assert.Equal(t, "Acme Corp", ds.Data[0]["Name"])
}

func TestSchemaAdapter_BareJSON(t *testing.T) {
	adapter := NewSchemaAdapterWithClient(&MockModelClient{
		Response: `{"columns":[{"id":"1","name":"City","type":"text"}],"data":[{"City":"Salem"}]}`,
	})
	ds, err := adapter.GenerateFromPrompt(context.Background(), "cities", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.RowCount)
}

func TestSchemaAdapter_EmptyPrompt(t *testing.T) {
	adapter := NewSchemaAdapterWithClient(&MockModelClient{})
	_, err := adapter.GenerateFromPrompt(context.Background(), "   ", 10)
	assert.ErrorIs(t, err, core.ErrEmptyPrompt)
}

func TestSchemaAdapter_MalformedReply(t *testing.T) {
	adapter := NewSchemaAdapterWithClient(&MockModelClient{Response: "sorry, I cannot do that"})
	_, err := adapter.GenerateFromPrompt(context.Background(), "anything", 10)
	assert.ErrorIs(t, err, core.ErrMalformedResponse)
}

func TestSchemaAdapter_NoColumns(t *testing.T) {
	adapter := NewSchemaAdapterWithClient(&MockModelClient{Response: `{"columns":[],"data":[]}`})
	_, err := adapter.GenerateFromPrompt(context.Background(), "anything", 10)
	assert.ErrorIs(t, err, core.ErrMalformedResponse)
}

func TestSchemaAdapter_ClientError(t *testing.T) {
	boom := errors.New("model unavailable")
	adapter := NewSchemaAdapterWithClient(&MockModelClient{Error: boom})
	_, err := adapter.GenerateFromPrompt(context.Background(), "anything", 10)
	assert.ErrorIs(t, err, boom)
}

func TestNewSchemaAdapter_RequiresKey(t *testing.T) {
	_, err := NewSchemaAdapter(Config{})
	assert.Error(t, err)
}
