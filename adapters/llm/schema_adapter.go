package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
	"datacraft/ports"
)

const systemPromptTemplate = `You are a synthetic data generator. Based on the user's description, generate a dataset schema and sample data.

Your response must be valid JSON with this exact structure:
{
  "columns": [
    { "id": "1", "name": "column_name", "type": "type" }
  ],
  "data": [
    { "column_name": "value1" }
  ]
}

Column types can be: "name", "email", "integer", "float", "date", "boolean", "phone", "address", "company", "text"

Generate exactly %d rows of realistic synthetic data.
Only return the JSON, no markdown or explanations.`

// codeFence matches a fenced code block so replies wrapped in markdown still
// decode.
var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// SchemaAdapter implements SchemaGeneratorPort against a generative model.
type SchemaAdapter struct {
	client ModelClient
}

var _ ports.SchemaGeneratorPort = (*SchemaAdapter)(nil)

// NewSchemaAdapter creates a prompt-to-schema adapter.
func NewSchemaAdapter(config Config) (*SchemaAdapter, error) {
	client, err := newModelClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	return &SchemaAdapter{client: client}, nil
}

// NewSchemaAdapterWithClient wires an explicit client (tests, alternate providers).
func NewSchemaAdapterWithClient(client ModelClient) *SchemaAdapter {
	return &SchemaAdapter{client: client}
}

// GenerateFromPrompt asks the model for a schema plus data matching the
// free-text description and decodes it into the domain dataset shape.
func (a *SchemaAdapter) GenerateFromPrompt(ctx context.Context, prompt string, rowCount int) (*dataset.Generated, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, core.ErrEmptyPrompt
	}
	if rowCount <= 0 {
		rowCount = 100
	}

	systemPrompt := fmt.Sprintf(systemPromptTemplate, rowCount)
	reply, err := a.client.GenerateContent(ctx, systemPrompt, "Generate a dataset for: "+prompt)
	if err != nil {
		return nil, fmt.Errorf("schema generation failed: %w", err)
	}

	return decodeDataset(reply)
}

// decodeDataset parses the model reply, tolerating markdown code fences.
func decodeDataset(reply string) (*dataset.Generated, error) {
	jsonStr := strings.TrimSpace(reply)
	if m := codeFence.FindStringSubmatch(jsonStr); m != nil {
		jsonStr = strings.TrimSpace(m[1])
	}

	var payload struct {
		Columns []schema.Column `json:"columns"`
		Data    []dataset.Row   `json:"data"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}
	if len(payload.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", core.ErrMalformedResponse)
	}

	return &dataset.Generated{
		Columns:  payload.Columns,
		Data:     payload.Data,
		RowCount: len(payload.Data),
	}, nil
}
