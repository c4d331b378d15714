package app

import (
	"context"
	"fmt"

	"datacraft/adapters/stats"
	"datacraft/adapters/synth"
	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
	"datacraft/internal"
	"datacraft/ports"
)

// GeneratorService orchestrates dataset generation, statistics and
// persistence for the HTTP and CLI surfaces.
type GeneratorService struct {
	repo      ports.DatasetRepository
	schemaGen ports.SchemaGeneratorPort // nil when no model service is configured
	log       *internal.Logger
}

// NewGeneratorService wires the generator service.
func NewGeneratorService(repo ports.DatasetRepository, schemaGen ports.SchemaGeneratorPort, log *internal.Logger) *GeneratorService {
	return &GeneratorService{repo: repo, schemaGen: schemaGen, log: log}
}

// Generate builds a dataset from an explicit schema and summarizes it.
func (s *GeneratorService) Generate(columns []schema.Column, rowCount int, seed *int64) (*dataset.Generated, dataset.Stats, error) {
	ds, err := synth.Build(columns, rowCount, seed)
	if err != nil {
		return nil, dataset.Stats{}, err
	}
	return ds, stats.Summarize(ds), nil
}

// Summarize recomputes the sanity summary for an existing dataset.
func (s *GeneratorService) Summarize(ds *dataset.Generated) dataset.Stats {
	return stats.Summarize(ds)
}

// GenerateFromTemplate builds a dataset from a built-in template.
func (s *GeneratorService) GenerateFromTemplate(templateID string, rowCount int, seed *int64) (*dataset.Generated, dataset.Stats, error) {
	tpl, err := schema.TemplateByID(templateID)
	if err != nil {
		return nil, dataset.Stats{}, err
	}
	return s.Generate(tpl.Columns, rowCount, seed)
}

// defaultPromptColumns is the offline fallback schema used when no model
// service is configured or the call fails.
func defaultPromptColumns() []schema.Column {
	min18, max65 := 18.0, 65.0
	return []schema.Column{
		{ID: "1", Name: "Name", Type: schema.TypeName},
		{ID: "2", Name: "Email", Type: schema.TypeEmail},
		{ID: "3", Name: "Age", Type: schema.TypeInteger, Options: &schema.Options{Min: &min18, Max: &max65}},
	}
}

// GenerateFromPrompt asks the model service for a schema and data. When the
// service is unavailable it degrades to a locally generated default schema
// rather than failing the request.
func (s *GeneratorService) GenerateFromPrompt(ctx context.Context, prompt string, rowCount int) (*dataset.Generated, dataset.Stats, error) {
	if s.schemaGen != nil {
		ds, err := s.schemaGen.GenerateFromPrompt(ctx, prompt, rowCount)
		if err == nil {
			return ds, stats.Summarize(ds), nil
		}
		if core.IsValidationError(err) {
			return nil, dataset.Stats{}, err
		}
		s.log.Warn("prompt generation failed, falling back to default schema: %v", err)
	}
	return s.Generate(defaultPromptColumns(), rowCount, nil)
}

// Save persists a generated dataset for an owner.
func (s *GeneratorService) Save(ctx context.Context, ownerID core.ID, name, description, templateName string, ds *dataset.Generated) (*dataset.Saved, error) {
	if name == "" {
		return nil, core.NewValidationError("name", "cannot be empty")
	}
	saved := dataset.NewSaved(ownerID, name, description, templateName, ds)
	if err := s.repo.Create(ctx, saved); err != nil {
		return nil, fmt.Errorf("save dataset: %w", err)
	}
	s.log.Info("saved dataset %s (%d rows, %d columns)", saved.ID, saved.RowCount, len(saved.Columns))
	return saved, nil
}

// List returns an owner's saved datasets, newest first.
func (s *GeneratorService) List(ctx context.Context, ownerID core.ID, limit, offset int) ([]*dataset.Saved, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

// Get returns one saved dataset.
func (s *GeneratorService) Get(ctx context.Context, id core.ID) (*dataset.Saved, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a saved dataset.
func (s *GeneratorService) Delete(ctx context.Context, id core.ID) error {
	return s.repo.Delete(ctx, id)
}
