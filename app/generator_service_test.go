package app

import (
	"context"
	"errors"
	"testing"

	"datacraft/adapters/memory"
	"datacraft/domain/core"
	"datacraft/domain/dataset"
	"datacraft/domain/schema"
	"datacraft/internal"
	"datacraft/ports"
)

func newTestService(schemaGen ports.SchemaGeneratorPort) *GeneratorService {
	return NewGeneratorService(memory.NewDatasetRepository(), schemaGen, internal.NewLogger(internal.LogLevelError))
}

type stubSchemaGen struct {
	ds  *dataset.Generated
	err error
}

func (s *stubSchemaGen) GenerateFromPrompt(ctx context.Context, prompt string, rowCount int) (*dataset.Generated, error) {
	return s.ds, s.err
}

func TestGeneratorService_Generate(t *testing.T) {
	svc := newTestService(nil)
	columns := []schema.Column{{ID: "1", Name: "N", Type: schema.TypeInteger}}

	ds, stats, err := svc.Generate(columns, 25, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Data) != 25 || stats.RowCount != 25 || stats.ColumnCount != 1 {
		t.Errorf("generate/summary mismatch: %d rows, stats %+v", len(ds.Data), stats)
	}
	if stats.NumericalStats == nil {
		t.Error("expected numerical stats for integer column")
	}
}

func TestGeneratorService_GenerateFromTemplate(t *testing.T) {
	svc := newTestService(nil)

	ds, _, err := svc.GenerateFromTemplate("employees", 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Data) != 10 {
		t.Errorf("expected 10 rows, got %d", len(ds.Data))
	}

	if _, _, err := svc.GenerateFromTemplate("missing", 10, nil); !core.IsNotFoundError(err) {
		t.Errorf("expected not-found for unknown template, got %v", err)
	}
}

func TestGeneratorService_PromptFallbackWithoutModel(t *testing.T) {
	svc := newTestService(nil)

	ds, _, err := svc.GenerateFromPrompt(context.Background(), "customers", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Data) != 5 {
		t.Fatalf("fallback should generate locally, got %d rows", len(ds.Data))
	}
	names := ds.ColumnNames()
	if len(names) != 3 || names[0] != "Name" {
		t.Errorf("fallback schema unexpected: %v", names)
	}
}

func TestGeneratorService_PromptFallbackOnModelError(t *testing.T) {
	svc := newTestService(&stubSchemaGen{err: errors.New("quota exceeded")})

	ds, _, err := svc.GenerateFromPrompt(context.Background(), "customers", 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Data) != 4 {
		t.Errorf("expected fallback rows, got %d", len(ds.Data))
	}
}

func TestGeneratorService_PromptValidationErrorPropagates(t *testing.T) {
	svc := newTestService(&stubSchemaGen{err: core.ErrEmptyPrompt})

	_, _, err := svc.GenerateFromPrompt(context.Background(), "", 4)
	if !errors.Is(err, core.ErrEmptyPrompt) {
		t.Errorf("validation error must propagate, got %v", err)
	}
}

func TestGeneratorService_PromptUsesModelResult(t *testing.T) {
	modelDS := &dataset.Generated{
		Columns:  []schema.Column{{ID: "1", Name: "City", Type: schema.TypeText}},
		Data:     []dataset.Row{{"City": "Salem"}},
		RowCount: 1,
	}
	svc := newTestService(&stubSchemaGen{ds: modelDS})

	ds, stats, err := svc.GenerateFromPrompt(context.Background(), "cities", 1)
	if err != nil {
		t.Fatal(err)
	}
	if ds != modelDS || stats.RowCount != 1 {
		t.Error("model result should pass through untouched")
	}
}

func TestGeneratorService_SaveAndList(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	owner := core.NewID()

	ds, _, err := svc.Generate([]schema.Column{{ID: "1", Name: "N", Type: schema.TypeInteger}}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}

	saved, err := svc.Save(ctx, owner, "my data", "test fixture", "employees", ds)
	if err != nil {
		t.Fatal(err)
	}
	if saved.RowCount != 3 || saved.TemplateName != "employees" {
		t.Errorf("saved record wrong: %+v", saved)
	}

	list, err := svc.List(ctx, owner, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Errorf("list wrong: %+v", list)
	}

	if _, err := svc.Save(ctx, owner, "", "", "", ds); err == nil {
		t.Error("empty name must be rejected")
	}

	if err := svc.Delete(ctx, saved.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, saved.ID); !core.IsNotFoundError(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}
