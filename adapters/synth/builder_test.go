package synth

import (
	"errors"
	"reflect"
	"testing"

	"datacraft/domain/core"
	"datacraft/domain/schema"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }
func sp(v int64) *int64     { return &v }

func testColumns() []schema.Column {
	return []schema.Column{
		{ID: "1", Name: "Name", Type: schema.TypeName},
		{ID: "2", Name: "Age", Type: schema.TypeInteger, Options: &schema.Options{Min: fp(18), Max: fp(65)}},
		{ID: "3", Name: "Active", Type: schema.TypeBoolean},
	}
}

func TestBuild_RowCount(t *testing.T) {
	for _, n := range []int{0, 1, 10, 250} {
		ds, err := Build(testColumns(), n, nil)
		if err != nil {
			t.Fatalf("Build(%d) returned error: %v", n, err)
		}
		if len(ds.Data) != n {
			t.Errorf("Build(%d) produced %d rows", n, len(ds.Data))
		}
		if ds.RowCount != n {
			t.Errorf("Build(%d) recorded RowCount %d", n, ds.RowCount)
		}
	}
}

func TestBuild_NegativeRowCount(t *testing.T) {
	_, err := Build(testColumns(), -1, nil)
	if !errors.Is(err, core.ErrInvalidRowCount) {
		t.Fatalf("expected ErrInvalidRowCount, got %v", err)
	}
}

func TestBuild_DeterministicUnderSeed(t *testing.T) {
	seed := sp(42)
	first, err := Build(testColumns(), 50, seed)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build(testColumns(), 50, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Data, second.Data) {
		t.Error("two builds with the same seed produced different data")
	}
}

func TestBuild_DifferentSeedsDiverge(t *testing.T) {
	first, _ := Build(testColumns(), 50, sp(1))
	second, _ := Build(testColumns(), 50, sp(2))
	if reflect.DeepEqual(first.Data, second.Data) {
		t.Error("different seeds produced identical data; generator is not consuming the seed")
	}
}

func TestBuild_RowKeysMatchSchema(t *testing.T) {
	columns := testColumns()
	ds, err := Build(columns, 20, sp(7))
	if err != nil {
		t.Fatal(err)
	}
	for i, row := range ds.Data {
		if len(row) != len(columns) {
			t.Fatalf("row %d has %d fields, want %d", i, len(row), len(columns))
		}
		for _, col := range columns {
			if _, ok := row[col.Name]; !ok {
				t.Errorf("row %d missing key %q", i, col.Name)
			}
		}
	}
}

func TestBuild_EmptySchema(t *testing.T) {
	ds, err := Build(nil, 5, nil)
	if err != nil {
		t.Fatalf("empty schema should not error: %v", err)
	}
	if len(ds.Data) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(ds.Data))
	}
	for i, row := range ds.Data {
		if len(row) != 0 {
			t.Errorf("row %d should be an empty mapping, has %d fields", i, len(row))
		}
	}
}

func TestBuild_RejectsInvertedBounds(t *testing.T) {
	columns := []schema.Column{
		{ID: "1", Name: "Score", Type: schema.TypeInteger, Options: &schema.Options{Min: fp(100), Max: fp(10)}},
	}
	_, err := Build(columns, 10, nil)
	if !errors.Is(err, core.ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestBuild_RejectsDuplicateColumnNames(t *testing.T) {
	columns := []schema.Column{
		{ID: "1", Name: "Name", Type: schema.TypeName},
		{ID: "2", Name: "Name", Type: schema.TypeEmail},
	}
	_, err := Build(columns, 10, nil)
	if !errors.Is(err, core.ErrDuplicateColumn) {
		t.Fatalf("expected ErrDuplicateColumn, got %v", err)
	}
}

func TestBuild_ValuesAreSerializationSafe(t *testing.T) {
	columns := []schema.Column{
		{ID: "1", Name: "Name", Type: schema.TypeName},
		{ID: "2", Name: "Count", Type: schema.TypeInteger},
		{ID: "3", Name: "Rate", Type: schema.TypeFloat},
		{ID: "4", Name: "Active", Type: schema.TypeBoolean},
		{ID: "5", Name: "When", Type: schema.TypeDate},
	}
	ds, err := Build(columns, 10, sp(3))
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range ds.Data {
		for name, v := range row {
			switch v.(type) {
			case string, int, int64, float64, bool:
			default:
				t.Fatalf("column %q produced non-JSON-safe value %T", name, v)
			}
		}
	}
}
