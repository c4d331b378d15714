package stats

import (
	"math"
	"testing"

	"datacraft/domain/dataset"
	"datacraft/domain/schema"
)

func TestProfile_PerColumnBreakdown(t *testing.T) {
	ds := &dataset.Generated{
		Columns: []schema.Column{
			{ID: "1", Name: "City", Type: schema.TypeCity},
			{ID: "2", Name: "Pop", Type: schema.TypeInteger},
		},
		Data: []dataset.Row{
			{"City": "Salem", "Pop": 10},
			{"City": "Dover", "Pop": 20},
			{"City": "Salem", "Pop": 30},
			{"City": "", "Pop": ""},
		},
	}

	profiles := Profile(ds)
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	city := profiles[0]
	if city.Name != "City" || city.UniqueCount != 2 || city.MissingCount != 1 {
		t.Errorf("city profile wrong: %+v", city)
	}
	if city.Numeric != nil {
		t.Error("non-numeric column must not carry a numeric profile")
	}

	pop := profiles[1]
	if pop.MissingCount != 1 || pop.UniqueCount != 3 {
		t.Errorf("pop counts wrong: %+v", pop)
	}
	if pop.Numeric == nil {
		t.Fatal("numeric column missing numeric profile")
	}
	if pop.Numeric.Min != 10 || pop.Numeric.Max != 30 || pop.Numeric.Mean != 20 {
		t.Errorf("numeric profile wrong: %+v", *pop.Numeric)
	}
	if pop.Numeric.StdDev != 10 {
		t.Errorf("stddev = %v, want 10", pop.Numeric.StdDev)
	}
}

func TestProfile_SingleValueStdDevIsZero(t *testing.T) {
	ds := &dataset.Generated{
		Columns: []schema.Column{{ID: "1", Name: "N", Type: schema.TypeFloat}},
		Data:    []dataset.Row{{"N": 2.5}},
	}
	p := Profile(ds)[0]
	if p.Numeric == nil {
		t.Fatal("expected numeric profile")
	}
	if p.Numeric.StdDev != 0 || math.IsNaN(p.Numeric.StdDev) {
		t.Errorf("stddev for single value = %v, want 0", p.Numeric.StdDev)
	}
}
