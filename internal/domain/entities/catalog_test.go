package entities

import "testing"

func TestConditionMultiplier(t *testing.T) {
	cases := map[int]float64{
		1:  2,
		2:  4,
		3:  5,
		4:  7,
		5:  9,
		0:  0,
		6:  0,
		-1: 0,
	}
	for condition, want := range cases {
		if got := ConditionMultiplier(condition); got != want {
			t.Fatalf("condition %d: expected %v, got %v", condition, want, got)
		}
	}
}

func TestLookupService(t *testing.T) {
	s, ok := LookupService(ServiceRoofCleaning)
	if !ok || s.Fee != 70 || s.Label != "Roof Cleaning" {
		t.Fatalf("unexpected service: %+v ok=%v", s, ok)
	}
	if got := s.DisplayLabel(); got != "Roof Cleaning ($70)" {
		t.Fatalf("unexpected display label %q", got)
	}

	if _, ok := LookupService(999); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestServiceCatalog_ReturnsCopy(t *testing.T) {
	c := ServiceCatalog()
	if len(c) != 3 {
		t.Fatalf("expected 3 services, got %d", len(c))
	}
	c[0].Fee = 1

	if s, _ := LookupService(c[0].ID); s.Fee == 1 {
		t.Fatalf("catalog must not be mutable through the returned slice")
	}
}

func TestFormatPrice(t *testing.T) {
	cases := map[float64]string{
		5105:   "$5105",
		400:    "$400",
		1000.5: "$1000.5",
		0:      "$0",
		1e7:    "$10000000",
	}
	for v, want := range cases {
		if got := FormatPrice(v); got != want {
			t.Fatalf("FormatPrice(%v): expected %q, got %q", v, want, got)
		}
	}
}

func TestPropertyType_Valid(t *testing.T) {
	if !PropertyTypeResidential.Valid() || !PropertyTypeCommercial.Valid() {
		t.Fatalf("expected known property types to be valid")
	}
	if PropertyType("industrial").Valid() || PropertyType("").Valid() {
		t.Fatalf("expected unknown property types to be invalid")
	}
}
