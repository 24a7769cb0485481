package request

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntakeRequest_ToIntakeForm(t *testing.T) {
	size := 1000.0
	r := IntakeRequest{Name: "A", PropertySize: &size, AdditionalServices: []int{70}}

	f := r.ToIntakeForm()
	if f.SurfaceCondition != 3 {
		t.Fatalf("expected default condition 3, got %d", f.SurfaceCondition)
	}
	if f.PropertySize == nil || *f.PropertySize != 1000 {
		t.Fatalf("unexpected size: %v", f.PropertySize)
	}

	c := 5
	r.SurfaceCondition = &c
	if got := r.ToIntakeForm().SurfaceCondition; got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestIntakeFormRequest_ToIntakeForm(t *testing.T) {
	r := IntakeFormRequest{
		Name:               "A",
		PropertySize:       " 1200.5 ",
		SurfaceCondition:   "4",
		AdditionalServices: []string{"70", "x", " 35"},
	}
	f := r.ToIntakeForm()
	if f.PropertySize == nil || *f.PropertySize != 1200.5 {
		t.Fatalf("unexpected size: %v", f.PropertySize)
	}
	if f.SurfaceCondition != 4 {
		t.Fatalf("expected 4, got %d", f.SurfaceCondition)
	}
	if diff := cmp.Diff([]int{70, 35}, f.AdditionalServices); diff != "" {
		t.Fatalf("unexpected services (-want +got):\n%s", diff)
	}

	cases := map[string]bool{"": true, "abc": true, "NaN": true, "Inf": true}
	for raw := range cases {
		if got := (IntakeFormRequest{PropertySize: raw}).ToIntakeForm().PropertySize; got != nil {
			t.Fatalf("expected nil size for %q, got %v", raw, *got)
		}
	}

	if got := (IntakeFormRequest{}).ToIntakeForm().SurfaceCondition; got != 3 {
		t.Fatalf("expected default condition, got %d", got)
	}
	if got := (IntakeFormRequest{SurfaceCondition: "high"}).ToIntakeForm().SurfaceCondition; got != 0 {
		t.Fatalf("expected 0 for unparsable condition, got %d", got)
	}
}
