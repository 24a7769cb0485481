package usecase

import (
	"errors"
	"prowash_quote/internal/domain/entities"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func record(size float64, condition int, services ...int) entities.IntakeRecord {
	return entities.IntakeRecord{
		Name:               "A",
		Phone:              "555",
		Address:            "1 Main St",
		PropertyType:       entities.PropertyTypeResidential,
		PropertySize:       size,
		SurfaceCondition:   condition,
		AdditionalServices: services,
	}
}

func TestEstimate_Scenarios(t *testing.T) {
	t.Run("with add-ons", func(t *testing.T) {
		q := Estimate(record(1000, 3, 70, 35))
		if q.Multiplier != 5 || q.BaseCost != 5000 || q.AddOnTotal != 105 || q.TotalCost != 5105 {
			t.Fatalf("unexpected quote: %+v", q)
		}
		want := []entities.LineItem{
			{ID: 70, Label: "Roof Cleaning", Fee: 70},
			{ID: 35, Label: "Window Cleaning", Fee: 35},
		}
		if diff := cmp.Diff(want, q.ItemizedServices); diff != "" {
			t.Fatalf("unexpected items (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"Roof Cleaning ($70)", "Window Cleaning ($35)"}, q.ServiceLabels()); diff != "" {
			t.Fatalf("unexpected labels (-want +got):\n%s", diff)
		}
	})

	t.Run("no add-ons", func(t *testing.T) {
		q := Estimate(record(200, 1))
		if q.Multiplier != 2 || q.TotalCost != 400 {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if len(q.ItemizedServices) != 0 {
			t.Fatalf("expected no items, got %v", q.ItemizedServices)
		}
	})

	t.Run("unknown service id", func(t *testing.T) {
		q := Estimate(record(200, 1, 999))
		if q.TotalCost != 400 || q.AddOnTotal != 0 || len(q.ItemizedServices) != 0 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("out of range condition", func(t *testing.T) {
		q := Estimate(record(1000, 7, 45))
		if q.Multiplier != 0 || q.BaseCost != 0 || q.TotalCost != 45 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("fractional size kept as is", func(t *testing.T) {
		q := Estimate(record(100.5, 4))
		if q.TotalCost != 703.5 {
			t.Fatalf("expected 703.5, got %v", q.TotalCost)
		}
	})
}

func TestEstimate_TotalFormula(t *testing.T) {
	for condition := -1; condition <= 7; condition++ {
		for _, services := range [][]int{nil, {70}, {45, 35}, {70, 45, 35}, {1, 70}} {
			rec := record(321, condition, services...)
			q := Estimate(rec)

			want := entities.ConditionMultiplier(condition) * 321
			for _, id := range services {
				if s, ok := entities.LookupService(id); ok {
					want += s.Fee
				}
			}
			if q.TotalCost != want {
				t.Fatalf("condition=%d services=%v: expected %v, got %v", condition, services, want, q.TotalCost)
			}
		}
	}
}

func TestEstimateUseCase_EstimateIntake(t *testing.T) {
	uc := NewEstimateUseCase()

	q, err := uc.EstimateIntake(validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalCost != 5105 {
		t.Fatalf("expected 5105, got %v", q.TotalCost)
	}

	bad := validForm()
	bad.Phone = ""
	if _, err := uc.EstimateIntake(bad); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestEstimateUseCase_Catalog(t *testing.T) {
	c := NewEstimateUseCase().Catalog()
	if len(c.Services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(c.Services))
	}
	want := map[int]float64{1: 2, 2: 4, 3: 5, 4: 7, 5: 9}
	if diff := cmp.Diff(want, c.ConditionMultipliers); diff != "" {
		t.Fatalf("unexpected multipliers (-want +got):\n%s", diff)
	}
}
