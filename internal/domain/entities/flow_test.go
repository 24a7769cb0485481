package entities

import (
	"errors"
	"testing"
	"time"
)

func TestFlowSession_Transitions(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := IntakeRecord{Name: "A", Phone: "555", Address: "1 Main St", PropertyType: PropertyTypeResidential, PropertySize: 1000, SurfaceCondition: 3}

	s := NewFlowSession("s-1", now)
	if s.Stage != FlowStageCollecting || s.Record != nil {
		t.Fatalf("unexpected initial session: %+v", s)
	}

	t.Run("completed while collecting", func(t *testing.T) {
		_, err := s.Completed(now)
		if !errors.Is(err, ErrInvalidFlowTransition) {
			t.Fatalf("expected ErrInvalidFlowTransition, got %v", err)
		}
	})

	later := now.Add(time.Minute)
	confirming, err := s.Validated(rec, later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirming.Stage != FlowStageConfirming || confirming.Record == nil || confirming.Record.Name != "A" {
		t.Fatalf("unexpected confirming session: %+v", confirming)
	}
	if !confirming.UpdatedAt.Equal(later) || !confirming.CreatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", confirming)
	}
	if s.Record != nil {
		t.Fatalf("transition must not mutate the receiver")
	}

	t.Run("validated while confirming", func(t *testing.T) {
		_, err := confirming.Validated(rec, later)
		if !errors.Is(err, ErrInvalidFlowTransition) {
			t.Fatalf("expected ErrInvalidFlowTransition, got %v", err)
		}
	})

	collecting, err := confirming.Completed(later)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if collecting.Stage != FlowStageCollecting || collecting.Record != nil {
		t.Fatalf("expected reset session, got %+v", collecting)
	}
}
