package entities

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidFlowTransition = errors.New("invalid flow transition")

// FlowStage is the state of a visitor's quote flow.
//
// The flow is a two-state machine:
//
//	collecting --validated--> confirming
//	confirming --completed--> collecting
type FlowStage string

const (
	FlowStageCollecting FlowStage = "collecting"
	FlowStageConfirming FlowStage = "confirming"
)

type FlowEvent string

const (
	FlowEventValidated FlowEvent = "validated"
	FlowEventCompleted FlowEvent = "completed"
)

// FlowSession holds the transient state of one visitor. Record is set exactly
// when Stage is confirming.
type FlowSession struct {
	ID        string        `json:"id"`
	Stage     FlowStage     `json:"stage"`
	Record    *IntakeRecord `json:"record,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewFlowSession starts a session in the collecting stage.
func NewFlowSession(id string, now time.Time) FlowSession {
	return FlowSession{
		ID:        id,
		Stage:     FlowStageCollecting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validated moves a collecting session to confirming with the given record.
func (s FlowSession) Validated(record IntakeRecord, now time.Time) (FlowSession, error) {
	if s.Stage != FlowStageCollecting {
		return s, transitionError(s.Stage, FlowEventValidated)
	}
	rec := record
	s.Stage = FlowStageConfirming
	s.Record = &rec
	s.UpdatedAt = now
	return s, nil
}

// Completed moves a confirming session back to collecting and drops the record.
func (s FlowSession) Completed(now time.Time) (FlowSession, error) {
	if s.Stage != FlowStageConfirming {
		return s, transitionError(s.Stage, FlowEventCompleted)
	}
	s.Stage = FlowStageCollecting
	s.Record = nil
	s.UpdatedAt = now
	return s, nil
}

func transitionError(stage FlowStage, event FlowEvent) error {
	return fmt.Errorf("%w: %s on %s", ErrInvalidFlowTransition, event, stage)
}
