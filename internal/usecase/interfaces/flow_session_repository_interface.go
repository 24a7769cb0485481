package interfaces

import (
	"context"
	"prowash_quote/internal/domain/entities"
)

// IFlowSessionRepository keeps the transient per-visitor flow state.
//
// Get returns a zero FlowSession (empty ID) when the session is unknown or
// expired. Save upserts and refreshes the TTL.

type IFlowSessionRepository interface {
	Get(ctx context.Context, id string) (entities.FlowSession, error)
	Save(ctx context.Context, s entities.FlowSession) error
}
