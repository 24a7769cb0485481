package interfaces

import (
	"context"
	"prowash_quote/internal/domain/entities"
)

// IRelayGateway forwards a lead to the external form-relay service.
//
// Implementations return *entities.TransportError when the relay cannot be
// reached and *entities.RelayRejectedError when it answers without success.
type IRelayGateway interface {
	Submit(ctx context.Context, lead entities.LeadSubmission) (entities.RelayReceipt, error)
}
