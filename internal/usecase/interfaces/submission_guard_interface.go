package interfaces

import "context"

// ISubmissionGuard is a single-flight lock keyed by flow session id. Acquire
// returns false when a submission for the key is already in flight.
type ISubmissionGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
