package repository

import (
	"context"
	"prowash_quote/internal/usecase/interfaces"
	"sync"
)

// SubmissionGuardMemory is an in-process single-flight lock. It only protects
// a single replica; use SubmissionGuardRedis when running several.
type SubmissionGuardMemory struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ interfaces.ISubmissionGuard = (*SubmissionGuardMemory)(nil)

func NewSubmissionGuardMemory() *SubmissionGuardMemory {
	return &SubmissionGuardMemory{inFlight: make(map[string]struct{})}
}

func (g *SubmissionGuardMemory) Acquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[key]; busy {
		return false, nil
	}
	g.inFlight[key] = struct{}{}
	return true, nil
}

func (g *SubmissionGuardMemory) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, key)
	return nil
}
