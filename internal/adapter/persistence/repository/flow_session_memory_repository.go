package repository

import (
	"context"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase/interfaces"
	"sync"
	"time"
)

type memorySession struct {
	session   entities.FlowSession
	expiresAt time.Time
}

const memorySweepInterval = 5 * time.Minute

// FlowSessionMemoryRepository keeps flow sessions in process memory. Expired
// entries are dropped on read and by a background sweep until Stop is called.
type FlowSessionMemoryRepository struct {
	mu        sync.Mutex
	ttl       time.Duration
	sessions  map[string]memorySession
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

var _ interfaces.IFlowSessionRepository = (*FlowSessionMemoryRepository)(nil)

func NewFlowSessionMemoryRepository(ttl time.Duration) *FlowSessionMemoryRepository {
	r := &FlowSessionMemoryRepository{
		ttl:       ttl,
		sessions:  make(map[string]memorySession),
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
	go r.sweepLoop()
	return r
}

func (r *FlowSessionMemoryRepository) sweepLoop() {
	ticker := time.NewTicker(memorySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopSweep:
			return
		}
	}
}

func (r *FlowSessionMemoryRepository) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, it := range r.sessions {
		if !now.Before(it.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

func (r *FlowSessionMemoryRepository) Stop() {
	r.stopOnce.Do(func() { close(r.stopSweep) })
}

func (r *FlowSessionMemoryRepository) Get(_ context.Context, id string) (entities.FlowSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.sessions[id]
	if !ok {
		return entities.FlowSession{}, nil
	}
	if !r.now().Before(it.expiresAt) {
		delete(r.sessions, id)
		return entities.FlowSession{}, nil
	}
	return cloneSession(it.session), nil
}

func (r *FlowSessionMemoryRepository) Save(_ context.Context, s entities.FlowSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[s.ID] = memorySession{session: cloneSession(s), expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *FlowSessionMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func cloneSession(s entities.FlowSession) entities.FlowSession {
	if s.Record != nil {
		rec := *s.Record
		rec.AdditionalServices = append([]int(nil), s.Record.AdditionalServices...)
		s.Record = &rec
	}
	return s
}
