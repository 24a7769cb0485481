package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"prowash_quote/internal/domain/entities"
	"prowash_quote/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "quote:session:"

// FlowSessionRedisRepository stores each session as JSON under
// quote:session:<id> with a TTL refreshed on every save.
type FlowSessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IFlowSessionRepository = (*FlowSessionRedisRepository)(nil)

func NewFlowSessionRedisRepository(client *redis.Client, ttl time.Duration) *FlowSessionRedisRepository {
	return &FlowSessionRedisRepository{client: client, ttl: ttl}
}

func (r *FlowSessionRedisRepository) Get(ctx context.Context, id string) (entities.FlowSession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.FlowSession{}, nil
	}
	if err != nil {
		return entities.FlowSession{}, fmt.Errorf("get session: %w", err)
	}

	var s entities.FlowSession
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.FlowSession{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return s, nil
}

func (r *FlowSessionRedisRepository) Save(ctx context.Context, s entities.FlowSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
