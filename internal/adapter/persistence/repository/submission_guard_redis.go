package repository

import (
	"context"
	"fmt"
	"prowash_quote/internal/usecase/interfaces"
	"time"

	"github.com/redis/go-redis/v9"
)

const submitLockPrefix = "quote:submit:"

// SubmissionGuardRedis is a SETNX lock shared by every replica. The lock
// expires on its own if a replica dies mid-submission.
type SubmissionGuardRedis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISubmissionGuard = (*SubmissionGuardRedis)(nil)

func NewSubmissionGuardRedis(client *redis.Client, ttl time.Duration) *SubmissionGuardRedis {
	return &SubmissionGuardRedis{client: client, ttl: ttl}
}

func (g *SubmissionGuardRedis) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := g.client.SetNX(ctx, submitLockPrefix+key, 1, g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire submit lock: %w", err)
	}
	return ok, nil
}

func (g *SubmissionGuardRedis) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, submitLockPrefix+key).Err(); err != nil {
		return fmt.Errorf("release submit lock: %w", err)
	}
	return nil
}
