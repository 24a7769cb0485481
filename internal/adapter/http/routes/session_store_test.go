package routes

import (
	"context"
	"testing"
	"time"

	"prowash_quote/internal/adapter/persistence/repository"
	"prowash_quote/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildSessionStore_Memory(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{Session: config.SessionConfig{Store: config.SessionStoreMemory, TTL: time.Hour}}

	repo, guard, closeFn, err := buildSessionStore(context.Background(), cfg, zap.New(core))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*repository.FlowSessionMemoryRepository); !ok {
		t.Fatalf("expected memory repository, got %T", repo)
	}
	if _, ok := guard.(*repository.SubmissionGuardMemory); !ok {
		t.Fatalf("expected memory guard, got %T", guard)
	}
	if got := logs.FilterLevelExact(zapcore.WarnLevel).Len(); got != 0 {
		t.Fatalf("expected no warnings for the memory store, got %d", got)
	}
}

func TestBuildSessionStore_DynamoDBWarnsAboutLocalGuard(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config.Config{
		Session: config.SessionConfig{Store: config.SessionStoreDynamoDB, TTL: time.Hour, Table: "quote_sessions"},
		AWS:     config.AWSConfig{Region: "us-east-1", DynamoDBEndpoint: "http://127.0.0.1:1"},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, _, err := buildSessionStore(ctx, cfg, zap.New(core)); err == nil {
		t.Fatalf("expected connect error with a cancelled context")
	}

	warns := logs.FilterLevelExact(zapcore.WarnLevel).FilterField(zap.String("session_store", config.SessionStoreDynamoDB))
	if warns.Len() != 1 {
		t.Fatalf("expected one process-local guard warning, got %d", warns.Len())
	}
}
