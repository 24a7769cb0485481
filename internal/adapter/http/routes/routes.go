package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "prowash_quote/docs"
	"prowash_quote/internal/adapter/http/handlers"
	"prowash_quote/internal/adapter/http/middleware"
	"prowash_quote/internal/adapter/http/templates"
	"prowash_quote/internal/adapter/persistence/repository"
	"prowash_quote/internal/config"
	"prowash_quote/internal/infrastructure/database"
	"prowash_quote/internal/infrastructure/relay"
	"prowash_quote/internal/usecase"
	"prowash_quote/internal/usecase/interfaces"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the handlers and cross-cutting pieces mounted by NewRouter.
type Dependencies struct {
	EstimateHandler *handlers.EstimateHandler
	FlowHandler     *handlers.FlowHandler
	PageHandler     *handlers.PageHandler
	RateLimiter     *middleware.RateLimiter
	Logger          *zap.Logger
}

// NewRouter builds the gin engine. The rate limit covers every route that
// creates or mutates a session, or reaches the relay.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	tmpl, err := templates.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.SetHTMLTemplate(tmpl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limit := middleware.RateLimit(deps.RateLimiter, deps.Logger)
	addPageRoutes(router.Group("", limit), deps.PageHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1.Group("", limit), deps.EstimateHandler, deps.FlowHandler)

	return router, nil
}

// Run wires the application from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	repo, guard, closeStore, err := buildSessionStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	gateway, err := relay.NewWeb3FormsGateway(relay.Config{
		Endpoint:  cfg.Relay.Endpoint,
		AccessKey: cfg.Relay.AccessKey,
		Subject:   cfg.Relay.Subject,
		FromName:  cfg.Relay.FromName,
		Timeout:   cfg.Relay.Timeout,
		Mock:      cfg.RelayMockEnabled(),
	}, logger)
	if err != nil {
		return fmt.Errorf("relay gateway: %w", err)
	}

	estimateUseCase := usecase.NewEstimateUseCase()
	submissionUseCase := usecase.NewSubmissionUseCase(gateway, logger)
	flowUseCase := usecase.NewFlowUseCase(repo, guard, submissionUseCase, logger)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
	defer rateLimiter.Stop()

	router, err := NewRouter(Dependencies{
		EstimateHandler: handlers.NewEstimateHandler(estimateUseCase),
		FlowHandler:     handlers.NewFlowHandler(flowUseCase),
		PageHandler:     handlers.NewPageHandler(flowUseCase, cfg.Session.TTL, cfg.CookieSecure, logger),
		RateLimiter:     rateLimiter,
		Logger:          logger,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Relay.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server exited")
	return nil
}

// buildSessionStore picks the flow session backend. The submission guard
// lives next to the sessions when Redis is available so it holds across
// replicas. The memory and DynamoDB stores pair with the in-process guard,
// which only prevents duplicate relay calls within one replica.
func buildSessionStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IFlowSessionRepository, interfaces.ISubmissionGuard, func(), error) {
	noop := func() {}

	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		client, err := database.ConnectRedis(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, nil, noop, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Redis close failed", zap.Error(err))
			}
		}
		guardTTL := 2 * cfg.Relay.Timeout
		return repository.NewFlowSessionRedisRepository(client, cfg.Session.TTL),
			repository.NewSubmissionGuardRedis(client, guardTTL), closeFn, nil

	case config.SessionStoreDynamoDB:
		logger.Warn("Submission guard is process-local with the DynamoDB store; duplicate confirmations are only blocked within a single replica",
			zap.String("session_store", cfg.Session.Store))
		client, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Endpoint:        cfg.AWS.DynamoDBEndpoint,
			Table:           cfg.Session.Table,
		}, logger)
		if err != nil {
			return nil, nil, noop, err
		}
		return repository.NewFlowSessionDynamoRepository(client, cfg.Session.Table, cfg.Session.TTL),
			repository.NewSubmissionGuardMemory(), noop, nil

	default:
		logger.Info("Using in-memory session store")
		repo := repository.NewFlowSessionMemoryRepository(cfg.Session.TTL)
		return repo, repository.NewSubmissionGuardMemory(), repo.Stop, nil
	}
}
