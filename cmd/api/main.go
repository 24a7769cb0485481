package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	_ "prowash_quote/docs"
	"prowash_quote/internal/adapter/http/routes"
	"prowash_quote/internal/config"
	"prowash_quote/pkg/logger"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Pro-Wash Quote API
// @version         1.0
// @description     Instant pressure-washing quotes: intake, estimate, confirmation and lead relay.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Error("Failed to startup the application", zap.Error(err))
		stop()
		_ = zapLogger.Sync()
		os.Exit(1)
	}
}
