package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/get2wurk/get2wurk-api/internal/app"
	"github.com/get2wurk/get2wurk-api/internal/config"
	"github.com/get2wurk/get2wurk-api/internal/metrics"
	"github.com/get2wurk/get2wurk-api/pkg/logger"
)

// @title GET2WURK API
// @version 1.0
// @description Commute recommendations for NYC: CitiBike availability, weather and MTA alerts behind one API
// @host localhost:8000
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.LogsPath, "get2wurk-api")
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	met := metrics.NewMetrics("get2wurk")

	application := app.New(*cfg, l, met)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panic(err)
	}
}
