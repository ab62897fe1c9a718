package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"wolf-ai/internal/ai"
	"wolf-ai/internal/config"
	"wolf-ai/internal/server"
	"wolf-ai/internal/service"
	"wolf-ai/internal/store"
	"wolf-ai/internal/trainer"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Local development keeps secrets in .env; absence is fine in production.
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.New(logger)

	aiClient := ai.NewClient(ai.Config{
		GroqKey: cfg.Providers.GroqKey,
		XAIKey:  cfg.Providers.XAIKey,
		KRKRKey: cfg.Providers.KRKRKey,
	}, logger)

	simulator := trainer.New(st, trainer.Config{StartDelay: time.Second}, logger)
	authService := service.NewAuthService(st, logger)

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}

	srv := server.NewServer(cfg, server.Deps{
		Store:     st,
		AI:        aiClient,
		Simulator: simulator,
		Auth:      authService,
		Redis:     redisClient,
		BaseCtx:   ctx,
	}, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
	}

	logger.Info("server stopped")
}
