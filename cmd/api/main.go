package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/epfafrica/user-service/internal/api"
	"github.com/epfafrica/user-service/internal/core/security"
	"github.com/epfafrica/user-service/internal/core/service"
	"github.com/epfafrica/user-service/internal/core/token"
	"github.com/epfafrica/user-service/internal/infrastructure/config"
	mongodb "github.com/epfafrica/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/epfafrica/user-service/internal/infrastructure/db/redis"
	"github.com/epfafrica/user-service/internal/infrastructure/queue"
	"github.com/epfafrica/user-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := token.NewProvider(token.Config{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	})
	limiter := redisdb.NewLoginLimiter(rdb)

	auditRepo := mongodb.NewEventRepository(db)
	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, service.NewAuditService(auditRepo, log), log)
	dispatcher.Start(ctx)

	if err := service.SeedUsers(ctx, userRepo, hasher, log); err != nil {
		log.Fatal().Err(err).Msg("user seeding failed")
	}

	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, dispatcher, log)

	e := api.NewRouter(api.Deps{
		AuthService: authService,
		Users:       userRepo,
		Tokens:      tokens,
		Mongo:       db,
		Redis:       rdb,
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting user service")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
