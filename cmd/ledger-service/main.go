package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/eaglebank/ledger/internal/command"
	"github.com/eaglebank/ledger/internal/config"
	"github.com/eaglebank/ledger/internal/handler"
	"github.com/eaglebank/ledger/internal/query"
	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/middleware"
	redisClient "github.com/eaglebank/ledger/shared/redis"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	return zapConfig.Build()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync() //nolint:errcheck
	appLogger.Info("Ledger service starting...", zap.String("env", cfg.AppEnv))

	// Redis backs the user read model only; the ledger runs without it.
	var cacheClient *goredis.Client
	if cfg.CacheEnabled() {
		redis, err := redisClient.NewClient(cfg.RedisConfig.Addr, cfg.RedisConfig.Password, cfg.RedisConfig.DB)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisConfig.Addr), zap.Error(err))
		}
		defer func() {
			if err := redis.Close(); err != nil {
				appLogger.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		cacheClient = redis.Client
		appLogger.Info("User view cache enabled", zap.String("addr", cfg.RedisConfig.Addr), zap.Duration("ttl", cfg.UserViewTTL))
	} else {
		appLogger.Info("REDIS_ADDR not set, user view cache disabled")
	}

	// --- CQRS wiring ---
	store := repository.NewLedgerStore(repository.WithSeedUsers(cfg.SeedUsers))
	readRepo := repository.NewUserReadRepository(store, cacheClient, cfg.UserViewTTL,
		appLogger.With(zap.String("component", "UserReadRepository")))

	accountCommands := command.NewAccountCommandService(store, appLogger.With(zap.String("component", "AccountService")))
	userCommands := command.NewUserCommandService(store, appLogger.With(zap.String("component", "UserService")))
	userQueries := query.NewUserQueryService(readRepo)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware(appLogger.With(zap.String("component", "HTTPHandler"))))
	handler.RegisterRoutes(router,
		handler.NewUserHandler(userCommands, userQueries),
		handler.NewAccountHandler(accountCommands),
	)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("address", httpServer.Addr), zap.Int("seed_users", cfg.SeedUsers))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Shutting down...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Ledger service stopped.")
}
