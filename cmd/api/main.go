// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CodeSancho/GeospartialLib/internal/admin"
	"github.com/CodeSancho/GeospartialLib/internal/auth"
	"github.com/CodeSancho/GeospartialLib/internal/config"
	"github.com/CodeSancho/GeospartialLib/internal/core"
	"github.com/CodeSancho/GeospartialLib/internal/health"
	"github.com/CodeSancho/GeospartialLib/internal/middleware"
	"github.com/CodeSancho/GeospartialLib/internal/migrations"
	"github.com/CodeSancho/GeospartialLib/internal/sample"
	"github.com/CodeSancho/GeospartialLib/internal/server"
	"github.com/CodeSancho/GeospartialLib/internal/template"
	"github.com/CodeSancho/GeospartialLib/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, migrations.FS); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	var rdb *core.Redis
	if cfg.Redis.URL != "" {
		r, redisErr := core.NewRedis(ctx, cfg.Redis)
		if redisErr != nil {
			logger.Warn("redis unavailable, rate limiting is process-local",
				"error", redisErr,
			)
		} else {
			rdb = r
			logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
		}
	}

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"lifetime", tokens.Lifetime(),
		"verify_current_role", cfg.Auth.VerifyCurrentRole,
	)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(tokens, userSvc, auth.Options{
		VerifyCurrentRole: cfg.Auth.VerifyCurrentRole,
	})
	authHandler := auth.NewHandler(authSvc)

	templateHandler := template.NewHandler(
		template.NewService(template.NewRepository(db.DB)),
	)
	sampleHandler := sample.NewHandler(
		sample.NewService(sample.NewRepository(db.DB)),
	)

	deps := []health.Dependency{{Name: "database", Checker: db}}
	adminCfg := admin.HandlerConfig{
		DBStats:  db.Stats,
		DBPing:   db.Ping,
		Accounts: userHandler,
		Counts:   userSvc,
	}

	var redisClient *redis.Client
	if rdb != nil {
		redisClient = rdb.Client
		deps = append(deps, health.Dependency{
			Name:     "redis",
			Checker:  rdb,
			Optional: true,
		})
		adminCfg.RedisStats = rdb.PoolStats
		adminCfg.RedisPing = rdb.Ping
	}

	healthHandler := health.NewHandler(deps...)
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.Per(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(authSvc)

	authHandler.RegisterRoutes(router, authenticator)
	adminHandler.RegisterRoutes(router, authenticator, middleware.RequireAdmin)
	templateHandler.RegisterRoutes(router, authenticator)
	sampleHandler.RegisterRoutes(router, authenticator)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
