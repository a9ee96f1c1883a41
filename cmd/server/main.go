// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/innov8x/internal/config"
	"github.com/festy23/innov8x/internal/database/database"
	"github.com/festy23/innov8x/internal/database/migrate"
	"github.com/festy23/innov8x/internal/health"
	"github.com/festy23/innov8x/internal/landing"
	"github.com/festy23/innov8x/internal/middleware"
	"github.com/festy23/innov8x/internal/notify"
	"github.com/festy23/innov8x/internal/ratelimit"
	registrationRouter "github.com/festy23/innov8x/internal/registration/router"
	sponsorshipRouter "github.com/festy23/innov8x/internal/sponsorship/router"
	statisticsRouter "github.com/festy23/innov8x/internal/statistics/router"
	"github.com/festy23/innov8x/internal/web"
	"github.com/festy23/innov8x/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Fatalw("server stopped with error", "error", err)
	}
}

func run(cfg config.Config, logger *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.GinMode)

	db, err := database.New(ctx, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Errorw("failed to close database", "error", err)
		}
	}()

	version, err := migrate.Migrate(db)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Infow("database migrated", "version", version)

	var redisClient *redis.Client
	var submitLimiter *middleware.RateLimiter
	if cfg.Redis.Enabled() {
		redisClient, err = ratelimit.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		limiter := ratelimit.New(redisClient, cfg.Redis.RateLimitRequests, cfg.Redis.RateLimitWindow)
		submitLimiter = middleware.NewRateLimiter(limiter, cfg.Redis.RateLimitFailOpen, logger)
		logger.Infow("rate limiting enabled",
			"requests", cfg.Redis.RateLimitRequests,
			"window", cfg.Redis.RateLimitWindow,
			"fail_open", cfg.Redis.RateLimitFailOpen,
		)
	} else {
		logger.Warn("REDIS_ADDR is empty, submissions are not rate limited")
	}

	notifier, err := buildNotifier(cfg.Notify, logger)
	if err != nil {
		return err
	}

	router, err := buildRouter(cfg, db, redisClient, notifier, submitLimiter, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("starting server", "address", srv.Addr, "event", cfg.Event.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infow("shutting down server", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func buildNotifier(cfg config.NotifyConfig, logger *zap.SugaredLogger) (notify.Notifier, error) {
	notifiers := notify.Multi{notify.NewLogNotifier(logger)}

	if cfg.TelegramEnabled() {
		tg, err := notify.NewTelegramFromConfig(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize telegram notifier: %w", err)
		}
		notifiers = append(notifiers, tg)
	}

	return notifiers, nil
}

func buildRouter(
	cfg config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	notifier notify.Notifier,
	submitLimiter *middleware.RateLimiter,
	logger *zap.SugaredLogger,
) (*gin.Engine, error) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	if err := web.Install(r); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	landingHandler, err := landing.New(cfg.Event, nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize landing page: %w", err)
	}
	landing.RegisterRoutes(r, landingHandler)

	registrationRouter.RegisterRoutes(r, db, registrationRouter.Options{
		Notifier:    notifier,
		Logger:      logger,
		EventName:   cfg.Event.Name,
		RateLimiter: submitLimiter,
	})
	sponsorshipRouter.RegisterRoutes(r, db, sponsorshipRouter.Options{
		Notifier:    notifier,
		Logger:      logger,
		EventName:   cfg.Event.Name,
		RateLimiter: submitLimiter,
	})
	statisticsRouter.RegisterRoutes(r, db, logger)

	// A nil *redis.Client must not reach the handler as a non-nil interface.
	var healthRedis redis.Cmdable
	if redisClient != nil {
		healthRedis = redisClient
	}
	health.RegisterRoutes(r, health.New(db, healthRedis, logger))

	return r, nil
}
