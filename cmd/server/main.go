package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/travelnesia/internal/config"
	"github.com/dharmasatrya/travelnesia/internal/generator"
	"github.com/dharmasatrya/travelnesia/internal/handler"
	"github.com/dharmasatrya/travelnesia/internal/history"
	"github.com/dharmasatrya/travelnesia/internal/idgen"
	"github.com/dharmasatrya/travelnesia/internal/metrics"
	"github.com/dharmasatrya/travelnesia/internal/models"
	"github.com/dharmasatrya/travelnesia/internal/ratelimit"
	"github.com/dharmasatrya/travelnesia/internal/search"
	"github.com/dharmasatrya/travelnesia/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewZeroLog("").Error("failed to load config", logger.Field{Key: "error", Value: err})
		os.Exit(1)
	}
	log := logger.NewZeroLog(cfg.AppEnv)

	ids, err := idgen.NewSnowflakeGenerator(cfg.NodeID)
	if err != nil {
		log.Error("failed to init id generator", logger.Field{Key: "error", Value: err})
		os.Exit(1)
	}

	storage, err := newStorage(cfg, log)
	if err != nil {
		log.Error("failed to init history storage", logger.Field{Key: "error", Value: err})
		os.Exit(1)
	}
	store := history.NewStore(storage)
	defer store.Close()

	limiter := ratelimit.NewModeLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.Burst,
	})
	// Hotel results are the most expensive to render client side.
	limiter.SetModeLimit(string(models.ModeHotel), cfg.RateLimit.RequestsPerSecond/2, cfg.RateLimit.Burst)

	service := search.NewService(generator.NewDefault(ids), store, ids, log, search.Config{
		Latency:        cfg.SearchLatency,
		BookingLatency: cfg.BookingLatency,
		RateLimiter:    limiter,
		Recorder:       metrics.Recorder{},
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())

	handler.Register(e, handler.NewSearchHandler(service, log))
	e.GET("/metrics", metrics.Handler())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting travelnesia server",
			logger.Field{Key: "port", Value: cfg.Port},
			logger.Field{Key: "history_backend", Value: cfg.HistoryBackend},
			logger.Field{Key: "search_latency", Value: cfg.SearchLatency.String()},
		)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", logger.Field{Key: "error", Value: err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", logger.Field{Key: "error", Value: err})
	}
}

func newStorage(cfg *config.Config, log logger.Logger) (history.Storage, error) {
	if cfg.HistoryBackend != config.BackendRedis {
		log.Info("history kept in memory")
		return history.NewMemoryStorage(), nil
	}

	storage, err := history.NewRedisStorage(cfg.Redis)
	if err != nil {
		return nil, err
	}
	log.Info("history kept in redis",
		logger.Field{Key: "host", Value: cfg.Redis.Host + ":" + cfg.Redis.Port},
		logger.Field{Key: "ttl", Value: cfg.Redis.TTL.String()},
	)
	return storage, nil
}
