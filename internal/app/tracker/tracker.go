// Package tracker собирает приложение трекера упражнений: хранилище,
// кеш, публикацию событий, метрики и HTTP-сервер.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/exercise-tracker/internal/cache"
	"github.com/magabrotheeeer/exercise-tracker/internal/config"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/metrics"
	"github.com/magabrotheeeer/exercise-tracker/internal/migrations"
	services "github.com/magabrotheeeer/exercise-tracker/internal/services/tracker"
	"github.com/magabrotheeeer/exercise-tracker/internal/storage/mongodb"
	"github.com/magabrotheeeer/exercise-tracker/internal/storage/postgresql"
)

const shutdownTimeout = 15 * time.Second

// Store описывает хранилище пользователей с управлением соединением.
type Store interface {
	services.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type App struct {
	server  *http.Server
	logger  *slog.Logger
	store   Store
	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.tracker.New"

	store, err := openStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	app := &App{logger: logger, store: store}

	var trackerCache services.Cache = cache.Nop{}
	if cfg.RedisConnection.Addr != "" {
		redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, redisCache.Close)
		trackerCache = redisCache
		logger.Info("users cache enabled", slog.String("addr", cfg.RedisConnection.Addr))
	}

	var events services.Publisher = rabbitmq.Nop{}
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher, err := rabbitmq.NewPublisher(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			_ = conn.Close()
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.closers = append(app.closers, publisher.Close)
		events = publisher
		logger.Info("event publishing enabled", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	trackerService := services.NewTrackerService(store, trackerCache, events, collector, cfg.CacheTTL, logger)
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, trackerService, store, collector, metrics.Handler(registry), limiter)

	app.server = &http.Server{
		Addr:         cfg.HTTPServer.Address(),
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}
	return app, nil
}

func openStore(ctx context.Context, cfg config.Storage, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		store, err := mongodb.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		logger.Info("storage connected", slog.String("driver", cfg.Driver), slog.String("database", cfg.MongoDatabase))
		return store, nil
	case config.DriverPostgres:
		store, err := postgresql.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(store.DB, cfg.MigrationsPath); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		logger.Info("storage connected", slog.String("driver", cfg.Driver))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает ресурсы в порядке, обратном открытию.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		a.logger.Warn("failed to close storage", sl.Err(err))
	}
}
