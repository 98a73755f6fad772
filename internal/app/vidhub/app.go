package vidhub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/vidhub/internal/cache"
	"github.com/magabrotheeeer/vidhub/internal/config"
	"github.com/magabrotheeeer/vidhub/internal/grpc/health"
	"github.com/magabrotheeeer/vidhub/internal/lib/jwt"
	"github.com/magabrotheeeer/vidhub/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/media"
	"github.com/magabrotheeeer/vidhub/internal/migrations"
	"github.com/magabrotheeeer/vidhub/internal/services/auth"
	"github.com/magabrotheeeer/vidhub/internal/services/graph"
	"github.com/magabrotheeeer/vidhub/internal/services/subscription"
	"github.com/magabrotheeeer/vidhub/internal/storage/repository"
)

const (
	shutdownTimeout     = 15 * time.Second
	healthProbeInterval = 5 * time.Second
)

// App — процесс HTTP API с gRPC health-сервером.
type App struct {
	server   *http.Server
	health   *health.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	uploader *media.GCSUploader
	amqpConn *amqp.Connection
	amqpCh   *amqp.Channel
}

// New поднимает все зависимости и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.vidhub.New"

	a := &App{logger: logger}
	ok := false
	defer func() {
		if !ok {
			a.close()
		}
	}()

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.db = db
	if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.cache, err = cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.uploader, err = media.NewGCSUploader(ctx, cfg.Media)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.amqpConn, err = rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.amqpCh, err = rabbitmq.SetupChannel(a.amqpConn, cfg.RabbitMQ.Exchange, rabbitmq.UserEventQueues(cfg.RabbitMQ.Queue))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	publisher := rabbitmq.NewEventPublisher(a.amqpCh, cfg.RabbitMQ.Exchange)

	tokens := jwt.NewJWTMaker(cfg.AccessSecret, cfg.AccessTTL, cfg.RefreshSecret, cfg.RefreshTTL)

	services := Services{
		Accounts:      auth.New(db, tokens, a.uploader, publisher, logger),
		Subscriptions: subscription.New(db, a.cache, logger),
		Graph:         graph.New(db, a.cache, cfg.ProfileCacheTTL, logger),
		Tokens:        tokens,
		Health:        db,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, services, cfg.RateLimit)

	a.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	a.health, err = health.New(cfg.AddressGRPC, db, healthProbeInterval, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok = true
	return a, nil
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает серверы.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	healthCtx, stopHealth := context.WithCancel(ctx)
	defer stopHealth()
	go func() {
		if err := a.health.Run(healthCtx); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		stopHealth()
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) close() {
	if a.amqpCh != nil {
		if err := a.amqpCh.Close(); err != nil {
			a.logger.Warn("failed to close amqp channel", sl.Err(err))
		}
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Warn("failed to close amqp connection", sl.Err(err))
		}
	}
	if a.uploader != nil {
		if err := a.uploader.Close(); err != nil {
			a.logger.Warn("failed to close media client", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis", sl.Err(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", sl.Err(err))
		}
	}
}
