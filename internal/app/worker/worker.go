// Package worker собирает процесс, создающий плейлист "Watch Later"
// по событиям регистрации пользователей.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/vidhub/internal/config"
	"github.com/magabrotheeeer/vidhub/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/services/playlist"
	"github.com/magabrotheeeer/vidhub/internal/storage/repository"
)

// ErrDeliveryClosed возвращается, когда брокер закрыл канал доставки до остановки воркера.
var ErrDeliveryClosed = errors.New("delivery channel closed by broker")

// App — процесс воркера плейлистов.
type App struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	db       *repository.Storage
	playlist *playlist.Service
	queue    string
	logger   *slog.Logger
}

// New подключается к базе и брокеру и объявляет очередь событий регистрации.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.worker.New"

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.Retries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ.Exchange, rabbitmq.UserEventQueues(cfg.RabbitMQ.Queue))
	if err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &App{
		conn:     conn,
		ch:       ch,
		db:       db,
		playlist: playlist.New(db, logger),
		queue:    cfg.RabbitMQ.Queue,
		logger:   logger,
	}, nil
}

// Run читает очередь до отмены ctx и дожидается обработки уже полученных сообщений.
// Если брокер закрыл канал раньше, возвращает ErrDeliveryClosed.
func (a *App) Run(ctx context.Context) error {
	defer a.close()
	return consume(ctx, a.ch, a.queue, a.playlist.HandleUserRegistered, a.logger)
}

func consume(ctx context.Context, ch rabbitmq.Consumer, queue string, handler func(context.Context, []byte) error,
	logger *slog.Logger) error {
	const op = "app.worker.consume"

	done, err := rabbitmq.ConsumerMessage(ctx, ch, queue, handler, logger)
	if err != nil {
		logger.Error("failed to start consumer", slog.String("queue", queue), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("playlist worker consuming", slog.String("queue", queue))

	<-done
	if ctx.Err() == nil {
		logger.Error("delivery channel closed", slog.String("queue", queue))
		return fmt.Errorf("%s: %w", op, ErrDeliveryClosed)
	}
	logger.Info("playlist worker shutting down gracefully")
	return nil
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
