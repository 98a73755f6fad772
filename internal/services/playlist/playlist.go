// Package playlist создаёт системный плейлист "Watch Later" для новых пользователей.
package playlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/vidhub/internal/lib/objectid"
	"github.com/magabrotheeeer/vidhub/internal/metrics"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

// Repository — хранилище плейлистов.
type Repository interface {
	CreatePlaylistIfAbsent(ctx context.Context, owner, name, description string) (*models.Playlist, bool, error)
}

// Service обрабатывает события регистрации.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создаёт сервис плейлистов.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateWatchLater создаёт плейлист "Watch Later" владельца. Повторный вызов ничего не меняет.
func (s *Service) CreateWatchLater(ctx context.Context, ownerID string) (*models.Playlist, error) {
	const op = "playlist.CreateWatchLater"

	owner, err := objectid.Normalize(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, created, err := s.repo.CreatePlaylistIfAbsent(ctx, owner, models.WatchLaterName, models.WatchLaterDescription)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if created {
		s.log.Info("watch later playlist created", slog.String("owner", owner), slog.String("playlist", p.ID))
	} else {
		s.log.Debug("watch later playlist already exists", slog.String("owner", owner))
	}
	return p, nil
}

// HandleUserRegistered разбирает событие регистрации из очереди.
// Некорректное сообщение подтверждается и отбрасывается, чтобы не зациклить очередь.
func (s *Service) HandleUserRegistered(ctx context.Context, body []byte) error {
	var event models.UserRegisteredEvent
	if err := json.Unmarshal(body, &event); err != nil || !objectid.IsValid(event.UserID) {
		s.log.Error("dropping malformed user.registered event", slog.String("body", string(body)))
		metrics.RecordPlaylistEvent("dropped")
		return nil
	}

	if _, err := s.CreateWatchLater(ctx, event.UserID); err != nil {
		metrics.RecordPlaylistEvent("failed")
		return err
	}
	metrics.RecordPlaylistEvent("ok")
	return nil
}
