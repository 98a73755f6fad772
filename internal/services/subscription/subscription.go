// Package subscription реализует переключение подписки пользователя на канал.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/cache"
	"github.com/magabrotheeeer/vidhub/internal/lib/objectid"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/metrics"
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/storage/repository"
)

// Сообщения результата переключения.
const (
	MessageSubscribed   = "subscribed"
	MessageUnsubscribed = "unsubscribed"
)

// Repository — операции хранилища, нужные движку подписок.
type Repository interface {
	// FindUserByID возвращает пользователя или repository.ErrNotFound.
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	// ToggleEdge атомарно переключает ребро subscriber -> channel.
	ToggleEdge(ctx context.Context, subscriber, channel string) (models.ToggleResult, error)
}

// Cache — инвалидация закешированных счётчиков.
type Cache interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Outcome — результат переключения.
type Outcome struct {
	State        models.ToggleState
	Subscription *models.Subscription
	Message      string
}

// Service — движок подписок.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создаёт движок подписок.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Toggle подписывает requester на канал, если подписки нет, иначе отписывает.
func (s *Service) Toggle(ctx context.Context, requesterID, channelID string) (*Outcome, error) {
	const op = "subscription.Toggle"

	channel, err := objectid.Normalize(channelID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid channelId")
	}
	requester, err := objectid.Normalize(requesterID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid requester id")
	}
	if channel == requester {
		return nil, apperr.SelfSubscription()
	}

	if _, err := s.repo.FindUserByID(ctx, channel); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("channel not found")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	result, err := s.repo.ToggleEdge(ctx, requester, channel)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	if err := s.cache.Invalidate(ctx, cache.ChannelCountsKey(channel), cache.ChannelCountsKey(requester)); err != nil {
		s.log.Warn("failed to invalidate channel counts", slog.String("channel", channel), sl.Err(err))
	}
	metrics.RecordToggle(result.State.String())

	out := &Outcome{State: result.State, Subscription: result.Subscription}
	if result.State == models.Present {
		out.Message = MessageSubscribed
	} else {
		out.Message = MessageUnsubscribed
	}
	s.log.Info("subscription toggled",
		slog.String("subscriber", requester),
		slog.String("channel", channel),
		slog.String("state", result.State.String()))
	return out, nil
}
