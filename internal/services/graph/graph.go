// Package graph вычисляет производные представления графа подписок:
// списки подписчиков и подписок, профиль канала и историю просмотров.
package graph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/cache"
	"github.com/magabrotheeeer/vidhub/internal/lib/objectid"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/storage/repository"
)

// Repository — операции чтения, на которых строятся агрегаты.
type Repository interface {
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindEdgesByChannel(ctx context.Context, channel string) ([]models.SubscriberEntry, error)
	FindEdgesBySubscriber(ctx context.Context, subscriber string) ([]models.SubscribedChannelEntry, error)
	CountEdgesByChannel(ctx context.Context, channel string) (int, error)
	CountEdgesBySubscriber(ctx context.Context, subscriber string) (int, error)
	EdgeExists(ctx context.Context, subscriber, channel string) (bool, error)
	WatchHistoryVideos(ctx context.Context, userID string) ([]models.Video, error)
}

// Cache хранит счётчики канала.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service — движок агрегатов графа.
type Service struct {
	repo     Repository
	cache    Cache
	countTTL time.Duration
	log      *slog.Logger
}

// MaxCountsTTL — верхняя граница времени жизни счётчиков в кеше.
// Счётчики, посчитанные до переключения подписки и записанные после
// инвалидации, остаются устаревшими не дольше этого времени.
const MaxCountsTTL = time.Minute

// New создаёт движок агрегатов. countTTL — время жизни закешированных счётчиков,
// не больше MaxCountsTTL.
func New(repo Repository, cache Cache, countTTL time.Duration, log *slog.Logger) *Service {
	if countTTL <= 0 || countTTL > MaxCountsTTL {
		countTTL = MaxCountsTTL
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		countTTL: countTTL,
		log:      log,
	}
}

// ListSubscribers возвращает подписчиков канала. Пустой результат считается NotFound.
func (s *Service) ListSubscribers(ctx context.Context, channelID string) ([]models.SubscriberEntry, error) {
	const op = "graph.ListSubscribers"

	channel, err := objectid.Normalize(channelID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid channelId")
	}
	entries, err := s.repo.FindEdgesByChannel(ctx, channel)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	if len(entries) == 0 {
		return nil, apperr.NotFound("no subscriber found")
	}
	return entries, nil
}

// ListSubscribedChannels возвращает каналы, на которые подписан пользователь.
// Пустой результат считается NotFound.
func (s *Service) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]models.SubscribedChannelEntry, error) {
	const op = "graph.ListSubscribedChannels"

	subscriber, err := objectid.Normalize(subscriberID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid subscriberId")
	}
	entries, err := s.repo.FindEdgesBySubscriber(ctx, subscriber)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	if len(entries) == 0 {
		return nil, apperr.NotFound("no subscribed channels found")
	}
	return entries, nil
}

// ChannelProfile собирает публичный профиль канала со счётчиками
// и признаком подписки запрашивающего пользователя.
func (s *Service) ChannelProfile(ctx context.Context, username, requesterID string) (*models.ChannelProfile, error) {
	const op = "graph.ChannelProfile"

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperr.InvalidInput("username is missing")
	}

	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("channel does not exist")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	counts, err := s.channelCounts(ctx, user.ID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	isSubscribed := false
	if requester, err := objectid.Normalize(requesterID); err == nil {
		isSubscribed, err = s.repo.EdgeExists(ctx, requester, user.ID)
		if err != nil {
			return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
		}
	}

	return &models.ChannelProfile{
		ID:                        user.ID,
		Username:                  user.Username,
		Fullname:                  user.Fullname,
		Email:                     user.Email,
		Avatar:                    user.Avatar,
		CoverImage:                user.CoverImage,
		SubscribersCount:          counts.SubscribersCount,
		ChannelsSubscribedToCount: counts.ChannelsSubscribedToCount,
		IsSubscribed:              isSubscribed,
	}, nil
}

// channelCounts читает счётчики из кеша, при промахе считает и кладёт в кеш.
// Ошибки кеша не мешают ответу.
func (s *Service) channelCounts(ctx context.Context, userID string) (models.ChannelCounts, error) {
	key := cache.ChannelCountsKey(userID)

	var counts models.ChannelCounts
	found, err := s.cache.Get(ctx, key, &counts)
	if err != nil {
		s.log.Warn("failed to read channel counts from cache", slog.String("key", key), sl.Err(err))
	}
	if found && err == nil {
		return counts, nil
	}

	subscribers, err := s.repo.CountEdgesByChannel(ctx, userID)
	if err != nil {
		return models.ChannelCounts{}, err
	}
	subscribedTo, err := s.repo.CountEdgesBySubscriber(ctx, userID)
	if err != nil {
		return models.ChannelCounts{}, err
	}
	counts = models.ChannelCounts{
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
	}

	if err := s.cache.Set(ctx, key, counts, s.countTTL); err != nil {
		s.log.Warn("failed to cache channel counts", slog.String("key", key), sl.Err(err))
	}
	return counts, nil
}

// WatchHistory возвращает видео из истории просмотров в сохранённом порядке.
// Пустая история — пустой срез, не ошибка.
func (s *Service) WatchHistory(ctx context.Context, userID string) ([]models.Video, error) {
	const op = "graph.WatchHistory"

	id, err := objectid.Normalize(userID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid user id")
	}
	if _, err := s.repo.FindUserByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	videos, err := s.repo.WatchHistoryVideos(ctx, id)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos, nil
}
