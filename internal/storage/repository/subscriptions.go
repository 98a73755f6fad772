package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vidhub/internal/models"
)

// FindEdge возвращает ребро subscriber -> channel или ErrNotFound.
func (s *Storage) FindEdge(ctx context.Context, subscriber, channel string) (*models.Subscription, error) {
	const op = "storage.FindEdge"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, subscriber, channel, created_at
			  FROM subscriptions
			  WHERE subscriber = $1 AND channel = $2`
	var sub models.Subscription
	err := s.DB.QueryRowContext(ctx, query, subscriber, channel).
		Scan(&sub.ID, &sub.Subscriber, &sub.Channel, &sub.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// CreateEdge создаёт ребро. Повторное создание той же пары даёт ErrEdgeExists.
func (s *Storage) CreateEdge(ctx context.Context, subscriber, channel string) (*models.Subscription, error) {
	const op = "storage.CreateEdge"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO subscriptions (subscriber, channel)
			  VALUES ($1, $2)
			  RETURNING id, subscriber, channel, created_at`
	var sub models.Subscription
	err := s.DB.QueryRowContext(ctx, query, subscriber, channel).
		Scan(&sub.ID, &sub.Subscriber, &sub.Channel, &sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrEdgeExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// DeleteEdge удаляет ребро по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteEdge(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteEdge"
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// errToggleRace — вставленное параллельно ребро успели удалить до чтения.
var errToggleRace = errors.New("toggle raced with concurrent delete")

const toggleAttempts = 3

// ToggleEdge в одной транзакции удаляет ребро, если оно есть, иначе создаёт.
// Конкурентная вставка той же пары упирается в уникальный индекс и не создаёт дубль.
func (s *Storage) ToggleEdge(ctx context.Context, subscriber, channel string) (models.ToggleResult, error) {
	const op = "storage.ToggleEdge"
	if err := ctxErr(ctx, op); err != nil {
		return models.ToggleResult{}, err
	}

	var err error
	for range toggleAttempts {
		var result models.ToggleResult
		result, err = s.toggleOnce(ctx, subscriber, channel)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, errToggleRace) {
			break
		}
	}
	return models.ToggleResult{}, fmt.Errorf("%s: %w", op, err)
}

func (s *Storage) toggleOnce(ctx context.Context, subscriber, channel string) (result models.ToggleResult, err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ToggleResult{}, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var deletedID string
	err = tx.QueryRowContext(ctx,
		`DELETE FROM subscriptions WHERE subscriber = $1 AND channel = $2 RETURNING id`,
		subscriber, channel).Scan(&deletedID)
	switch {
	case err == nil:
		if err = tx.Commit(); err != nil {
			return models.ToggleResult{}, fmt.Errorf("commit: %w", err)
		}
		return models.ToggleResult{State: models.Absent}, nil
	case !errors.Is(err, sql.ErrNoRows):
		return models.ToggleResult{}, fmt.Errorf("delete: %w", err)
	}

	sub := &models.Subscription{}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO subscriptions (subscriber, channel)
		 VALUES ($1, $2)
		 ON CONFLICT (subscriber, channel) DO NOTHING
		 RETURNING id, subscriber, channel, created_at`,
		subscriber, channel).Scan(&sub.ID, &sub.Subscriber, &sub.Channel, &sub.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// пару успела вставить параллельная транзакция
		err = tx.QueryRowContext(ctx,
			`SELECT id, subscriber, channel, created_at FROM subscriptions
			 WHERE subscriber = $1 AND channel = $2`,
			subscriber, channel).Scan(&sub.ID, &sub.Subscriber, &sub.Channel, &sub.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			err = errToggleRace
			return models.ToggleResult{}, err
		}
	}
	if err != nil {
		return models.ToggleResult{}, fmt.Errorf("insert: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.ToggleResult{}, fmt.Errorf("commit: %w", err)
	}
	return models.ToggleResult{State: models.Present, Subscription: sub}, nil
}

// FindEdgesByChannel возвращает подписчиков канала с проекцией профиля подписчика.
func (s *Storage) FindEdgesByChannel(ctx context.Context, channel string) ([]models.SubscriberEntry, error) {
	const op = "storage.FindEdgesByChannel"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT s.id, s.channel, s.created_at, u.id, u.username, u.avatar
			  FROM subscriptions s
			  JOIN users u ON u.id = s.subscriber
			  WHERE s.channel = $1
			  ORDER BY s.created_at, s.id`
	rows, err := s.DB.QueryContext(ctx, query, channel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.SubscriberEntry
	for rows.Next() {
		var item models.SubscriberEntry
		if err := rows.Scan(&item.ID, &item.Channel, &item.CreatedAt,
			&item.Subscriber.ID, &item.Subscriber.Username, &item.Subscriber.Avatar); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindEdgesBySubscriber возвращает каналы, на которые подписан пользователь.
func (s *Storage) FindEdgesBySubscriber(ctx context.Context, subscriber string) ([]models.SubscribedChannelEntry, error) {
	const op = "storage.FindEdgesBySubscriber"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT s.id, s.created_at, u.id, u.username, u.avatar
			  FROM subscriptions s
			  JOIN users u ON u.id = s.channel
			  WHERE s.subscriber = $1
			  ORDER BY s.created_at, s.id`
	rows, err := s.DB.QueryContext(ctx, query, subscriber)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.SubscribedChannelEntry
	for rows.Next() {
		var item models.SubscribedChannelEntry
		if err := rows.Scan(&item.ID, &item.CreatedAt,
			&item.Channel.ID, &item.Channel.Username, &item.Channel.Avatar); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountEdgesByChannel — количество подписчиков канала.
func (s *Storage) CountEdgesByChannel(ctx context.Context, channel string) (int, error) {
	return s.count(ctx, "storage.CountEdgesByChannel",
		`SELECT COUNT(*) FROM subscriptions WHERE channel = $1`, channel)
}

// CountEdgesBySubscriber — количество каналов, на которые подписан пользователь.
func (s *Storage) CountEdgesBySubscriber(ctx context.Context, subscriber string) (int, error) {
	return s.count(ctx, "storage.CountEdgesBySubscriber",
		`SELECT COUNT(*) FROM subscriptions WHERE subscriber = $1`, subscriber)
}

func (s *Storage) count(ctx context.Context, op, query, arg string) (int, error) {
	if err := ctxErr(ctx, op); err != nil {
		return 0, err
	}
	var n int
	if err := s.DB.QueryRowContext(ctx, query, arg).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// EdgeExists проверяет наличие ребра subscriber -> channel.
func (s *Storage) EdgeExists(ctx context.Context, subscriber, channel string) (bool, error) {
	const op = "storage.EdgeExists"
	if err := ctxErr(ctx, op); err != nil {
		return false, err
	}

	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber = $1 AND channel = $2)`,
		subscriber, channel).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
