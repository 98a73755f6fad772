package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/vidhub/internal/models"
)

// userColumns — общий список колонок пользователя; история просмотров
// собирается в строку в порядке добавления и разбирается в scanUser.
const userColumns = `u.id, u.username, u.email, u.fullname, u.password_hash, u.avatar, u.cover_image,
	COALESCE(u.refresh_token, ''), u.created_at, u.updated_at,
	COALESCE((SELECT string_agg(w.video_id::text, ',' ORDER BY w.seq)
	          FROM watch_history w WHERE w.user_id = u.id), '')`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var history string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Fullname, &u.PasswordHash, &u.Avatar,
		&u.CoverImage, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt, &history); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.WatchHistory = []string{}
	if history != "" {
		u.WatchHistory = strings.Split(history, ",")
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его с присвоенным ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO users AS u (username, email, fullname, password_hash, avatar, cover_image)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.Fullname, user.PasswordHash, user.Avatar, user.CoverImage))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByID возвращает пользователя по ID.
func (s *Storage) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.FindUserByID"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByUsername возвращает пользователя по username (точное совпадение).
func (s *Storage) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.FindUserByUsername"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM users u WHERE u.username = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// FindUserByUsernameOrEmail ищет пользователя, у которого совпадает username или email.
// Пустые значения в поиске не участвуют.
func (s *Storage) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	const op = "storage.FindUserByUsernameOrEmail"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + `
			  FROM users u
			  WHERE ($1 <> '' AND u.username = $1) OR ($2 <> '' AND u.email = $2)
			  ORDER BY u.created_at
			  LIMIT 1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateAccount меняет fullname и email.
func (s *Storage) UpdateAccount(ctx context.Context, id, fullname, email string) (*models.User, error) {
	const op = "storage.UpdateAccount"
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `UPDATE users AS u SET fullname = $2, email = $3, updated_at = NOW()
			  WHERE u.id = $1
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id, fullname, email))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdateAvatar сохраняет новый URL аватара.
func (s *Storage) UpdateAvatar(ctx context.Context, id, url string) (*models.User, error) {
	return s.updateImage(ctx, "storage.UpdateAvatar", "avatar", id, url)
}

// UpdateCoverImage сохраняет новый URL обложки.
func (s *Storage) UpdateCoverImage(ctx context.Context, id, url string) (*models.User, error) {
	return s.updateImage(ctx, "storage.UpdateCoverImage", "cover_image", id, url)
}

func (s *Storage) updateImage(ctx context.Context, op, column, id, url string) (*models.User, error) {
	if err := ctxErr(ctx, op); err != nil {
		return nil, err
	}

	query := `UPDATE users AS u SET ` + column + ` = $2, updated_at = NOW()
			  WHERE u.id = $1
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id, url))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// UpdatePassword сохраняет новый хеш пароля.
func (s *Storage) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const op = "storage.UpdatePassword"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash)
	return affectedOne(op, res, err)
}

// SetRefreshToken записывает текущий refresh-токен, затирая предыдущий.
func (s *Storage) SetRefreshToken(ctx context.Context, id, token string) error {
	const op = "storage.SetRefreshToken"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE users SET refresh_token = $2 WHERE id = $1`, id, token)
	return affectedOne(op, res, err)
}

// ClearRefreshToken удаляет сохранённый refresh-токен.
func (s *Storage) ClearRefreshToken(ctx context.Context, id string) error {
	const op = "storage.ClearRefreshToken"
	if err := ctxErr(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE users SET refresh_token = NULL WHERE id = $1`, id)
	return affectedOne(op, res, err)
}

func affectedOne(op string, res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
