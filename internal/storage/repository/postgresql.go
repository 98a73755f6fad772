// Package repository реализует хранилища на PostgreSQL: пользователей (Identity Store),
// рёбер подписок (Relationship Store), истории просмотров и плейлистов.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("record not found")
	// ErrUserExists — username или email уже заняты.
	ErrUserExists = errors.New("user with this username or email already exists")
	// ErrEdgeExists — ребро (subscriber, channel) уже существует.
	ErrEdgeExists = errors.New("subscription already exists")
)

// Storage инкапсулирует соединение с PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает пул соединений и проверяет доступность базы.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Ping проверяет соединение и то, что миграции применены.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"

	var ready bool
	err := s.DB.QueryRowContext(ctx, `SELECT
        to_regclass('public.users') IS NOT NULL
        AND to_regclass('public.subscriptions') IS NOT NULL`).Scan(&ready)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ready {
		return fmt.Errorf("%s: schema is not migrated", op)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func ctxErr(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}
