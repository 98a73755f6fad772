//go:build integration

package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/vidhub/internal/migrations"
)

// TestDataFactory создаёт тестовые данные напрямую в БД.
type TestDataFactory struct {
	storage *Storage
}

func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создаёт пользователя и возвращает его ID.
func (f *TestDataFactory) CreateUser(t *testing.T, username string) string {
	t.Helper()
	var id string
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, email, fullname, password_hash, avatar)
		VALUES ($1, $2, $3, 'hash', $4) RETURNING id`,
		username, username+"@example.com", "Full "+username, "https://cdn.example.com/"+username+".png").Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateEdge создаёт ребро подписки.
func (f *TestDataFactory) CreateEdge(t *testing.T, subscriber, channel string) {
	t.Helper()
	_, err := f.storage.DB.Exec(`INSERT INTO subscriptions (subscriber, channel) VALUES ($1, $2)`, subscriber, channel)
	require.NoError(t, err)
}

// CreateVideo создаёт видео владельца и возвращает его ID.
func (f *TestDataFactory) CreateVideo(t *testing.T, owner, title string) string {
	t.Helper()
	var id string
	err := f.storage.DB.QueryRow(`INSERT INTO videos (video_file, thumbnail, title, duration, owner)
		VALUES ('https://cdn.example.com/v.mp4', 'https://cdn.example.com/t.png', $1, 12.5, $2) RETURNING id`,
		title, owner).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountEdges возвращает количество рёбер пары.
func (f *TestDataFactory) CountEdges(t *testing.T, subscriber, channel string) int {
	t.Helper()
	var n int
	err := f.storage.DB.QueryRow(`SELECT COUNT(*) FROM subscriptions WHERE subscriber = $1 AND channel = $2`,
		subscriber, channel).Scan(&n)
	require.NoError(t, err)
	return n
}

func migrationsDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "migrations")
}

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	port := nat.Port("5432/tcp")
	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{string(port)},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(port),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(3 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err, "failed to get port")

	connStr := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, mapped.Port())

	var storage *Storage
	for range 10 {
		storage, err = New(connStr)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")
	require.NoError(t, migrations.Run(storage.DB, migrationsDir(t)))

	cleanup := func() {
		_ = storage.Close()
		_ = container.Terminate(ctx)
	}
	return storage, cleanup
}

func randomName(prefix string) string {
	return prefix + uuid.NewString()[:8]
}
