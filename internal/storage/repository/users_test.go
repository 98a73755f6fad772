//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vidhub/internal/models"
)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()

	created, err := storage.CreateUser(ctx, models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		Fullname:     "Alice Doe",
		PasswordHash: "hash",
		Avatar:       "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.WatchHistory)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, models.User{
			Username: "alice", Email: "other@example.com", Fullname: "x", PasswordHash: "h", Avatar: "a",
		})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("find by id", func(t *testing.T) {
		u, err := storage.FindUserByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "hash", u.PasswordHash)
	})

	t.Run("find by id missing", func(t *testing.T) {
		_, err := storage.FindUserByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find by username or email", func(t *testing.T) {
		byName, err := storage.FindUserByUsernameOrEmail(ctx, "alice", "")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)

		byEmail, err := storage.FindUserByUsernameOrEmail(ctx, "", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)

		_, err = storage.FindUserByUsernameOrEmail(ctx, "", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("refresh token slot", func(t *testing.T) {
		require.NoError(t, storage.SetRefreshToken(ctx, created.ID, "tok"))
		u, err := storage.FindUserByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "tok", u.RefreshToken)

		require.NoError(t, storage.ClearRefreshToken(ctx, created.ID))
		u, err = storage.FindUserByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, u.RefreshToken)

		assert.ErrorIs(t, storage.SetRefreshToken(ctx, uuid.NewString(), "tok"), ErrNotFound)
	})

	t.Run("update account and images", func(t *testing.T) {
		u, err := storage.UpdateAccount(ctx, created.ID, "Alice Smith", "alice@new.example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", u.Fullname)
		assert.Equal(t, "alice@new.example.com", u.Email)

		u, err = storage.UpdateAvatar(ctx, created.ID, "https://cdn.example.com/b.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/b.png", u.Avatar)

		u, err = storage.UpdateCoverImage(ctx, created.ID, "https://cdn.example.com/c.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/c.png", u.CoverImage)

		require.NoError(t, storage.UpdatePassword(ctx, created.ID, "new-hash"))
		u, err = storage.FindUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "new-hash", u.PasswordHash)
	})
}

func TestStorage_WatchHistory(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()
	factory := NewTestDataFactory(storage)

	viewer := factory.CreateUser(t, "viewer")
	owner := factory.CreateUser(t, "owner")
	first := factory.CreateVideo(t, owner, "first")
	second := factory.CreateVideo(t, owner, "second")

	videos, err := storage.WatchHistoryVideos(ctx, viewer)
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.NotNil(t, videos)

	require.NoError(t, storage.AppendWatchHistory(ctx, viewer, first))
	require.NoError(t, storage.AppendWatchHistory(ctx, viewer, second))
	require.NoError(t, storage.AppendWatchHistory(ctx, viewer, first))
	assert.ErrorIs(t, storage.AppendWatchHistory(ctx, viewer, uuid.NewString()), ErrNotFound)

	videos, err = storage.WatchHistoryVideos(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, "second", videos[0].Title)
	assert.Equal(t, "first", videos[1].Title)
	require.NotNil(t, videos[0].Owner)
	assert.Equal(t, "owner", videos[0].Owner.Username)

	u, err := storage.FindUserByID(ctx, viewer)
	require.NoError(t, err)
	assert.Equal(t, []string{second, first}, u.WatchHistory)

	_, err = storage.DB.Exec(`DELETE FROM videos WHERE id = $1`, second)
	require.NoError(t, err)
	videos, err = storage.WatchHistoryVideos(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, first, videos[0].ID)
}

func TestStorage_CreatePlaylistIfAbsent(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()
	ctx := context.Background()
	owner := NewTestDataFactory(storage).CreateUser(t, "owner")

	p, created, err := storage.CreatePlaylistIfAbsent(ctx, owner, models.WatchLaterName, models.WatchLaterDescription)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.WatchLaterName, p.Name)

	again, created, err := storage.CreatePlaylistIfAbsent(ctx, owner, models.WatchLaterName, models.WatchLaterDescription)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p.ID, again.ID)
}
