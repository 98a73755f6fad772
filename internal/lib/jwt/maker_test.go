package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	accessSecret  = "test_access_secret_1234567890"
	refreshSecret = "test_refresh_secret_0987654321"
)

func newTestMaker(accessTTL, refreshTTL time.Duration) *MakerImpl {
	return NewJWTMaker(accessSecret, accessTTL, refreshSecret, refreshTTL)
}

func TestMaker_AccessToken_ValidCases(t *testing.T) {
	maker := newTestMaker(15*time.Minute, time.Hour)

	tests := []struct {
		name     string
		userID   string
		username string
	}{
		{name: "regular user", userID: "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11", username: "alice"},
		{name: "username with digits", userID: "0b3c9f3e-4c44-4a3d-8c6e-5a9d6f0e7b22", username: "user123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.IssueAccessToken(tt.userID, tt.username)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseAccessToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.username, claims.Username)
			assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_RefreshToken_RoundTrip(t *testing.T) {
	maker := newTestMaker(time.Minute, time.Hour)

	token, err := maker.IssueRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := maker.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestMaker_RefreshTokensAreUnique(t *testing.T) {
	maker := newTestMaker(time.Minute, time.Hour)

	first, err := maker.IssueRefreshToken("user-1")
	require.NoError(t, err)
	second, err := maker.IssueRefreshToken("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestMaker_InvalidTokens(t *testing.T) {
	maker := newTestMaker(time.Minute, time.Hour)
	expired := newTestMaker(-time.Hour, -time.Hour)
	foreign := NewJWTMaker("other_access", time.Minute, "other_refresh", time.Hour)

	validAccess, err := maker.IssueAccessToken("user-1", "alice")
	require.NoError(t, err)
	validRefresh, err := maker.IssueRefreshToken("user-1")
	require.NoError(t, err)
	expiredAccess, err := expired.IssueAccessToken("user-1", "alice")
	require.NoError(t, err)
	expiredRefresh, err := expired.IssueRefreshToken("user-1")
	require.NoError(t, err)
	foreignRefresh, err := foreign.IssueRefreshToken("user-1")
	require.NoError(t, err)

	t.Run("access", func(t *testing.T) {
		for name, token := range map[string]string{
			"empty":             "",
			"malformed":         "invalid.token.here",
			"expired":           expiredAccess,
			"tampered":          validAccess + "x",
			"refresh as access": validRefresh,
		} {
			claims, err := maker.ParseAccessToken(token)
			assert.Error(t, err, name)
			assert.True(t, errors.Is(err, ErrInvalidToken), name)
			assert.Nil(t, claims, name)
		}
	})

	t.Run("refresh", func(t *testing.T) {
		for name, token := range map[string]string{
			"empty":             "",
			"expired":           expiredRefresh,
			"wrong secret":      foreignRefresh,
			"access as refresh": validAccess,
		} {
			userID, err := maker.VerifyRefreshToken(token)
			assert.Error(t, err, name)
			assert.True(t, errors.Is(err, ErrInvalidToken), name)
			assert.Empty(t, userID, name)
		}
	})
}
