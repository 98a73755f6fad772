package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// ErrInvalidToken возвращается для любого непрошедшего проверку токена.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims описывает данные access-токена.
type AccessClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Type     string `json:"typ"`
	jwt.RegisteredClaims
}

// RefreshClaims описывает данные refresh-токена.
type RefreshClaims struct {
	UserID string `json:"uid"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// IssueAccessToken создаёт access-токен для пользователя.
func (j *MakerImpl) IssueAccessToken(userID, username string) (string, error) {
	const op = "jwt.IssueAccessToken"
	now := time.Now()
	claims := AccessClaims{
		UserID:   userID,
		Username: username,
		Type:     typeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.accessSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// IssueRefreshToken создаёт refresh-токен. Каждый токен уникален за счёт jti,
// поэтому повторный выпуск в ту же секунду даёт другую строку.
func (j *MakerImpl) IssueRefreshToken(userID string) (string, error) {
	const op = "jwt.IssueRefreshToken"
	now := time.Now()
	claims := RefreshClaims{
		UserID: userID,
		Type:   typeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.refreshTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.refreshSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ParseAccessToken проверяет подпись и срок действия access-токена.
func (j *MakerImpl) ParseAccessToken(tokenStr string) (*AccessClaims, error) {
	const op = "jwt.ParseAccessToken"
	claims := &AccessClaims{}
	if err := parse(tokenStr, claims, j.accessSecret); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.Type != typeAccess || claims.UserID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return claims, nil
}

// VerifyRefreshToken проверяет refresh-токен и возвращает id пользователя.
func (j *MakerImpl) VerifyRefreshToken(tokenStr string) (string, error) {
	const op = "jwt.VerifyRefreshToken"
	claims := &RefreshClaims{}
	if err := parse(tokenStr, claims, j.refreshSecret); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if claims.Type != typeRefresh || claims.UserID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return claims.UserID, nil
}

func parse(tokenStr string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
