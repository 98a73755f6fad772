// Package jwt реализует сервис токенов: выпуск и проверку access и refresh JWT,
// привязанных к идентификатору пользователя.
package jwt

import (
	"time"
)

// Maker описывает сервис токенов.
//
// Access-токен короткоживущий и несёт id и username пользователя,
// refresh-токен живёт дольше и несёт только id.
type Maker interface {
	IssueAccessToken(userID, username string) (string, error)
	IssueRefreshToken(userID string) (string, error)
	ParseAccessToken(tokenStr string) (*AccessClaims, error)
	VerifyRefreshToken(tokenStr string) (string, error)
}

// MakerImpl реализует Maker на HS256 с отдельными ключами для access и refresh токенов.
type MakerImpl struct {
	accessSecret  string
	accessTTL     time.Duration
	refreshSecret string
	refreshTTL    time.Duration
}

// NewJWTMaker создаёт новый экземпляр MakerImpl.
func NewJWTMaker(accessSecret string, accessTTL time.Duration, refreshSecret string, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		accessSecret:  accessSecret,
		accessTTL:     accessTTL,
		refreshSecret: refreshSecret,
		refreshTTL:    refreshTTL,
	}
}
