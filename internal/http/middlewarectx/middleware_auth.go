// Package middlewarectx содержит HTTP middleware: проверку access-токена,
// ограничение частоты запросов и учёт метрик.
//
// JWTMiddleware берёт токен из заголовка Authorization (Bearer) или из cookie
// accessToken, проверяет его и кладёт в контекст id и имя пользователя.
// В случае ошибки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/jwt"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для id пользователя в контексте
	UserID Key = "user_id"
	// Username — ключ для имени пользователя в контексте
	Username Key = "username"
)

// TokenParser проверяет access-токен.
type TokenParser interface {
	ParseAccessToken(tokenStr string) (*jwt.AccessClaims, error)
}

// JWTMiddleware возвращает middleware, пропускающий только запросы с валидным access-токеном.
func JWTMiddleware(log *slog.Logger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := accessToken(r)
			if tokenStr == "" {
				log.Info("missing access token")
				response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
				return
			}

			claims, err := parser.ParseAccessToken(tokenStr)
			if err != nil {
				log.Info("invalid access token", sl.Err(err))
				response.WriteError(w, r, apperr.Unauthorized("invalid access token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, claims.UserID)
			ctx = context.WithValue(ctx, Username, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom возвращает id аутентифицированного пользователя из контекста.
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserID).(string)
	return id, ok && id != ""
}

func accessToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}
