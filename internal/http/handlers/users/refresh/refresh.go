// Package refresh реализует HTTP-обработчик обновления пары токенов.
//
// Refresh-токен берется из cookie refreshToken, а при ее отсутствии из тела запроса.
package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/services/auth"
)

// Request — тело запроса, если токен передается не в cookie.
type Request struct {
	RefreshToken string `json:"refreshToken"`
}

type Service interface {
	Refresh(ctx context.Context, token string) (*auth.Tokens, error)
}

// Handler обрабатывает POST /users/refresh-token.
type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновление токенов
// @Description Выпускает новую пару токенов. Предыдущий refresh-токен становится недействительным.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body Request false "Refresh-токен, если он не передан в cookie"
// @Success 200 {object} response.Response{data=auth.Tokens}
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/refresh-token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := ""
	if c, err := r.Cookie(middlewarectx.RefreshTokenCookie); err == nil {
		token = c.Value
	}
	if token == "" {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			response.WriteError(w, r, apperr.InvalidInput("invalid request body"))
			return
		}
		token = req.RefreshToken
	}

	tokens, err := h.service.Refresh(r.Context(), token)
	if err != nil {
		log.Info("refresh failed", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	middlewarectx.SetTokenCookies(w, tokens.AccessToken, tokens.RefreshToken)
	log.Info("tokens refreshed")
	response.Write(w, r, http.StatusOK, tokens, "access token refreshed")
}
