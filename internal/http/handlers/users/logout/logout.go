// Package logout реализует HTTP-обработчик выхода пользователя.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
)

type Service interface {
	Logout(ctx context.Context, userID string) error
}

// Handler обрабатывает POST /users/logout: сбрасывает refresh-токен и cookie.
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
// @Summary Выход пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFrom(r.Context())
	if !ok {
		response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
		return
	}

	if err := h.service.Logout(r.Context(), userID); err != nil {
		log.Error("logout failed", slog.String("user_id", userID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	middlewarectx.ClearTokenCookies(w)
	log.Info("user logged out", slog.String("user_id", userID))
	response.Write(w, r, http.StatusOK, nil, "user logged out")
}
