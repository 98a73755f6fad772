// Package history реализует HTTP-обработчик истории просмотров текущего пользователя.
package history

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type Service interface {
	WatchHistory(ctx context.Context, userID string) ([]models.Video, error)
}

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
// @Summary История просмотров
// @Description Видео в порядке просмотра, вместе с владельцем. Пустая история возвращается как []
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.Video}
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFrom(r.Context())
	if !ok {
		response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
		return
	}

	videos, err := h.service.WatchHistory(r.Context(), userID)
	if err != nil {
		log.Error("failed to fetch watch history", slog.String("user_id", userID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}
	response.Write(w, r, http.StatusOK, videos, "watch history fetched successfully")
}
