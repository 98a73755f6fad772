// Package recordview реализует HTTP-обработчик добавления видео в историю просмотров.
package recordview

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
)

type Service interface {
	RecordView(ctx context.Context, userID, videoID string) error
}

// Handler обрабатывает POST /users/history/{videoId}.
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
// @Summary Отметить просмотр видео
// @Description Повторный просмотр переносит видео в конец истории
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "ID видео"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 500 {object} response.ErrorResponse
// @Router /users/history/{videoId} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.recordview"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFrom(r.Context())
	if !ok {
		response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
		return
	}

	videoID := chi.URLParam(r, "videoId")
	if err := h.service.RecordView(r.Context(), userID, videoID); err != nil {
		log.Error("failed to record view", slog.String("video_id", videoID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}
	response.Write(w, r, http.StatusOK, nil, "video added to watch history")
}
