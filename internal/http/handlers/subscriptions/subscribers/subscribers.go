// Package subscribers реализует HTTP-обработчик списка подписчиков канала.
package subscribers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

// Service возвращает подписчиков канала.
type Service interface {
	ListSubscribers(ctx context.Context, channelID string) ([]models.SubscriberEntry, error)
}

// Handler обрабатывает GET /subscriptions/c/{channelId}.
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
// @Summary Подписчики канала
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "ID канала"
// @Success 200 {object} response.Response{data=[]models.SubscriberEntry}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Подписчиков нет"
// @Failure 500 {object} response.ErrorResponse
// @Router /subscriptions/c/{channelId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscriptions.subscribers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	channelID := chi.URLParam(r, "channelId")
	entries, err := h.service.ListSubscribers(r.Context(), channelID)
	if err != nil {
		log.Error("failed to list subscribers", slog.String("channel_id", channelID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("subscribers fetched", slog.Int("count", len(entries)))
	response.Write(w, r, http.StatusOK, entries, "channel subscribers fetched successfully")
}
