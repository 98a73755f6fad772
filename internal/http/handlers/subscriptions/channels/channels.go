// Package channels реализует HTTP-обработчик списка каналов, на которые подписан пользователь.
package channels

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

// Service возвращает каналы подписчика.
type Service interface {
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]models.SubscribedChannelEntry, error)
}

// Handler обрабатывает GET /subscriptions/u/{subscriberId}.
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
// @Summary Каналы, на которые подписан пользователь
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param subscriberId path string true "ID подписчика"
// @Success 200 {object} response.Response{data=[]models.SubscribedChannelEntry}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Подписок нет"
// @Failure 500 {object} response.ErrorResponse
// @Router /subscriptions/u/{subscriberId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscriptions.channels"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subscriberID := chi.URLParam(r, "subscriberId")
	entries, err := h.service.ListSubscribedChannels(r.Context(), subscriberID)
	if err != nil {
		log.Error("failed to list subscribed channels", slog.String("subscriber_id", subscriberID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("subscribed channels fetched", slog.Int("count", len(entries)))
	response.Write(w, r, http.StatusOK, entries, "subscribed channels fetched successfully")
}
