// Package toggle реализует HTTP-обработчик переключения подписки на канал.
//
// Повторный запрос к тому же каналу отменяет подписку: 201 и "subscribed"
// при создании связи, 200 и "unsubscribed" при удалении.
package toggle

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
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/services/subscription"
)

// Service описывает движок переключения подписок.
type Service interface {
	Toggle(ctx context.Context, requesterID, channelID string) (*subscription.Outcome, error)
}

// Handler обрабатывает POST /subscriptions/c/{channelId}.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает обработчик переключения подписки.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подписаться на канал или отписаться от него
// @Description Переключает подписку текущего пользователя на канал
// @Tags Subscriptions
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "ID канала"
// @Success 201 {object} response.Response "Подписка создана"
// @Success 200 {object} response.Response "Подписка отменена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или подписка на себя"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Канал не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /subscriptions/c/{channelId} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscriptions.toggle"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFrom(r.Context())
	if !ok {
		log.Error("user id missing in context")
		response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
		return
	}

	channelID := chi.URLParam(r, "channelId")
	out, err := h.service.Toggle(r.Context(), userID, channelID)
	if err != nil {
		log.Error("failed to toggle subscription", slog.String("channel_id", channelID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	if out.State == models.Present {
		log.Info("subscribed", slog.String("channel_id", channelID))
		response.Write(w, r, http.StatusCreated, out.Subscription, out.Message)
		return
	}
	log.Info("unsubscribed", slog.String("channel_id", channelID))
	response.Write(w, r, http.StatusOK, nil, out.Message)
}
