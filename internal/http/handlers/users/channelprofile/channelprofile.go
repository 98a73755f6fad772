// Package channelprofile реализует HTTP-обработчик публичного профиля канала.
package channelprofile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type Service interface {
	ChannelProfile(ctx context.Context, username, requesterID string) (*models.ChannelProfile, error)
}

// Handler обрабатывает GET /users/c/{username}.
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
// @Summary Профиль канала
// @Description Профиль со счетчиками подписчиков и подписок и признаком подписки текущего пользователя
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Имя канала"
// @Success 200 {object} response.Response{data=models.ChannelProfile}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Канал не существует"
// @Failure 500 {object} response.ErrorResponse
// @Router /users/c/{username} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.channelprofile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username := chi.URLParam(r, "username")
	requesterID, _ := middlewarectx.UserIDFrom(r.Context())

	profile, err := h.service.ChannelProfile(r.Context(), username, requesterID)
	if err != nil {
		log.Error("failed to build channel profile", slog.String("username", username), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}
	response.Write(w, r, http.StatusOK, profile, "user channel fetched successfully")
}
