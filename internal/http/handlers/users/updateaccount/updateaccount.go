// Package updateaccount реализует HTTP-обработчик изменения fullname и email.
package updateaccount

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type Request struct {
	Fullname string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type Service interface {
	UpdateAccount(ctx context.Context, userID, fullname, email string) (*models.PublicUser, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменение данных аккаунта
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Новые fullname и email"
// @Success 200 {object} response.Response{data=models.PublicUser}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Email уже занят"
// @Failure 500 {object} response.ErrorResponse
// @Router /users/update-account [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.updateaccount"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFrom(r.Context())
	if !ok {
		response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.WriteError(w, r, response.ValidationError(err))
		return
	}

	user, err := h.service.UpdateAccount(r.Context(), userID, req.Fullname, req.Email)
	if err != nil {
		log.Error("failed to update account", slog.String("user_id", userID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("account updated", slog.String("user_id", userID))
	response.Write(w, r, http.StatusOK, user, "account details updated successfully")
}
