// Package changepassword реализует HTTP-обработчик смены пароля.
package changepassword

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
)

type Request struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type Service interface {
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}

// Handler обрабатывает POST /users/change-password.
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
// @Summary Смена пароля
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body Request true "Старый и новый пароль"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Неверный старый пароль"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/change-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.changepassword"

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

	if err := h.service.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		log.Info("failed to change password", slog.String("user_id", userID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("password changed", slog.String("user_id", userID))
	response.Write(w, r, http.StatusOK, nil, "password changed successfully")
}
