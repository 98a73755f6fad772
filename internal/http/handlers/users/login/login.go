// Package login реализует HTTP-обработчик входа пользователя.
//
// Вход возможен по username или email вместе с паролем. При успехе
// возвращается пользователь и пара токенов, токены также выставляются в cookie.
package login

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
	"github.com/magabrotheeeer/vidhub/internal/services/auth"
)

// Request — учетные данные. Достаточно одного из полей username и email.
type Request struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"required_without=Username"`
	Password string `json:"password" validate:"required"`
}

// Handler обрабатывает POST /users/login.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает операцию входа.
type Service interface {
	Login(ctx context.Context, username, email, password string) (*auth.LoginResult, error)
}

// New создает обработчик входа.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Аутентифицирует пользователя по username или email и паролю
// @Tags Users
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные"
// @Success 200 {object} response.Response{data=auth.LoginResult}
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 401 {object} response.ErrorResponse "Неверный пароль"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse
// @Router /users/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.WriteError(w, r, response.ValidationError(err))
		return
	}

	res, err := h.service.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		log.Info("login failed", slog.String("username", req.Username), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	middlewarectx.SetTokenCookies(w, res.AccessToken, res.RefreshToken)
	log.Info("user logged in", slog.String("user_id", res.User.ID))
	response.Write(w, r, http.StatusOK, res, "user logged in successfully")
}
