// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Запрос принимается как multipart/form-data: текстовые поля username, email,
// fullname, password и файлы avatar (обязателен) и coverImage.
package register

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/formfile"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/services/auth"
)

// Request — текстовые поля формы регистрации.
type Request struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Fullname string `validate:"required"`
	Password string `validate:"required"`
}

// Service описывает операцию регистрации.
type Service interface {
	Register(ctx context.Context, in auth.RegisterInput) (*models.PublicUser, error)
}

// Handler обрабатывает POST /users/register.
type Handler struct {
	log       *slog.Logger
	service   Service
	validate  *validator.Validate
	maxUpload int64
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:       log,
		service:   service,
		validate:  validator.New(),
		maxUpload: formfile.MaxUploadSize,
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Имя пользователя"
// @Param email formData string true "Email"
// @Param fullname formData string true "Полное имя"
// @Param password formData string true "Пароль"
// @Param avatar formData file true "Аватар"
// @Param coverImage formData file false "Обложка"
// @Success 201 {object} response.Response{data=models.PublicUser}
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 409 {object} response.ErrorResponse "Пользователь уже существует"
// @Failure 500 {object} response.ErrorResponse
// @Router /users/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := formfile.Parse(w, r, h.maxUpload); err != nil {
		log.Info("failed to parse multipart form", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	req := Request{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Fullname: r.FormValue("fullname"),
		Password: r.FormValue("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.WriteError(w, r, response.ValidationError(err))
		return
	}

	avatar, err := formfile.Get(r, "avatar")
	if err != nil {
		log.Error("failed to read avatar", sl.Err(err))
		response.WriteError(w, r, apperr.InvalidInput("invalid avatar file"))
		return
	}
	if avatar == nil {
		response.WriteError(w, r, apperr.InvalidInput("avatar file is required"))
		return
	}
	defer formfile.Close(avatar)
	cover, err := formfile.Get(r, "coverImage")
	if err != nil {
		log.Error("failed to read cover image", sl.Err(err))
		response.WriteError(w, r, apperr.InvalidInput("invalid cover image file"))
		return
	}
	defer formfile.Close(cover)

	user, err := h.service.Register(r.Context(), auth.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Fullname:   req.Fullname,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		log.Error("registration failed", slog.String("username", req.Username), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	response.Write(w, r, http.StatusCreated, user, "user registered successfully")
}
