// Package image реализует HTTP-обработчики замены аватара и обложки профиля.
//
// Файл передается как multipart/form-data в поле avatar или coverImage.
package image

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/formfile"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/http/response"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/media"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type Service interface {
	UpdateAvatar(ctx context.Context, userID string, file *media.File) (*models.PublicUser, error)
	UpdateCoverImage(ctx context.Context, userID string, file *media.File) (*models.PublicUser, error)
}

// Handler заменяет одно изображение профиля.
type Handler struct {
	log     *slog.Logger
	op      string
	field   string
	message string
	cover   bool
	service Service

	maxUpload int64
}

// NewAvatar создает обработчик PATCH /users/avatar.
func NewAvatar(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		op:      "handlers.users.image.avatar",
		field:   "avatar",
		message: "avatar image updated",
		service: service,

		maxUpload: formfile.MaxUploadSize,
	}
}

// NewCoverImage создает обработчик PATCH /users/cover-image.
func NewCoverImage(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		op:      "handlers.users.image.cover",
		field:   "coverImage",
		message: "cover image updated",
		cover:   true,
		service: service,

		maxUpload: formfile.MaxUploadSize,
	}
}

// ServeHTTP godoc
// @Summary Замена аватара или обложки
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file false "Новый аватар (для /users/avatar)"
// @Param coverImage formData file false "Новая обложка (для /users/cover-image)"
// @Success 200 {object} response.Response{data=models.PublicUser}
// @Failure 400 {object} response.ErrorResponse "Файл не передан"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/avatar [patch]
// @Router /users/cover-image [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		slog.String("op", h.op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := middlewarectx.UserIDFrom(r.Context())
	if !ok {
		response.WriteError(w, r, apperr.Unauthorized("unauthorized request"))
		return
	}

	if err := formfile.Parse(w, r, h.maxUpload); err != nil {
		log.Info("failed to parse multipart form", sl.Err(err))
		response.WriteError(w, r, err)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, err := formfile.Get(r, h.field)
	if err != nil {
		log.Error("failed to read uploaded file", sl.Err(err))
		response.WriteError(w, r, apperr.InvalidInput("invalid "+h.field+" file"))
		return
	}
	defer formfile.Close(file)

	var user *models.PublicUser
	if h.cover {
		user, err = h.service.UpdateCoverImage(r.Context(), userID, file)
	} else {
		user, err = h.service.UpdateAvatar(r.Context(), userID, file)
	}
	if err != nil {
		log.Error("failed to update image", slog.String("user_id", userID), sl.Err(err))
		response.WriteError(w, r, err)
		return
	}

	log.Info("image updated", slog.String("user_id", userID), slog.String("field", h.field))
	response.Write(w, r, http.StatusOK, user, h.message)
}
