// Package auth содержит логику аккаунтов: регистрацию, вход, ротацию токенов,
// смену пароля и обновление профиля.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/lib/jwt"
	"github.com/magabrotheeeer/vidhub/internal/lib/objectid"
	"github.com/magabrotheeeer/vidhub/internal/lib/password"
	"github.com/magabrotheeeer/vidhub/internal/lib/sl"
	"github.com/magabrotheeeer/vidhub/internal/media"
	"github.com/magabrotheeeer/vidhub/internal/metrics"
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/storage/repository"
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	UpdateAccount(ctx context.Context, id, fullname, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, id, url string) (*models.User, error)
	UpdateCoverImage(ctx context.Context, id, url string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetRefreshToken(ctx context.Context, id, token string) error
	ClearRefreshToken(ctx context.Context, id string) error
	AppendWatchHistory(ctx context.Context, userID, videoID string) error
}

// Uploader загружает изображения во внешнее хранилище.
type Uploader interface {
	Upload(ctx context.Context, folder string, file media.File) (string, error)
	Delete(ctx context.Context, url string) error
}

// RegistrationHook вызывается после создания пользователя.
type RegistrationHook interface {
	UserRegistered(ctx context.Context, event models.UserRegisteredEvent) error
}

// RegisterInput — данные регистрации. CoverImage необязателен.
type RegisterInput struct {
	Username   string
	Email      string
	Fullname   string
	Password   string
	Avatar     *media.File
	CoverImage *media.File
}

// Tokens — пара токенов.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult — пользователь и выпущенные ему токены.
type LoginResult struct {
	User *models.PublicUser `json:"user"`
	Tokens
}

// Service реализует операции аккаунта.
type Service struct {
	users    UserRepository
	tokens   jwt.Maker
	uploader Uploader
	hook     RegistrationHook
	log      *slog.Logger
}

// New создаёт сервис аккаунтов.
func New(users UserRepository, tokens jwt.Maker, uploader Uploader, hook RegistrationHook, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		uploader: uploader,
		hook:     hook,
		log:      log,
	}
}

// Register создаёт пользователя, загружает аватар (и обложку) и вызывает хук регистрации.
// Ошибка хука логируется и не откатывает создание пользователя.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.PublicUser, error) {
	const op = "auth.Register"

	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.TrimSpace(in.Email)
	fullname := strings.TrimSpace(in.Fullname)
	if username == "" || email == "" || fullname == "" || strings.TrimSpace(in.Password) == "" {
		return nil, apperr.InvalidInput("all fields are required")
	}

	_, err := s.users.FindUserByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("user with email or username already exists")
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	if in.Avatar == nil {
		return nil, apperr.InvalidInput("avatar file is required")
	}
	avatarURL, err := s.uploader.Upload(ctx, media.FolderAvatars, *in.Avatar)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: upload avatar: %w", op, err))
	}

	var coverURL string
	if in.CoverImage != nil {
		coverURL, err = s.uploader.Upload(ctx, media.FolderCovers, *in.CoverImage)
		if err != nil {
			s.log.Warn("failed to upload cover image, continuing without it", sl.Err(err))
			coverURL = ""
		}
	}

	hash, err := password.GetHash(in.Password)
	if err != nil {
		s.discard(ctx, avatarURL, coverURL)
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		Fullname:     fullname,
		PasswordHash: hash,
		Avatar:       avatarURL,
		CoverImage:   coverURL,
	})
	if err != nil {
		s.discard(ctx, avatarURL, coverURL)
		if errors.Is(err, repository.ErrUserExists) {
			return nil, apperr.Conflict("user with email or username already exists")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	s.log.Info("user registered", slog.String("user_id", user.ID), slog.String("username", user.Username))

	event := models.UserRegisteredEvent{UserID: user.ID, Username: user.Username, OccurredAt: time.Now().UTC()}
	if err := s.hook.UserRegistered(ctx, event); err != nil {
		metrics.RecordHookFailure()
		s.log.Error("post-registration hook failed", slog.String("user_id", user.ID), sl.Err(err))
	}

	return user.Public(), nil
}

// discard удаляет загруженные изображения, если пользователь не был создан.
func (s *Service) discard(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.uploader.Delete(ctx, url); err != nil {
			s.log.Warn("failed to delete orphan image", slog.String("url", url), sl.Err(err))
		}
	}
}

// Login проверяет учётные данные по username или email и выпускает пару токенов.
func (s *Service) Login(ctx context.Context, username, email, rawPassword string) (*LoginResult, error) {
	const op = "auth.Login"

	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.TrimSpace(email)
	if username == "" && email == "" {
		return nil, apperr.InvalidInput("username or email required")
	}

	user, err := s.users.FindUserByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user does not exist")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, apperr.Unauthorized("password is incorrect")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	s.log.Info("user logged in", slog.String("user_id", user.ID))

	return &LoginResult{User: user.Public(), Tokens: *tokens}, nil
}

// issueTokens выпускает пару токенов и сохраняет refresh-токен в единственный слот пользователя.
func (s *Service) issueTokens(ctx context.Context, user *models.User) (*Tokens, error) {
	access, err := s.tokens.IssueAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout очищает сохранённый refresh-токен.
func (s *Service) Logout(ctx context.Context, userID string) error {
	const op = "auth.Logout"

	id, err := objectid.Normalize(userID)
	if err != nil {
		return apperr.InvalidIdentifier("invalid user id")
	}
	if err := s.users.ClearRefreshToken(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

// Refresh проверяет refresh-токен и ротирует пару токенов.
// Токен должен совпадать с сохранённым у пользователя, иначе он считается использованным.
func (s *Service) Refresh(ctx context.Context, token string) (*Tokens, error) {
	const op = "auth.Refresh"

	if strings.TrimSpace(token) == "" {
		return nil, apperr.Unauthorized("unauthorized request")
	}

	userID, err := s.tokens.VerifyRefreshToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token").WithCause(err)
	}

	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Unauthorized("invalid refresh token")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	if user.RefreshToken == "" || user.RefreshToken != token {
		return nil, apperr.Unauthorized("refresh token is expired or used")
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	return tokens, nil
}

// ChangePassword меняет пароль после проверки старого.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	const op = "auth.ChangePassword"

	if oldPassword == "" || strings.TrimSpace(newPassword) == "" {
		return apperr.InvalidInput("old and new password are required")
	}
	user, err := s.findUser(ctx, op, userID)
	if err != nil {
		return err
	}

	if err := password.CompareHash(user.PasswordHash, oldPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return apperr.InvalidInput("invalid old password")
		}
		return apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	hash, err := password.GetHash(newPassword)
	if err != nil {
		return apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	return nil
}

// CurrentUser возвращает публичный профиль пользователя.
func (s *Service) CurrentUser(ctx context.Context, userID string) (*models.PublicUser, error) {
	user, err := s.findUser(ctx, "auth.CurrentUser", userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *Service) findUser(ctx context.Context, op, userID string) (*models.User, error) {
	id, err := objectid.Normalize(userID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid user id")
	}
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	return user, nil
}

// UpdateAccount меняет fullname и email.
func (s *Service) UpdateAccount(ctx context.Context, userID, fullname, email string) (*models.PublicUser, error) {
	const op = "auth.UpdateAccount"

	fullname = strings.TrimSpace(fullname)
	email = strings.TrimSpace(email)
	if fullname == "" || email == "" {
		return nil, apperr.InvalidInput("email and fullname are required")
	}
	id, err := objectid.Normalize(userID)
	if err != nil {
		return nil, apperr.InvalidIdentifier("invalid user id")
	}

	user, err := s.users.UpdateAccount(ctx, id, fullname, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserExists):
			return nil, apperr.Conflict("email is already in use")
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	return user.Public(), nil
}

// UpdateAvatar загружает новый аватар и удаляет прежний.
func (s *Service) UpdateAvatar(ctx context.Context, userID string, file *media.File) (*models.PublicUser, error) {
	if file == nil {
		return nil, apperr.InvalidInput("new avatar file is missing")
	}
	return s.replaceImage(ctx, "auth.UpdateAvatar", userID, media.FolderAvatars, *file,
		func(u *models.User) string { return u.Avatar },
		s.users.UpdateAvatar)
}

// UpdateCoverImage загружает новую обложку и удаляет прежнюю.
func (s *Service) UpdateCoverImage(ctx context.Context, userID string, file *media.File) (*models.PublicUser, error) {
	if file == nil {
		return nil, apperr.InvalidInput("new cover image file is missing")
	}
	return s.replaceImage(ctx, "auth.UpdateCoverImage", userID, media.FolderCovers, *file,
		func(u *models.User) string { return u.CoverImage },
		s.users.UpdateCoverImage)
}

func (s *Service) replaceImage(ctx context.Context, op, userID, folder string, file media.File,
	current func(*models.User) string,
	save func(ctx context.Context, id, url string) (*models.User, error),
) (*models.PublicUser, error) {
	user, err := s.findUser(ctx, op, userID)
	if err != nil {
		return nil, err
	}
	previous := current(user)

	url, err := s.uploader.Upload(ctx, folder, file)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("%s: upload: %w", op, err))
	}

	updated, err := save(ctx, user.ID, url)
	if err != nil {
		s.discard(ctx, url)
		return nil, apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}

	if previous != "" {
		if err := s.uploader.Delete(ctx, previous); err != nil {
			s.log.Warn("failed to delete previous image", slog.String("url", previous), sl.Err(err))
		}
	}
	return updated.Public(), nil
}

// RecordView добавляет видео в историю просмотров пользователя.
func (s *Service) RecordView(ctx context.Context, userID, videoID string) error {
	const op = "auth.RecordView"

	user, err := objectid.Normalize(userID)
	if err != nil {
		return apperr.InvalidIdentifier("invalid user id")
	}
	video, err := objectid.Normalize(videoID)
	if err != nil {
		return apperr.InvalidIdentifier("invalid videoId")
	}
	if err := s.users.AppendWatchHistory(ctx, user, video); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("video not found")
		}
		return apperr.Internal(fmt.Errorf("%s: %w", op, err))
	}
	return nil
}
