// Package vidhub собирает HTTP API: маршруты, middleware и зависимости.
package vidhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/vidhub/internal/config"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/health"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/subscriptions/channels"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/subscriptions/subscribers"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/subscriptions/toggle"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/changepassword"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/channelprofile"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/currentuser"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/history"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/image"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/login"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/logout"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/recordview"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/refresh"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/register"
	"github.com/magabrotheeeer/vidhub/internal/http/handlers/users/updateaccount"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
)

// AccountService — операции аккаунта, которые нужны обработчикам /users.
type AccountService interface {
	register.Service
	login.Service
	logout.Service
	refresh.Service
	changepassword.Service
	currentuser.Service
	updateaccount.Service
	image.Service
	recordview.Service
}

// GraphService — чтение графа подписок и истории просмотров.
type GraphService interface {
	subscribers.Service
	channels.Service
	channelprofile.Service
	history.Service
}

// Services — зависимости маршрутов.
type Services struct {
	Accounts      AccountService
	Subscriptions toggle.Service
	Graph         GraphService
	Tokens        middlewarectx.TokenParser
	Health        health.Checker
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc Services, limit config.RateLimit) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, limit))

		// Открытые конечные точки
		r.Post("/users/register", register.New(logger, svc.Accounts).ServeHTTP)
		r.Post("/users/login", login.New(logger, svc.Accounts).ServeHTTP)
		r.Post("/users/refresh-token", refresh.New(logger, svc.Accounts).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(logger, svc.Tokens))

			r.Post("/users/logout", logout.New(logger, svc.Accounts).ServeHTTP)
			r.Post("/users/change-password", changepassword.New(logger, svc.Accounts).ServeHTTP)
			r.Get("/users/current-user", currentuser.New(logger, svc.Accounts).ServeHTTP)
			r.Patch("/users/update-account", updateaccount.New(logger, svc.Accounts).ServeHTTP)
			r.Patch("/users/avatar", image.NewAvatar(logger, svc.Accounts).ServeHTTP)
			r.Patch("/users/cover-image", image.NewCoverImage(logger, svc.Accounts).ServeHTTP)
			r.Get("/users/c/{username}", channelprofile.New(logger, svc.Graph).ServeHTTP)
			r.Get("/users/history", history.New(logger, svc.Graph).ServeHTTP)
			r.Post("/users/history/{videoId}", recordview.New(logger, svc.Accounts).ServeHTTP)

			r.Post("/subscriptions/c/{channelId}", toggle.New(logger, svc.Subscriptions).ServeHTTP)
			r.Get("/subscriptions/c/{channelId}", subscribers.New(logger, svc.Graph).ServeHTTP)
			r.Get("/subscriptions/u/{subscriberId}", channels.New(logger, svc.Graph).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, svc.Health).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
