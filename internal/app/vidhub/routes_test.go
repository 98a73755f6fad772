package vidhub

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/config"
	"github.com/magabrotheeeer/vidhub/internal/lib/jwt"
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/services/auth"
	"github.com/magabrotheeeer/vidhub/internal/services/subscription"
)

type accountsStub struct {
	AccountService
}

func (accountsStub) Login(_ context.Context, _, _, _ string) (*auth.LoginResult, error) {
	return nil, apperr.NotFound("user does not exist")
}

type togglerStub struct{}

func (togglerStub) Toggle(_ context.Context, requesterID, _ string) (*subscription.Outcome, error) {
	if requesterID != "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11" {
		return nil, apperr.Unauthorized("unexpected requester")
	}
	return nil, apperr.SelfSubscription()
}

type tokensStub struct{}

func (tokensStub) ParseAccessToken(tok string) (*jwt.AccessClaims, error) {
	if tok != "good" {
		return nil, jwt.ErrInvalidToken
	}
	return &jwt.AccessClaims{UserID: "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11", Username: "alice"}, nil
}

type GraphMock struct {
	GraphService
	mock.Mock
}

func (m *GraphMock) ChannelProfile(ctx context.Context, username, requesterID string) (*models.ChannelProfile, error) {
	args := m.Called(ctx, username, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChannelProfile), args.Error(1)
}

type pingStub struct{}

func (pingStub) Ping(context.Context) error { return nil }

func newRouter() http.Handler {
	return newRouterWithGraph(&GraphMock{})
}

func newRouterWithGraph(graph GraphService) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, slog.New(slog.NewTextHandler(io.Discard, nil)), Services{
		Accounts:      accountsStub{},
		Subscriptions: togglerStub{},
		Graph:         graph,
		Tokens:        tokensStub{},
		Health:        pingStub{},
	}, config.RateLimit{RPS: 1000, Burst: 1000})
	return r
}

func TestRoutes(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"public login reaches handler", http.MethodPost, "/api/v1/users/login", `{"username":"ghost","password":"x"}`, "", http.StatusNotFound},
		{"protected route without token", http.MethodGet, "/api/v1/users/current-user", "", "", http.StatusUnauthorized},
		{"protected route with bad token", http.MethodPost, "/api/v1/subscriptions/c/abc", "", "bad", http.StatusUnauthorized},
		{"toggle with valid token", http.MethodPost, "/api/v1/subscriptions/c/abc", "", "good", http.StatusBadRequest},
		{"health", http.MethodGet, "/health", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_ChannelProfileKeepsDottedUsername(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		username string
	}{
		{"dotted username", "/api/v1/users/c/john.doe", "john.doe"},
		{"extension-like suffix", "/api/v1/users/c/clip.json", "clip.json"},
		{"plain username", "/api/v1/users/c/alice", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := &GraphMock{}
			graph.On("ChannelProfile", mock.Anything, tt.username, "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11").
				Return(&models.ChannelProfile{Username: tt.username}, nil).Once()
			router := newRouterWithGraph(graph)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", "Bearer good")
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"username":"`+tt.username+`"`)
			graph.AssertExpectations(t)
		})
	}
}
