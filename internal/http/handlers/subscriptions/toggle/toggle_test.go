package toggle

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/models"
	"github.com/magabrotheeeer/vidhub/internal/services/subscription"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Toggle(ctx context.Context, requesterID, channelID string) (*subscription.Outcome, error) {
	args := m.Called(ctx, requesterID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Outcome), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

const (
	userID    = "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11"
	channelID = "0b3c9f3e-4c44-4a3d-8c6e-5a9d6f0e7b22"
)

func newRequest(user, channel string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/subscriptions/c/"+channel, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("channelId", channel)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
	if user != "" {
		ctx = context.WithValue(ctx, middlewarectx.UserID, user)
	}
	return req.WithContext(ctx)
}

func TestHandler_ServeHTTP(t *testing.T) {
	edge := &models.Subscription{ID: "e-1", Subscriber: userID, Channel: channelID, CreatedAt: time.Now().UTC()}

	tests := []struct {
		name        string
		user        string
		setupMock   func(m *ServiceMock)
		wantStatus  int
		wantMessage string
		wantKind    string
		wantEmpty   bool
	}{
		{
			name: "subscribe",
			user: userID,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, userID, channelID).Return(&subscription.Outcome{
					State: models.Present, Subscription: edge, Message: subscription.MessageSubscribed,
				}, nil).Once()
			},
			wantStatus:  http.StatusCreated,
			wantMessage: "subscribed",
		},
		{
			name: "unsubscribe returns empty object",
			user: userID,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, userID, channelID).Return(&subscription.Outcome{
					State: models.Absent, Message: subscription.MessageUnsubscribed,
				}, nil).Once()
			},
			wantStatus:  http.StatusOK,
			wantMessage: "unsubscribed",
			wantEmpty:   true,
		},
		{
			name: "self subscription",
			user: userID,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, userID, channelID).Return(nil, apperr.SelfSubscription()).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantKind:   "SelfSubscriptionError",
		},
		{
			name: "channel not found",
			user: userID,
			setupMock: func(m *ServiceMock) {
				m.On("Toggle", mock.Anything, userID, channelID).Return(nil, apperr.NotFound("channel not found")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantKind:   "NotFound",
		},
		{
			name:       "no user in context",
			setupMock:  func(_ *ServiceMock) {},
			wantStatus: http.StatusUnauthorized,
			wantKind:   "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			rr := httptest.NewRecorder()

			New(newNoopLogger(), svc).ServeHTTP(rr, newRequest(tt.user, channelID))

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.EqualValues(t, tt.wantStatus, body["statusCode"])
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, body["errorKind"])
				assert.Equal(t, false, body["success"])
			} else {
				assert.Equal(t, tt.wantMessage, body["message"])
				assert.Equal(t, true, body["success"])
			}
			if tt.wantEmpty {
				assert.Equal(t, map[string]any{}, body["data"])
			}
			svc.AssertExpectations(t)
		})
	}
}
