package channels

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]models.SubscribedChannelEntry, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubscribedChannelEntry), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_ServeHTTP(t *testing.T) {
	const subscriberID = "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11"

	tests := []struct {
		name       string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "channels found",
			setupMock: func(m *ServiceMock) {
				m.On("ListSubscribedChannels", mock.Anything, subscriberID).Return([]models.SubscribedChannelEntry{
					{ID: "e-1", Channel: models.ProfileRef{ID: "c-1", Username: "carol"}},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"username":"carol"`,
		},
		{
			name: "no channels",
			setupMock: func(m *ServiceMock) {
				m.On("ListSubscribedChannels", mock.Anything, subscriberID).
					Return(nil, apperr.NotFound("no subscribed channels found")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"message":"no subscribed channels found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/u/"+subscriberID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("subscriberId", subscriberID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			New(newNoopLogger(), svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
