package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ListSubscribers(ctx context.Context, channelID string) ([]models.SubscriberEntry, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubscriberEntry), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestHandler_ServeHTTP(t *testing.T) {
	const channelID = "0b3c9f3e-4c44-4a3d-8c6e-5a9d6f0e7b22"
	entries := []models.SubscriberEntry{{
		ID:         "e-1",
		Subscriber: models.ProfileRef{ID: "u-1", Username: "bob", Avatar: "https://img/bob.png"},
		Channel:    channelID,
		CreatedAt:  time.Now().UTC(),
	}}

	tests := []struct {
		name       string
		param      string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "subscribers found",
			param: channelID,
			setupMock: func(m *ServiceMock) {
				m.On("ListSubscribers", mock.Anything, channelID).Return(entries, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"username":"bob"`,
		},
		{
			name:  "no subscribers",
			param: channelID,
			setupMock: func(m *ServiceMock) {
				m.On("ListSubscribers", mock.Anything, channelID).Return(nil, apperr.NotFound("no subscriber found")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"message":"no subscriber found"`,
		},
		{
			name:  "invalid id",
			param: "zzz",
			setupMock: func(m *ServiceMock) {
				m.On("ListSubscribers", mock.Anything, "zzz").Return(nil, apperr.InvalidIdentifier("invalid channelId")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"errorKind":"InvalidIdentifier"`,
		},
		{
			name:  "internal error hides details",
			param: channelID,
			setupMock: func(m *ServiceMock) {
				m.On("ListSubscribers", mock.Anything, channelID).Return(nil, apperr.Internal(errors.New("db down"))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"message":"internal error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/subscriptions/c/"+tt.param, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("channelId", tt.param)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			New(newNoopLogger(), svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.True(t, json.Valid(rr.Body.Bytes()))
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_ResponseShape(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListSubscribers", mock.Anything, "c").Return([]models.SubscriberEntry{{ID: "e-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("channelId", "c")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	New(newNoopLogger(), svc).ServeHTTP(rr, req)

	var got struct {
		StatusCode int                      `json:"statusCode"`
		Data       []models.SubscriberEntry `json:"data"`
		Success    bool                     `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.True(t, got.Success)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "e-1", got.Data[0].ID)
}
