package updateaccount

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/vidhub/internal/apperr"
	"github.com/magabrotheeeer/vidhub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vidhub/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) UpdateAccount(ctx context.Context, userID, fullname, email string) (*models.PublicUser, error) {
	args := m.Called(ctx, userID, fullname, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicUser), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestUpdateAccountHandler(t *testing.T) {
	const userID = "7a1f0a52-3c1b-4c87-9d5e-2f1c0b7a9e11"

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "updated",
			body: `{"fullname":"Alice L","email":"new@example.com"}`,
			setupMock: func(m *ServiceMock) {
				m.On("UpdateAccount", mock.Anything, userID, "Alice L", "new@example.com").
					Return(&models.PublicUser{ID: userID, Fullname: "Alice L", Email: "new@example.com"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"new@example.com"`,
		},
		{
			name:       "invalid email",
			body:       `{"fullname":"Alice","email":"nope"}`,
			setupMock:  func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `must be a valid email`,
		},
		{
			name: "email taken",
			body: `{"fullname":"Alice","email":"bob@example.com"}`,
			setupMock: func(m *ServiceMock) {
				m.On("UpdateAccount", mock.Anything, userID, "Alice", "bob@example.com").
					Return(nil, apperr.Conflict("email is already in use")).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"errorKind":"Conflict"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/users/update-account", strings.NewReader(tt.body))
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, userID))
			rr := httptest.NewRecorder()

			New(newNoopLogger(), svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
