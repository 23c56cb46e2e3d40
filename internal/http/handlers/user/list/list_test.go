package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSummary), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestListHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		users          []models.UserSummary
		mockErr        error
		wantStatusCode int
		wantBody       string
	}{
		{
			name:           "несколько пользователей",
			users:          []models.UserSummary{{Username: "alice", ID: "u1"}, {Username: "bob", ID: "u2"}},
			wantStatusCode: http.StatusOK,
			wantBody:       `[{"username":"alice","_id":"u1"},{"username":"bob","_id":"u2"}]`,
		},
		{
			name:           "пустой список",
			users:          []models.UserSummary{},
			wantStatusCode: http.StatusOK,
			wantBody:       `[]`,
		},
		{
			name:           "ошибка хранилища",
			mockErr:        &models.StorageError{Op: "storage.ListUsers", Err: errors.New("timeout")},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.mockErr != nil {
				svc.On("ListUsers", mock.Anything).Return(nil, tt.mockErr).Once()
			} else {
				svc.On("ListUsers", mock.Anything).Return(tt.users, nil).Once()
			}

			rec := httptest.NewRecorder()
			New(newNoopLogger(), svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exercise/users", nil))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.mockErr != nil {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}
