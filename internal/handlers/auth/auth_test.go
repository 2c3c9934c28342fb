package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GlebRadaev/carrental/internal/domain"
	authservice "github.com/GlebRadaev/carrental/internal/service/authservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login":"renter","password":"password","name":"Alex","lastname":"Doe"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "renter", "password", "Alex", "Doe").
					Return(&domain.User{ID: 1, Login: "renter"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"renter","password":"password","name":"Alex","lastname":"Doe"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "renter", "password", "Alex", "Doe").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Internal server error",
			body: `{"login":"renter","password":"password","name":"Alex","lastname":"Doe"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "renter", "password", "Alex", "Doe").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "Error generating token",
			body: `{"login":"renter","password":"password","name":"Alex","lastname":"Doe"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "renter", "password", "Alex", "Doe").
					Return(&domain.User{ID: 1, Login: "renter"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("sign error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"login":"renter","password":"password"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "renter", "password").
					Return(&domain.User{ID: 1, Login: "renter"}, nil)
				service.EXPECT().GenerateToken(1).Return("token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"renter","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "renter", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}
