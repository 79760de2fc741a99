package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vfasacco/saccoledger/internal/domain"
	"github.com/vfasacco/saccoledger/internal/dto"
	authservice "github.com/vfasacco/saccoledger/internal/service/authservice"
	pkgauth "github.com/vfasacco/saccoledger/pkg/auth"
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
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"login":"teller1","password":"testpassword","role":"manager"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "teller1", "testpassword", "manager").
					Return(&domain.User{ID: 1, Login: "teller1", Role: pkgauth.RoleManager}, nil)
				service.EXPECT().GenerateToken(1, pkgauth.RoleManager).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"login":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Missing credentials",
			body:          `{"login":"teller1"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "login and password are required",
		},
		{
			name: "Login already taken",
			body: `{"login":"teller1","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "teller1", "testpassword", "").
					Return(nil, authservice.ErrLoginTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrLoginTaken.Error(),
		},
		{
			name: "Unknown role",
			body: `{"login":"teller1","password":"testpassword","role":"superuser"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "teller1", "testpassword", "superuser").
					Return(nil, authservice.ErrInvalidRole)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidRole.Error(),
		},
		{
			name: "Internal server error",
			body: `{"login":"teller1","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "teller1", "testpassword", "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.LoginResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "token", body.Token)
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
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"login":"teller1","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "teller1", "testpassword").
					Return(&domain.User{ID: 1, Login: "teller1", Role: pkgauth.RoleManager}, nil)
				service.EXPECT().GenerateToken(1, pkgauth.RoleManager).Return("token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"login":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Invalid credentials",
			body: `{"login":"teller1","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "teller1", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: authservice.ErrInvalidCredentials.Error(),
		},
		{
			name: "Internal server error",
			body: `{"login":"teller1","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "teller1", "testpassword").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
