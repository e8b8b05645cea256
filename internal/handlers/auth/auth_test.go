package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/exiat/backend/internal/domain"
	"github.com/exiat/backend/internal/service/authservice"
	pkgauth "github.com/exiat/backend/pkg/auth"
	"github.com/exiat/backend/pkg/utils"
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
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"student@school.edu","password":"password123","name":"Ada","role":"Student","reg_number":"2021/123456"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), authservice.RegisterInput{
					Email:     "student@school.edu",
					Password:  "password123",
					Name:      "Ada",
					Role:      domain.RoleStudent,
					RegNumber: "2021/123456",
				}).Return(&domain.User{ID: 1, Email: "student@school.edu"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Email already registered",
			body: `{"email":"taken@school.edu","password":"password123","name":"Ada","role":"Student"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrEmailTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Unknown role rejected",
			body:         `{"email":"x@school.edu","password":"password123","name":"X","role":"Janitor"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: `{"email":"student@school.edu","password":"password123","name":"Ada","role":"Student"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
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
			body: `{"email":"user@school.edu","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "user@school.edu", "password123").
					Return(&domain.User{ID: 1, Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer some-jwt-token",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"user@school.edu","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "user@school.edu", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Error generating token",
			body: `{"email":"user@school.edu","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "user@school.edu", "password123").
					Return(&domain.User{ID: 1, Role: domain.RoleStudent}, nil)
				service.EXPECT().GenerateToken(1, domain.RoleStudent).Return("", errors.New("sign error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestForgotHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Reset token issued",
			body: `{"email":"user@school.edu"}`,
			prepareMock: func() {
				service.EXPECT().ForgotPassword(gomock.Any(), "user@school.edu").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid email",
			body:         `{"email":"not-an-email"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: `{"email":"user@school.edu"}`,
			prepareMock: func() {
				service.EXPECT().ForgotPassword(gomock.Any(), "user@school.edu").Return(errors.New("smtp down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/forgot", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Forgot(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestResetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful reset",
			body: `{"token":"goodtoken","password":"newpass"}`,
			prepareMock: func() {
				service.EXPECT().ResetPassword(gomock.Any(), "goodtoken", "newpass").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid token",
			body: `{"token":"badtoken","password":"newpass"}`,
			prepareMock: func() {
				service.EXPECT().ResetPassword(gomock.Any(), "badtoken", "newpass").Return(authservice.ErrInvalidResetToken)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing token",
			body:         `{"password":"newpass"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/reset", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Reset(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdatePasswordHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful change",
			body: `{"password":"newpass","confirm_password":"newpass"}`,
			prepareMock: func() {
				service.EXPECT().UpdatePassword(gomock.Any(), 1, "newpass").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Passwords do not match",
			body:         `{"password":"newpass","confirm_password":"other"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/account/password", bytes.NewBufferString(tt.body))
			ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, 1)
			w := httptest.NewRecorder()
			handler.UpdatePassword(w, req.WithContext(ctx))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
