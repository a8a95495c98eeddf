package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"phonecat/internal/apperr"
	"phonecat/internal/auth"
	"phonecat/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, creds auth.Credentials) (*model.User, string, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, creds auth.Credentials) (*model.User, string, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func perform(h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	email := "a@b.com"
	user := &model.User{ID: uuid.New(), Email: &email, PasswordHash: "hashed", Role: model.RoleUser}

	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, mock.Anything).Return(user, "Bearer tok", nil)

	rec := perform(NewAuthHandler(mockSvc).Register, `{"email":"a@b.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, "Bearer tok")
	// the stored hash must never be serialized to clients
	assert.NotContains(t, body, "hashed")
	assert.NotContains(t, body, "password")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, mock.Anything).Return(nil, "", apperr.Conflict("email"))

	rec := perform(NewAuthHandler(mockSvc).Register, `{"email":"a@b.com","password":"secret123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "email address is already in use")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, mock.Anything).Return(nil, "", apperr.Auth("invalid password"))

	rec := perform(NewAuthHandler(mockSvc).Login, `{"email":"a@b.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid password")
}

func TestAuthHandler_Login_UnknownPhone(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, mock.Anything).Return(nil, "", apperr.NotFound("not registered"))

	rec := perform(NewAuthHandler(mockSvc).Login, `{"phone":"5551234567","password":"secret123"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not registered")
}

func TestAuthHandler_Login_PassesCredentialsThrough(t *testing.T) {
	email := "a@b.com"
	user := &model.User{ID: uuid.New(), Email: &email}

	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, auth.Credentials{
		UniqueKey: "key",
		Email:     "a@b.com",
		Phone:     "5551234567",
		Password:  "secret123",
	}).Return(user, "Bearer tok", nil)

	rec := perform(NewAuthHandler(mockSvc).Login,
		`{"unique_key":"key","email":"a@b.com","phone":"5551234567","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}
