package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"phonecat/internal/auth"
	"phonecat/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithCarriers(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// newProtectedApp wires a single protected route that records whether the
// downstream handler ran.
func newProtectedApp(tokens *auth.TokenService, repo *MockUserRepository, handlerRan *bool) *echo.Echo {
	e := echo.New()
	protected := e.Group("", JWT(tokens, repo))
	protected.GET("/protected", func(c echo.Context) error {
		*handlerRan = true
		user := Principal(c)
		return c.JSON(http.StatusOK, echo.Map{"success": true, "id": user.ID})
	})
	return e
}

func TestJWT_ValidTokenAttachesPrincipal(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	userID := uuid.New()
	email := "a@b.com"

	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Email: &email}, nil)

	handlerRan := false
	e := newProtectedApp(tokens, repo, &handlerRan)

	signed, err := tokens.Issue(userID)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, auth.Bearer(signed))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerRan)
	assert.Contains(t, rec.Body.String(), userID.String())
	repo.AssertExpectations(t)
}

func TestJWT_RejectsBeforeHandler(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	expired := auth.NewTokenService("test-secret", -time.Minute)
	userID := uuid.New()

	expiredToken, _ := expired.Issue(userID)
	validToken, _ := tokens.Issue(userID)
	tampered := validToken[:len(validToken)-2] + "xx"

	tests := []struct {
		name      string
		authorize string
		setupMock func(*MockUserRepository)
	}{
		{
			name:      "missing token",
			authorize: "",
			setupMock: func(m *MockUserRepository) {},
		},
		{
			name:      "expired token",
			authorize: auth.Bearer(expiredToken),
			setupMock: func(m *MockUserRepository) {},
		},
		{
			name:      "tampered token",
			authorize: auth.Bearer(tampered),
			setupMock: func(m *MockUserRepository) {},
		},
		{
			name:      "subject no longer exists",
			authorize: auth.Bearer(validToken),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			handlerRan := false
			e := newProtectedApp(tokens, repo, &handlerRan)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorize != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authorize)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, handlerRan, "downstream handler must never run on rejection")
			assert.Contains(t, rec.Body.String(), `"success":false`)
			repo.AssertExpectations(t)
		})
	}
}
