package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"phonecat/internal/apperr"
	"phonecat/internal/auth"
	"phonecat/internal/model"
)

// MockCarrierRepository is a mock implementation of CarrierRepository.
type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) Create(ctx context.Context, carrier *model.Carrier) error {
	args := m.Called(ctx, carrier)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, carrier *model.Carrier) error {
	args := m.Called(ctx, carrier)
	return args.Error(0)
}

func (m *MockCarrierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarrierRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindByNameOrCreate(ctx context.Context, name string) (*model.Carrier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) List(ctx context.Context) ([]model.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Carrier), args.Error(1)
}

func newTestUserService(users *MockUserRepository, carriers *MockCarrierRepository) UserService {
	return NewUserService(users, carriers, auth.NewHasher(4))
}

func TestUserService_Update_RehashOnlyWhenPasswordChanges(t *testing.T) {
	userID := uuid.New()
	email := "a@b.com"
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 4)

	t.Run("password change rehashes", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:           userID,
			Email:        &email,
			PasswordHash: string(hashed),
		}, nil)
		mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := newTestUserService(mockUsers, new(MockCarrierRepository))
		newPassword := "different456"
		user, err := svc.Update(context.Background(), userID, ProfileUpdate{Password: &newPassword})

		assert.NoError(t, err)
		assert.NotEqual(t, string(hashed), user.PasswordHash)
		assert.NotEqual(t, "different456", user.PasswordHash)
		mockUsers.AssertExpectations(t)
	})

	t.Run("email-only change keeps stored hash", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:           userID,
			Email:        &email,
			PasswordHash: string(hashed),
		}, nil)
		mockUsers.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := newTestUserService(mockUsers, new(MockCarrierRepository))
		newEmail := "New@Example.Com"
		user, err := svc.Update(context.Background(), userID, ProfileUpdate{Email: &newEmail})

		assert.NoError(t, err)
		assert.Equal(t, string(hashed), user.PasswordHash)
		assert.Equal(t, "new@example.com", *user.Email)
		mockUsers.AssertExpectations(t)
	})

	t.Run("invalid phone shape rejected", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:           userID,
			Email:        &email,
			PasswordHash: string(hashed),
		}, nil)

		svc := newTestUserService(mockUsers, new(MockCarrierRepository))
		badPhone := "555-123"
		_, err := svc.Update(context.Background(), userID, ProfileUpdate{Phone: &badPhone})

		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		mockUsers.AssertExpectations(t)
	})
}

func TestUserService_AssignCarrier(t *testing.T) {
	userID := uuid.New()
	carrierID := uuid.New()

	t.Run("binds carrier to user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockCarriers := new(MockCarrierRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockCarriers.On("FindByID", mock.Anything, carrierID).Return(&model.Carrier{ID: carrierID, Name: "Verizon"}, nil)
		mockCarriers.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Carrier) bool {
			return c.UserID != nil && *c.UserID == userID
		})).Return(nil)

		svc := newTestUserService(mockUsers, mockCarriers)
		err := svc.AssignCarrier(context.Background(), userID, carrierID)

		assert.NoError(t, err)
		mockUsers.AssertExpectations(t)
		mockCarriers.AssertExpectations(t)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockCarriers := new(MockCarrierRepository)
		mockUsers.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockCarriers.On("FindByID", mock.Anything, carrierID).Return(nil, gorm.ErrRecordNotFound)

		svc := newTestUserService(mockUsers, mockCarriers)
		err := svc.AssignCarrier(context.Background(), userID, carrierID)

		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestUserService_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes existing user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("Delete", mock.Anything, userID).Return(nil)

		svc := newTestUserService(mockUsers, new(MockCarrierRepository))
		assert.NoError(t, svc.Delete(context.Background(), userID))
	})

	t.Run("missing user is not found", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("Delete", mock.Anything, userID).Return(gorm.ErrRecordNotFound)

		svc := newTestUserService(mockUsers, new(MockCarrierRepository))
		err := svc.Delete(context.Background(), userID)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}
