package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"phonecat/internal/apperr"
	"phonecat/internal/auth"
	"phonecat/internal/model"
	"phonecat/internal/repository"
)

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Email    *string
	Phone    *string
	Password *string
}

// UserService exposes account operations beyond registration and login.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AssignCarrier(ctx context.Context, userID, carrierID uuid.UUID) error
}

type userService struct {
	users    repository.UserRepository
	carriers repository.CarrierRepository
	hasher   *auth.Hasher
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, carriers repository.CarrierRepository, hasher *auth.Hasher) UserService {
	return &userService{users: users, carriers: carriers, hasher: hasher}
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByIDWithCarriers(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

// Update applies a partial profile change. The password is re-hashed only when
// the plaintext field actually changed; identifiers are re-validated against
// the shape they are stored under.
func (s *userService) Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}

	if upd.Email != nil {
		email := auth.Normalize(*upd.Email)
		if method, err := auth.Classify(email); err != nil || method != auth.MethodEmail {
			return nil, apperr.Validation("not a valid email")
		}
		user.Email = &email
	}
	if upd.Phone != nil {
		phone := auth.Normalize(*upd.Phone)
		if method, err := auth.Classify(phone); err != nil || method != auth.MethodPhone {
			return nil, apperr.Validation("not a valid phone number")
		}
		user.Phone = &phone
	}
	if upd.Password != nil && *upd.Password != "" {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if dup := apperr.Duplicate(err); dup != nil {
			return nil, dup
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(err)
	}
	return nil
}

// AssignCarrier binds a carrier to a user. The user's carrier list follows
// from the foreign key; no second write is needed.
func (s *userService) AssignCarrier(ctx context.Context, userID, carrierID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("user not found")
		}
		return apperr.Internal(err)
	}

	carrier, err := s.carriers.FindByID(ctx, carrierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("carrier not found")
		}
		return apperr.Internal(err)
	}

	carrier.UserID = &user.ID
	if err := s.carriers.Update(ctx, carrier); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
