package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"phonecat/internal/apperr"
	"phonecat/internal/auth"
	"phonecat/internal/model"
	"phonecat/internal/repository"
)

// opTimeout bounds hashing and persistence work per operation. bcrypt cost is
// deliberately high, so a stalled call must not hang the request forever.
const opTimeout = 5 * time.Second

// AuthService handles registration and login.
type AuthService interface {
	// Register creates a user from credentials and returns it with a bearer token.
	Register(ctx context.Context, creds auth.Credentials) (*model.User, string, error)
	// Login authenticates credentials and returns the user with a bearer token.
	Login(ctx context.Context, creds auth.Credentials) (*model.User, string, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register classifies the identifier as email or phone, hashes the password,
// and persists the user. Uniqueness is enforced only by the store's sparse
// unique indexes: two concurrent registrations race to the index and the loser
// surfaces as a conflict, not a retry.
func (s *authService) Register(ctx context.Context, creds auth.Credentials) (*model.User, string, error) {
	key := auth.Normalize(creds.Key())
	if key == "" {
		return nil, "", apperr.Validation("an email or phone number was not entered")
	}
	if creds.Password == "" {
		return nil, "", apperr.Validation("please enter a password to register")
	}

	method, err := auth.Classify(key)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	switch method {
	case auth.MethodEmail:
		user.Email = &key
	case auth.MethodPhone:
		user.Phone = &key
	}

	if err := s.users.Create(ctx, user); err != nil {
		if dup := apperr.Duplicate(err); dup != nil {
			return nil, "", dup
		}
		return nil, "", apperr.Internal(err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, auth.Bearer(token), nil
}

// Login resolves the identifier to a stored user and verifies the password.
// An unknown identifier and a wrong password fail with different kinds and
// messages; callers can enumerate accounts from that difference. Known
// trade-off, kept for client compatibility.
func (s *authService) Login(ctx context.Context, creds auth.Credentials) (*model.User, string, error) {
	key := auth.Normalize(creds.Key())
	if key == "" {
		return nil, "", apperr.Validation("please enter an email or phone number to login")
	}
	if creds.Password == "" {
		return nil, "", apperr.Validation("please enter a password to login")
	}

	method, err := auth.Classify(key)
	if err != nil {
		// On login an unclassifiable identifier cannot match any record.
		return nil, "", apperr.NotFound("a valid email or phone number was not entered")
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var user *model.User
	switch method {
	case auth.MethodEmail:
		user, err = s.users.FindByEmail(ctx, key)
	case auth.MethodPhone:
		user, err = s.users.FindByPhone(ctx, key)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.NotFound("not registered")
		}
		return nil, "", apperr.Internal(err)
	}

	ok, err := s.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", apperr.Auth("invalid password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, auth.Bearer(token), nil
}
