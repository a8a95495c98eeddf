package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected int
	}{
		{name: "validation", err: Validation("bad input"), expected: http.StatusBadRequest},
		{name: "conflict", err: Conflict("email"), expected: http.StatusConflict},
		{name: "not found", err: NotFound("nope"), expected: http.StatusNotFound},
		{name: "auth", err: Auth("invalid password"), expected: http.StatusUnprocessableEntity},
		{name: "token invalid", err: TokenInvalid(), expected: http.StatusUnauthorized},
		{name: "token expired", err: TokenExpired(), expected: http.StatusUnauthorized},
		{name: "internal", err: Internal(errors.New("boom")), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.HTTPStatus())
		})
	}
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal(cause)

	assert.Equal(t, "internal server error", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFrom(t *testing.T) {
	typed := NotFound("user not found")
	assert.Equal(t, typed, From(typed))
	assert.Equal(t, typed, From(fmt.Errorf("wrapped: %w", typed)))

	untyped := From(errors.New("boom"))
	assert.Equal(t, KindInternal, untyped.Kind)
}

func TestDuplicate(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectNil   bool
		expectedMsg string
	}{
		{
			name:        "email index",
			err:         &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'users.idx_users_email'"},
			expectedMsg: "this email address is already in use",
		},
		{
			name:        "phone index",
			err:         &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '5551234567' for key 'users.idx_users_phone'"},
			expectedMsg: "this phone number is already in use",
		},
		{
			name:        "unrecognized index",
			err:         &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'users.PRIMARY'"},
			expectedMsg: "duplicate key entry",
		},
		{
			name:        "wrapped duplicate",
			err:         fmt.Errorf("create user: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'users.idx_users_email'"}),
			expectedMsg: "this email address is already in use",
		},
		{
			name:      "different mysql error",
			err:       &mysql.MySQLError{Number: 1045, Message: "Access denied"},
			expectNil: true,
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dup := Duplicate(tt.err)
			if tt.expectNil {
				assert.Nil(t, dup)
				return
			}
			assert.NotNil(t, dup)
			assert.Equal(t, KindConflict, dup.Kind)
			assert.Equal(t, tt.expectedMsg, dup.Message)
		})
	}
}
