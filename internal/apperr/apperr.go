package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Kind classifies a failure so the HTTP boundary can translate it exactly once.
type Kind int

const (
	// KindValidation marks malformed or missing required input.
	KindValidation Kind = iota + 1
	// KindConflict marks a uniqueness violation at persistence time.
	KindConflict
	// KindNotFound marks a lookup against an identifier with no record.
	KindNotFound
	// KindAuth marks a failed password verification for an existing record.
	KindAuth
	// KindTokenInvalid marks a malformed or tampered bearer token.
	KindTokenInvalid
	// KindTokenExpired marks a bearer token past its TTL.
	KindTokenExpired
	// KindInternal marks an unexpected hashing, signing, or persistence failure.
	KindInternal
)

// Error is the typed failure every core operation returns. Expected business
// failures and infrastructure failures share the type but never the kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the failure kind to a transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnprocessableEntity
	case KindTokenInvalid, KindTokenExpired:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a malformed-input failure.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Conflict builds a uniqueness failure naming the conflicting field.
func Conflict(field string) *Error {
	switch field {
	case "email":
		return &Error{Kind: KindConflict, Message: "this email address is already in use"}
	case "phone":
		return &Error{Kind: KindConflict, Message: "this phone number is already in use"}
	default:
		return &Error{Kind: KindConflict, Message: "duplicate key entry"}
	}
}

// NotFound builds a missing-record failure.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Auth builds a failed-credentials failure.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

// TokenInvalid builds a malformed-or-tampered token failure.
func TokenInvalid() *Error {
	return &Error{Kind: KindTokenInvalid, Message: "invalid token"}
}

// TokenExpired builds an expired token failure.
func TokenExpired() *Error {
	return &Error{Kind: KindTokenExpired, Message: "token expired"}
}

// Internal wraps an unexpected infrastructure failure. The cause is kept for
// logs via Unwrap but never reaches a client message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// From returns err as a typed *Error, wrapping anything untyped as internal.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

const mysqlDupEntry = 1062

// Duplicate inspects a persistence error for a duplicate-key violation and, if
// one fired, maps the violated index back to a field-specific conflict. The
// index names come from the gorm uniqueIndex tags on model.User and must stay
// in sync with them. Returns nil when err is not a duplicate-key failure.
func Duplicate(err error) *Error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlDupEntry {
		return nil
	}
	msg := strings.ToLower(mysqlErr.Message)
	switch {
	case strings.Contains(msg, "email"):
		return Conflict("email")
	case strings.Contains(msg, "phone"):
		return Conflict("phone")
	default:
		return Conflict("")
	}
}
