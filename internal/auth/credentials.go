package auth

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"phonecat/internal/apperr"
)

// Method identifies how a login identifier was classified.
type Method string

const (
	// MethodEmail means the identifier looked like an email address.
	MethodEmail Method = "email"
	// MethodPhone means the identifier looked like a phone number.
	MethodPhone Method = "phone"
)

const (
	phoneMinLen = 7
	phoneMaxLen = 20
)

// validate is read-only after init; safe for concurrent use.
var validate = validator.New()

// Credentials is the loosely-shaped auth payload accepted on registration and
// login. Clients may identify themselves by unique_key, email, or phone.
// The plaintext password lives only for the duration of the request.
type Credentials struct {
	UniqueKey string `json:"unique_key"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Key returns the canonical identifier: unique_key if present, else email,
// else phone, else the empty string. No validation happens here.
func (c Credentials) Key() string {
	if c.UniqueKey != "" {
		return c.UniqueKey
	}
	if c.Email != "" {
		return c.Email
	}
	return c.Phone
}

// Normalize lowercases and trims an identifier the way it is stored.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Classify decides whether an identifier is an email or a phone number.
// Email shape is tried first, then phone shape (numeric, length 7-20);
// the order is load-bearing for ambiguous inputs.
func Classify(key string) (Method, error) {
	if validate.Var(key, "email") == nil {
		return MethodEmail, nil
	}
	if len(key) >= phoneMinLen && len(key) <= phoneMaxLen && validate.Var(key, "number") == nil {
		return MethodPhone, nil
	}
	return "", apperr.Validation("a valid email or phone number was not entered")
}
