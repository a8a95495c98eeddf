package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"phonecat/internal/apperr"
)

// Hasher applies the one-way password transform. bcrypt embeds a fresh random
// salt in every hash, so verification is self-contained and two hashes of the
// same plaintext never match.
type Hasher struct {
	cost int
}

// NewHasher builds a Hasher with the given bcrypt cost factor.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. A mismatch is (false, nil);
// only a library failure (malformed hash, unsupported cost) returns an error.
// The two must never be conflated: a mismatch is an expected business outcome.
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, apperr.Internal(err)
	}
}
