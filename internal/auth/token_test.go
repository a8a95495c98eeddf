package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"phonecat/internal/apperr"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := tokens.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	got, err := tokens.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	signed, err := tokens.Issue(uuid.New())
	assert.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.True(t, apperr.IsKind(err, apperr.KindTokenExpired))
}

func TestTokenService_Tampered(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	signed, err := tokens.Issue(uuid.New())
	assert.NoError(t, err)

	// flip one byte of the signature
	raw := []byte(signed)
	raw[len(raw)-1] ^= 0x01

	_, err = tokens.Verify(string(raw))
	assert.True(t, apperr.IsKind(err, apperr.KindTokenInvalid))
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("test-secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	signed, err := issuer.Issue(uuid.New())
	assert.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.True(t, apperr.IsKind(err, apperr.KindTokenInvalid))
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	_, err := tokens.Verify("not.a.token")
	assert.True(t, apperr.IsKind(err, apperr.KindTokenInvalid))
}

func TestBearer(t *testing.T) {
	assert.Equal(t, "Bearer abc", Bearer("abc"))
}
