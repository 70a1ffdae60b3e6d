package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("secret", time.Hour)
	id := uuid.New()

	tok, exp, err := s.GeneratePlayerToken(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.PlayerID)
	assert.Equal(t, TokenTypePlayer, claims.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	s := NewHMACService("secret", time.Minute)
	issued := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	tok, _, err := s.GeneratePlayerToken(uuid.New())
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, _, err := NewHMACService("one", time.Hour).GeneratePlayerToken(uuid.New())
	require.NoError(t, err)

	_, err = NewHMACService("two", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("one", time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Misconfigured(t *testing.T) {
	_, _, err := NewHMACService("", time.Hour).GeneratePlayerToken(uuid.New())
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
