package player

import (
	"context"
	"testing"
	"time"

	"life-reloaded/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTokens struct{}

func (failingTokens) GeneratePlayerToken(uuid.UUID) (string, time.Time, error) {
	return "", time.Time{}, jwt.ErrTokenInvalid
}

func (failingTokens) ValidateToken(string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}

func TestRegister(t *testing.T) {
	tokens := jwt.NewHMACService("secret", time.Hour)
	reg, err := NewService(tokens).Register(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, reg.PlayerID)

	claims, err := tokens.ValidateToken(reg.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.PlayerID, claims.PlayerID)
}

func TestRegister_TokenFailure(t *testing.T) {
	_, err := NewService(failingTokens{}).Register(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
