package cache

import (
	"context"
	"testing"

	"life-reloaded/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: "1"}, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRedis_NilIsUnavailable(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	_, _, err := r.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, r.Set(ctx, "k", "v"), ErrUnavailable)
	assert.NoError(t, r.Close())
}
