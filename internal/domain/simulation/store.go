package simulation

import (
	"context"
	"strings"
)

// Store is a durable string-keyed store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type scopedStore struct {
	inner  Store
	prefix string
}

// Scoped namespaces every key of inner under one player, so each player
// sees the store the way a browser sees its own local storage.
func Scoped(inner Store, playerID string) Store {
	if inner == nil {
		return nil
	}
	return scopedStore{inner: inner, prefix: "player:" + strings.TrimSpace(playerID) + ":"}
}

func (s scopedStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s scopedStore) Set(ctx context.Context, key string, value string) error {
	return s.inner.Set(ctx, s.prefix+key, value)
}
