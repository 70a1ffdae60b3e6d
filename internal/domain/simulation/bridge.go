package simulation

import (
	"context"
	"errors"

	"life-reloaded/internal/domain/area"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ConfigKey is the fixed key the setup result is stored under.
const ConfigKey = "lifeReloadedConfig"

var ErrNilStore = errors.New("nil store")

type Bridge struct {
	store  Store
	logger *zap.Logger
}

func NewBridge(store Store, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{store: store, logger: logger}
}

// Save overwrites any previously stored config.
func (b *Bridge) Save(ctx context.Context, cfg Config) error {
	if b == nil || b.store == nil {
		return ErrNilStore
	}
	if cfg.AreaConfigs == nil {
		cfg.AreaConfigs = area.Configs{}
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return b.store.Set(ctx, ConfigKey, string(raw))
}

// Load returns nil without error when nothing usable is stored. Only store
// failures are reported.
func (b *Bridge) Load(ctx context.Context) (*Config, error) {
	if b == nil || b.store == nil {
		return nil, ErrNilStore
	}
	raw, ok, err := b.store.Get(ctx, ConfigKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var cfg Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		b.logger.Warn("discarding malformed simulation config", zap.Error(err))
		return nil, nil
	}
	return &cfg, nil
}
