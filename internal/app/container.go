package app

import (
	"context"
	"fmt"
	"time"

	"life-reloaded/internal/config"
	"life-reloaded/internal/database"
	"life-reloaded/internal/database/migration"
	dbpostgres "life-reloaded/internal/database/postgres"
	"life-reloaded/internal/domain/simulation"
	"life-reloaded/internal/infrastructure/cache"
	"life-reloaded/internal/infrastructure/memory"
	"life-reloaded/internal/infrastructure/persistence/postgres"
	"life-reloaded/internal/infrastructure/persistence/sqlite"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	Store  simulation.Store
	DB     database.DB

	closers []func() error
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		c.Store = memory.NewStore()
	case config.StoreDriverSQLite:
		s, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		c.Store = s
		c.closers = append(c.closers, s.Close)
	case config.StoreDriverRedis:
		r, err := cache.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		c.Store = r
		c.closers = append(c.closers, r.Close)
	case config.StoreDriverPostgres:
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, db.Close)
		runner := migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: logger.Named("migration")}
		if _, err := runner.Run(ctx, db.SQLDB()); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		c.DB = db
		c.Store = postgres.NewKVStore(db)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	logger.Info("store ready", zap.String("driver", cfg.Store.Driver))
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
