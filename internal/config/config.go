package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Game     GameConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME,required"`
	Environment string `env:"APP_ENV,required"`
	HTTPPort    string `env:"HTTP_PORT,required"`
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

type StoreConfig struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"life-reloaded.db"`
}

type DatabaseConfig struct {
	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT"`
	DBName     string `env:"DB_NAME"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBSSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`

	MigrationsDir  string        `env:"MIGRATIONS_DIR"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	PoolMaxConns   int32         `env:"DB_POOL_MAX_CONNS"`
	PoolMinConns   int32         `env:"DB_POOL_MIN_CONNS"`

	PoolMaxConnLifetime   time.Duration `env:"DB_POOL_MAX_CONN_LIFETIME"`
	PoolMaxConnIdleTime   time.Duration `env:"DB_POOL_MAX_CONN_IDLE_TIME"`
	PoolHealthCheckPeriod time.Duration `env:"DB_POOL_HEALTH_CHECK_PERIOD"`
}

type RedisConfig struct {
	Host      string `env:"REDIS_HOST"`
	Port      string `env:"REDIS_PORT"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"life-reloaded:"`
}

type JWTConfig struct {
	Secret          string        `env:"JWT_SECRET"`
	AccessExpiresIn time.Duration `env:"JWT_ACCESS_EXPIRES_IN" envDefault:"720h"`
}

type GameConfig struct {
	ReplyDelay time.Duration `env:"CHAT_REPLY_DELAY" envDefault:"1500ms"`
}

var (
	errInvalidEnv         = errors.New("invalid environment variables")
	errMissingRequiredEnv = errors.New("missing required environment variables")
)

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidEnv, err)
	}

	cfg.App.AppName = strings.TrimSpace(cfg.App.AppName)
	cfg.App.Environment = strings.TrimSpace(cfg.App.Environment)
	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	var missing []string
	switch cfg.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis:
	case StoreDriverSQLite:
		if strings.TrimSpace(cfg.Store.SQLitePath) == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	case StoreDriverPostgres:
		for key, v := range map[string]string{
			"DB_HOST": cfg.Database.DBHost,
			"DB_PORT": cfg.Database.DBPort,
			"DB_NAME": cfg.Database.DBName,
			"DB_USER": cfg.Database.DBUser,
		} {
			if strings.TrimSpace(v) == "" {
				missing = append(missing, key)
			}
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown STORE_DRIVER %q", errInvalidEnv, cfg.Store.Driver)
	}
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	switch strings.ToLower(c.App.Environment) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
