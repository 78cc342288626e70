package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "BRANDBOARD"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "BRANDBOARD_APP_ENV"
	EnvPort     = "BRANDBOARD_APP_PORT"
	EnvDBDSN    = "BRANDBOARD_DB_DSN"
	EnvRedisURL = "BRANDBOARD_REDIS_URL"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Dashboard    DashboardConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(cfg.FeatureFlags); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BRANDBOARD_APP_ENV" required:"true"`
	Port         string `envconfig:"BRANDBOARD_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BRANDBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BRANDBOARD_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN        string `envconfig:"BRANDBOARD_DB_DSN"`
	SQLitePath string `envconfig:"BRANDBOARD_SQLITE_PATH" default:"brandboard.db"`

	MaxOpenConns    int           `envconfig:"BRANDBOARD_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BRANDBOARD_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BRANDBOARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BRANDBOARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate(flags FeatureFlagsConfig) error {
	if flags.UseSQLite {
		return nil
	}
	if db.DSN == "" {
		return fmt.Errorf("%s is required unless sqlite is enabled", EnvDBDSN)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"BRANDBOARD_REDIS_URL"`
	Address      string        `envconfig:"BRANDBOARD_REDIS_ADDR"`
	Password     string        `envconfig:"BRANDBOARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"BRANDBOARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BRANDBOARD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BRANDBOARD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BRANDBOARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BRANDBOARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BRANDBOARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether any redis endpoint is configured. The snapshot
// cache is skipped entirely when it is not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type DashboardConfig struct {
	FetchTimeout     time.Duration `envconfig:"BRANDBOARD_DASHBOARD_FETCH_TIMEOUT" default:"10s"`
	CacheTTL         time.Duration `envconfig:"BRANDBOARD_DASHBOARD_CACHE_TTL" default:"30s"`
	OperatorInitials string        `envconfig:"BRANDBOARD_OPERATOR_INITIALS" default:"ZB"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"BRANDBOARD_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"BRANDBOARD_AUTO_MIGRATE" default:"false"`
}
