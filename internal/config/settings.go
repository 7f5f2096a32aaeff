package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. INVESTCALC_SERVER_ADDRESS.
const EnvPrefix = "INVESTCALC"

// Settings holds application configuration.
type Settings struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Server  ServerConfig  `mapstructure:"server"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// LoggingConfig selects the zap level, encoder and destination.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputFile string `mapstructure:"output_file"`
}

// EngineConfig mirrors calculation.Options.
type EngineConfig struct {
	Divisor        int64 `mapstructure:"divisor"`
	LegacyRounding bool  `mapstructure:"legacy_rounding"`
	MaxYears       int   `mapstructure:"max_years"`
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig selects where computed projections are cached.
type CacheConfig struct {
	Backend       string        `mapstructure:"backend"`
	TTL           time.Duration `mapstructure:"ttl"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	// MaxEntries bounds the memory backend.
	MaxEntries    int           `mapstructure:"max_entries"`
}

var defaults = map[string]any{
	"logging.level":           "info",
	"logging.format":          "console",
	"logging.output_file":     "",
	"engine.divisor":          100000,
	"engine.legacy_rounding":  false,
	"engine.max_years":        100,
	"server.address":          ":8080",
	"server.max_body_bytes":   1 << 20,
	"server.read_timeout":     "10s",
	"server.write_timeout":    "10s",
	"server.shutdown_timeout": "10s",
	"cache.backend":           CacheMemory,
	"cache.ttl":               "1h",
	"cache.redis_addr":        "localhost:6379",
	"cache.redis_password":    "",
	"cache.redis_db":          0,
	"cache.max_entries":       10000,
}

// flagBindings maps settings keys to the CLI flags that override them.
var flagBindings = map[string]string{
	"logging.level":          "log-level",
	"logging.format":         "log-format",
	"engine.divisor":         "divisor",
	"engine.legacy_rounding": "legacy-rounding",
	"server.address":         "addr",
	"cache.backend":          "cache",
	"cache.redis_addr":       "redis-addr",
}

// LoadSettings layers defaults, an optional config file, INVESTCALC_* env
// variables and changed flags, in increasing precedence.
func LoadSettings(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}
	return &settings, nil
}

// Validate checks value ranges and enumerations.
func (s *Settings) Validate() error {
	var errs []error

	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s", s.Logging.Level))
	}
	switch s.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %s", s.Logging.Format))
	}

	if s.Engine.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("engine divisor must be positive"))
	}
	if s.Engine.MaxYears < 0 {
		errs = append(errs, fmt.Errorf("engine max years cannot be negative"))
	}

	if s.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server max body bytes must be positive"))
	}

	switch s.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if s.Cache.RedisAddr == "" {
			errs = append(errs, fmt.Errorf("redis cache requires cache.redis_addr"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid cache backend: %s", s.Cache.Backend))
	}
	if s.Cache.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("cache max entries cannot be negative"))
	}
	if s.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache ttl cannot be negative"))
	}

	return errors.Join(errs...)
}
