package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/foxypassword/foxypassword-go/internal/crypto"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port     string     `env:"PORT"          envDefault:"8080"`
	Host     string     `env:"FOXYPASS_HOST" envDefault:"127.0.0.1"`
	Env      string     `env:"ENV"           envDefault:"development"`
	LogLevel slog.Level `env:"LOG_LEVEL"     envDefault:"info"`

	DefaultLength int `env:"FOXYPASS_DEFAULT_LENGTH" envDefault:"16"`
	MinLength     int `env:"FOXYPASS_MIN_LENGTH"     envDefault:"8"`
	MaxLength     int `env:"FOXYPASS_MAX_LENGTH"     envDefault:"128"`
	MaxCount      int `env:"FOXYPASS_MAX_COUNT"      envDefault:"100"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads the configuration from the environment and validates the
// generator settings. Servers also call Validate.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.ValidateGenerator(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Policy returns the password length bounds.
func (c Config) Policy() crypto.LengthPolicy {
	return crypto.LengthPolicy{Min: c.MinLength, Max: c.MaxLength}
}

// ValidateGenerator rejects length and count settings the generator cannot
// honor.
func (c Config) ValidateGenerator() error {
	policy := c.Policy()
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.DefaultLength < policy.Min || c.DefaultLength > policy.Max {
		return fmt.Errorf("%w: default length %d outside %d..%d", ErrInvalidConfig, c.DefaultLength, policy.Min, policy.Max)
	}
	if c.MaxCount < 1 {
		return fmt.Errorf("%w: max count must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Validate rejects settings the generator or the server cannot honor.
func (c Config) Validate() error {
	if err := c.ValidateGenerator(); err != nil {
		return err
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidConfig)
	}
	return nil
}

// Addr is the listen address for the API server.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}
