package eventgen

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config of the generator. Flags of the command take precedence.
type Config struct {
	Dir       string `env:"EVOLVE_DIR"        envDefault:"."`
	Output    string `env:"EVOLVE_OUTPUT"`
	MaxEvents int    `env:"EVOLVE_MAX_EVENTS" envDefault:"100000"`
	Check     bool   `env:"EVOLVE_CHECK"`
	Verbose   bool   `env:"EVOLVE_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxEvents < 1 {
		return fmt.Errorf("max events must be positive, got %d: %w", c.MaxEvents, ErrInvalidConfig)
	}
	if c.Dir == "" {
		return fmt.Errorf("empty dir: %w", ErrInvalidConfig)
	}
	return nil
}
