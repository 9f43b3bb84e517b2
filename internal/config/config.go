// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the calculator service configuration.
type Config struct {
	Addr            string        `env:"CALC_ADDR" envDefault:":8080"`
	ServiceName     string        `env:"OTEL_SERVICE_NAME" envDefault:"calc-api"`
	LogLevel        string        `env:"CALC_LOG_LEVEL" envDefault:"info"`
	OTLPEnabled     bool          `env:"CALC_OTLP_ENABLED" envDefault:"false"`
	MaxSessions     int           `env:"CALC_MAX_SESSIONS" envDefault:"1024"`
	MaxGlyphs       int           `env:"CALC_MAX_GLYPHS" envDefault:"256"`
	MaxBodyBytes    int64         `env:"CALC_MAX_BODY_BYTES" envDefault:"16384"`
	ShutdownTimeout time.Duration `env:"CALC_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
