package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level defaults that flags may override.
type Env struct {
	ConfigPath string `env:"DICEMOSAIC_CONFIG" envDefault:"config.ini"`
	OutputDir  string `env:"DICEMOSAIC_OUTPUT_DIR" envDefault:"."`
	NoPreview  bool   `env:"DICEMOSAIC_NO_PREVIEW" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns Env populated from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
