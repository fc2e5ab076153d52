package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// environment holds settings read from MODULECUT_* variables. Command-line
// flags take precedence.
type environment struct {
	DataDir string `env:"MODULECUT_DATA_DIR"`
	Profile string `env:"MODULECUT_PROFILE"`
	Debug   bool   `env:"MODULECUT_DEBUG"`
}

func parseEnvironment() (environment, error) {
	var e environment
	if err := env.Parse(&e); err != nil {
		return environment{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
