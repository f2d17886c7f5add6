package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs read from the environment. Command-line
// flags override them in the binaries.
type Settings struct {
	LogLevel  string `env:"VAULTRUN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VAULTRUN_LOG_FORMAT" envDefault:"text"`
	// TPS is the fixed physics tick rate.
	TPS   int    `env:"VAULTRUN_TPS" envDefault:"60"`
	Watch bool   `env:"VAULTRUN_WATCH" envDefault:"true"`
	Level string `env:"VAULTRUN_LEVEL" envDefault:"sandbox.json"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.TPS <= 0 {
		return Settings{}, fmt.Errorf("parse env: VAULTRUN_TPS must be positive, got %d", s.TPS)
	}
	return s, nil
}

// FixedStep is the physics tick length in seconds.
func (s Settings) FixedStep() float64 {
	return 1 / float64(s.TPS)
}
