package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the central typed configuration struct, populated from the
// environment (plus an optional .env file) with defaults merged underneath.
type Config struct {
	App AppConfig
}

type AppConfig struct {
	Name  string `env:"APP_NAME"`
	Env   string `env:"APP_ENV"` // local | production | testing
	Debug bool   `env:"APP_DEBUG" envDefault:"true"`
	URL   string `env:"APP_URL"`
	Port  string `env:"APP_PORT"`
}

func defaults() Config {
	return Config{
		App: AppConfig{
			Name: "GoLivewire",
			Env:  "local",
			URL:  "http://localhost",
			Port: "8000",
		},
	}
}

// Load reads the given env files (default ".env", non-fatal if absent),
// parses the environment into a Config, and fills anything still empty from
// the defaults.
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// .env may legitimately be missing in production
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	if err := mergo.Merge(cfg, defaults()); err != nil {
		return nil, fmt.Errorf("config: merging defaults: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load for bootstrap paths that cannot return an error.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(err)
	}
	return cfg
}
