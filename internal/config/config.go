// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration knobs for the HTTP server and the weather
// verifier client.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	WeatherBaseURL string        `env:"WEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	WeatherAPIKey  string        `env:"WEATHER_API_KEY" envDefault:"e795de305b55520d3c3f83fb25e79673"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`

	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"true"`
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
