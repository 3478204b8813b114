package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents a viber client config.
type Config struct {
	Viber  Viber
	Logger Logger
}

// Viber represents a viber bot API configuration.
type Viber struct {
	AuthToken         string `env:"VIBER_AUTH_TOKEN" env-required:"true"`
	APIURL            string `env:"VIBER_API_URL" env-default:"https://chatapi.viber.com/pa"`
	ParseResponseBody bool   `env:"VIBER_PARSE_RESPONSE_BODY" env-default:"true"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"VIBER_LOGGER_LOG_LEVEL" env-default:"info"`
	LogFilename     string `env:"VIBER_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"VIBER_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

// Load reads config from the environment.
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &cfg, nil
}
