// Package config loads process configuration from the environment and the
// campaign settings from a YAML file.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig indicates environment variables could not be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse configuration")

// Config is the environment surface of the process.
type Config struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	CampaignFile string `env:"CAMPAIGN_FILE" envDefault:"campaign.yml"`
	DevDir       string `env:"MAILER_DEV_DIR"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
}

var defaultEnvLoaded sync.Once

// Load loads environment variables into the provided configuration struct.
// The default .env file is loaded once per process before parsing; a
// missing .env file is not an error.
func Load(v *Config) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
