package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken        string        `env:"PRACTICUM_TOKEN" env-description:"Yandex Practicum API token (required)"`
	TelegramToken         string        `env:"TELEGRAM_TOKEN" env-description:"Telegram bot token (required)"`
	TelegramChatID        string        `env:"TELEGRAM_CHAT_ID" env-description:"destination chat id or @channel (required)"`
	PracticumEndpoint     string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/" env-description:"homework statuses endpoint"`
	HTTPTimeout           time.Duration `env:"HTTP_TIMEOUT" env-default:"30s" env-description:"timeout of a single API request"`
	PollSchedule          string        `env:"POLL_SCHEDULE" env-default:"@every 10m" env-description:"delay between polls, cron syntax"`
	ErrorRenotifyInterval time.Duration `env:"ERROR_RENOTIFY_INTERVAL" env-default:"0s" env-description:"resend an identical error after this long, 0 means never"`
	TelegramRatePerSec    int           `env:"TELEGRAM_RATE_PER_SEC" env-default:"1" env-description:"outgoing messages per second, 0 disables the limit"`
	TelegramOffline       bool          `env:"TELEGRAM_OFFLINE" env-default:"false" env-description:"skip the bot token check at startup"`
	LogLevel              string        `env:"LOG_LEVEL" env-default:"info" env-description:"logrus level"`
	Environment           string        `env:"ENVIRONMENT" env-default:"development" env-description:"production and staging switch logs to JSON"`
}

// ConfigurationError reports required variables that are not set.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Missing, ", "))
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value *string
	}{
		{"PRACTICUM_TOKEN", &cfg.PracticumToken},
		{"TELEGRAM_TOKEN", &cfg.TelegramToken},
		{"TELEGRAM_CHAT_ID", &cfg.TelegramChatID},
	} {
		*v.value = strings.TrimSpace(*v.value)
		if *v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	if cfg.HTTPTimeout < 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %s", cfg.HTTPTimeout)
	}
	if cfg.TelegramRatePerSec < 0 {
		return nil, fmt.Errorf("invalid TELEGRAM_RATE_PER_SEC: %d", cfg.TelegramRatePerSec)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)

	return cfg, nil
}

// Usage describes every supported environment variable.
func Usage() string {
	help, err := cleanenv.GetDescription(&AppConfig{}, nil)
	if err != nil {
		return err.Error()
	}
	return help
}
