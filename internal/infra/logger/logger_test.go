package logger

import (
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

func TestNewLevelAndFormatter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.AppConfig
		level     logrus.Level
		jsonLines bool
	}{
		{name: "development", cfg: config.AppConfig{LogLevel: "debug", Environment: "development"}, level: logrus.DebugLevel},
		{name: "production", cfg: config.AppConfig{LogLevel: "warn", Environment: "production"}, level: logrus.WarnLevel, jsonLines: true},
		{name: "staging", cfg: config.AppConfig{LogLevel: "info", Environment: "staging"}, level: logrus.InfoLevel, jsonLines: true},
		{name: "invalid level", cfg: config.AppConfig{LogLevel: "loud", Environment: "development"}, level: logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(&tt.cfg)
			if log.GetLevel() != tt.level {
				t.Fatalf("level = %v, want %v", log.GetLevel(), tt.level)
			}
			_, isJSON := log.Formatter.(*logrus.JSONFormatter)
			if isJSON != tt.jsonLines {
				t.Fatalf("JSON formatter = %v, want %v", isJSON, tt.jsonLines)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	entry := Named(logrus.New(), "poller")
	if entry.Data["logger"] != "poller" {
		t.Fatalf("logger field = %v", entry.Data["logger"])
	}
}
