package logger

import (
	"testing"

	"claims_processor/internal/infrastructure/config"

	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]string{
		"debug": "debug",
		"WARN":  "warn",
		"error": "error",
		"":      "info",
		"loud":  "info",
	}
	for raw, want := range cases {
		if got := parseLevel(raw).String(); got != want {
			t.Fatalf("parseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestNewZapLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			log, err := NewZapLogger(config.AppConfig{Env: env, LogLevel: "warn"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if log.Core().Enabled(zap.InfoLevel) {
				t.Fatalf("expected info to be disabled at warn level")
			}
			if !log.Core().Enabled(zap.ErrorLevel) {
				t.Fatalf("expected error to be enabled")
			}
		})
	}
}
