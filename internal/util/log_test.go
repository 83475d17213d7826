package util

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	logger := NewLogger("debug")
	if logger.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}

	logger = NewLogger("invalid")
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %s", logger.GetLevel())
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("BOOTCAMP_TEST_KEY", "set")
	if got := EnvOr("BOOTCAMP_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("expected env value, got %s", got)
	}
	if got := EnvOr("BOOTCAMP_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
}
