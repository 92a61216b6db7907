package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "DB_PATH", "STORAGE_KEY",
		"SAVE_LATENCY", "ANSWER_MATCH", "LOG_LEVEL", "LOG_FILE",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.ServerAddress != "127.0.0.1:8080" {
		t.Errorf("unexpected address %q", cfg.ServerAddress)
	}
	if cfg.SaveLatency != 800*time.Millisecond {
		t.Errorf("expected 800ms save latency, got %v", cfg.SaveLatency)
	}
	if cfg.StorageKey != "quadflash_data" {
		t.Errorf("unexpected storage key %q", cfg.StorageKey)
	}
	if cfg.AnswerMatch != "exact" {
		t.Errorf("expected exact matching by default, got %q", cfg.AnswerMatch)
	}
	if cfg.LogLevel != slog.LevelInfo || cfg.LogFile != "" {
		t.Errorf("unexpected logging config %v %q", cfg.LogLevel, cfg.LogFile)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SAVE_LATENCY", "0s")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("ANSWER_MATCH", "normalized")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.SaveLatency != 0 {
		t.Errorf("expected zero latency, got %v", cfg.SaveLatency)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s shutdown, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DBPath != "/tmp/other.db" || cfg.AnswerMatch != "normalized" {
		t.Errorf("unexpected overrides %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}
