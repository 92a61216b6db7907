package config

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DBPath      string        // SQLite file holding the storage record
	StorageKey  string        // fixed key of the storage record
	SaveLatency time.Duration // artificial delay before each save

	// Practice
	AnswerMatch string // "exact" or "normalized"

	// Logging
	LogLevel slog.Level
	LogFile  string // rotated log file; empty logs to stdout only
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", "127.0.0.1:8080"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBPath:          getenvDefault("DB_PATH", "quadflash.db"),
		StorageKey:      getenvDefault("STORAGE_KEY", "quadflash_data"),
		SaveLatency:     getDurationDefault("SAVE_LATENCY", 800*time.Millisecond),
		AnswerMatch:     getenvDefault("ANSWER_MATCH", "exact"),
		LogLevel:        getLevelDefault("LOG_LEVEL", slog.LevelInfo),
		LogFile:         os.Getenv("LOG_FILE"),
	}
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	if d < 0 {
		log.Fatalf("config: %s=%q must not be negative", k, v)
	}
	return d
}

func getLevelDefault(k string, fallback slog.Level) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
