// Package config loads process settings from the environment, with an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the host-level settings of the learning service.
type Config struct {
	TranscriptDir   string // local transcript cache root
	RetentionDays   int    // cache cleanup horizon
	EnableLocalSave bool
	DictFileFreq    string // ranked frequency-list CSV
	DictFileFull    string // comprehensive dictionary CSV
	DBPath          string // sqlite vocabulary store ("" disables)
	APIAddr         string
}

// Load reads a .env file if present, then the environment, applying
// defaults for anything unset.
func Load() (Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		TranscriptDir:   getEnv("TRANSCRIPT_TEMP_DIR", "./temp/transcripts"),
		EnableLocalSave: getBool("ENABLE_LOCAL_SAVE", true),
		DictFileFreq:    os.Getenv("DICT_FILE_FREQ"),
		DictFileFull:    os.Getenv("DICT_FILE_FULL"),
		DBPath:          os.Getenv("VOCAB_DB_PATH"),
		APIAddr:         getEnv("API_ADDR", ":8000"),
	}

	retention, err := getInt("TRANSCRIPT_RETENTION_DAYS", 7)
	if err != nil {
		return Config{}, err
	}
	if retention < 1 {
		return Config{}, fmt.Errorf("TRANSCRIPT_RETENTION_DAYS must be at least 1, got %d", retention)
	}
	cfg.RetentionDays = retention
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
