package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth (optional; endpoints are public when unset)
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Chunking
	MaxChunkSize int

	// Session lifecycle
	SessionTTL      time.Duration
	CleanupInterval time.Duration

	// Speech synthesis
	TTSCommand    string
	DefaultVoice  string
	DefaultRate   string
	DefaultVolume string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("READALOUD_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		MaxChunkSize: envInt("MAX_CHUNK_SIZE", 2000),

		SessionTTL:      envDuration("SESSION_TTL", 30*time.Minute),
		CleanupInterval: envDuration("CLEANUP_INTERVAL", 5*time.Minute),

		TTSCommand:    envOr("TTS_COMMAND", "edge-tts"),
		DefaultVoice:  envOr("DEFAULT_VOICE", "en-US-AriaNeural"),
		DefaultRate:   envOr("DEFAULT_RATE", "+0%"),
		DefaultVolume: envOr("DEFAULT_VOLUME", "+0%"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxChunkSize <= 0 {
		cfg.MaxChunkSize = 2000
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.TTSCommand == "" {
		return fmt.Errorf("TTS_COMMAND is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
