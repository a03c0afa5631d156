// Package config reads process configuration from environment variables.
// A .env file is loaded by main before this runs.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Port the HTTP/realtime server listens on.
	Port string

	// ClassifierURL is the base URL of the external classification
	// service. Empty disables the external path entirely (every call
	// falls back, which is a valid degraded mode).
	ClassifierURL string

	// ClassifierTimeout bounds each outbound classifier call.
	ClassifierTimeout time.Duration

	// OpenAIKey enables the secondary chat provider when set.
	OpenAIKey string
}

func Load() Config {
	return Config{
		Port:              envString("PORT", "8080"),
		ClassifierURL:     envString("CLASSIFIER_URL", "http://localhost:8000"),
		ClassifierTimeout: time.Duration(envInt("CLASSIFIER_TIMEOUT_SECONDS", 5)) * time.Second,
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
