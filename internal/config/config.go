package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration, read from the environment.
type Config struct {
	Port    string
	GinMode string

	RemoteStoreURL         string
	RemoteStoreAuth        string
	RemoteStoreTimeout     time.Duration
	RemoteStoreReadRetries int

	InferenceBaseURL string
	InferenceTimeout time.Duration

	SessionDBPath string
	SessionTTL    time.Duration

	DirectoryCacheTTL time.Duration

	SlotClaimsEnabled bool
	SlotClaimGrace    time.Duration

	MediaBucket string
}

func Load() (*Config, error) {
	var errs []error
	cfg := &Config{
		Port:             getenvDefault("PORT", "8080"),
		GinMode:          getenvDefault("GIN_MODE", "release"),
		RemoteStoreURL:   strings.TrimSpace(os.Getenv("REMOTE_STORE_URL")),
		RemoteStoreAuth:  os.Getenv("REMOTE_STORE_AUTH"),
		InferenceBaseURL: strings.TrimSpace(os.Getenv("INFERENCE_BASE_URL")),
		SessionDBPath:    getenvDefault("SESSION_DB_PATH", "./data/session"),
		MediaBucket:      os.Getenv("MEDIA_BUCKET"),
	}

	cfg.RemoteStoreTimeout = durationEnv("REMOTE_STORE_TIMEOUT", 10*time.Second, &errs)
	cfg.RemoteStoreReadRetries = intEnv("REMOTE_STORE_READ_RETRIES", 2, &errs)
	cfg.InferenceTimeout = durationEnv("INFERENCE_TIMEOUT", 120*time.Second, &errs)
	cfg.SessionTTL = durationEnv("SESSION_TTL", 24*time.Hour, &errs)
	cfg.DirectoryCacheTTL = durationEnv("DIRECTORY_CACHE_TTL", 30*time.Second, &errs)
	cfg.SlotClaimsEnabled = boolEnv("SLOT_CLAIMS_ENABLED", true, &errs)
	cfg.SlotClaimGrace = durationEnv("SLOT_CLAIM_GRACE", 2*time.Minute, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required configuration values are set.
func (c *Config) Validate() error {
	if c.RemoteStoreURL == "" {
		return errors.New("REMOTE_STORE_URL is required")
	}
	if c.InferenceBaseURL == "" {
		return errors.New("INFERENCE_BASE_URL is required")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.RemoteStoreReadRetries < 0 {
		return errors.New("REMOTE_STORE_READ_RETRIES must not be negative")
	}
	if c.DirectoryCacheTTL < 0 {
		return errors.New("DIRECTORY_CACHE_TTL must not be negative")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func intEnv(key string, def int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func boolEnv(key string, def bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return b
}
