package config

import (
	"os"
	"strings"

	"lerobotviz/internal/dataset"
)

func (c *Config) normalize() {
	c.normalizeHub()
	c.normalizeFetch()
	c.normalizeLogging()
}

func (c *Config) normalizeHub() {
	if value := envValue("DATASET_URL"); value != "" {
		c.Hub.BaseURL = value
	}
	c.Hub.BaseURL = strings.TrimRight(strings.TrimSpace(c.Hub.BaseURL), "/")
	if c.Hub.BaseURL == "" {
		c.Hub.BaseURL = dataset.DefaultBaseURL
	}

	// Environment values override the file, matching DATASET_URL above.
	if value := envValue("HF_TOKEN", "HUGGING_FACE_HUB_TOKEN"); value != "" {
		c.Hub.Token = value
	}
	c.Hub.Token = strings.TrimSpace(c.Hub.Token)
}

func (c *Config) normalizeFetch() {
	if c.Fetch.TimeoutMS == 0 {
		c.Fetch.TimeoutMS = defaultTimeoutMS
	}
	if c.Fetch.MaxAttempts == 0 {
		c.Fetch.MaxAttempts = defaultMaxAttempts
	}
	if c.Fetch.BackoffMS == 0 {
		c.Fetch.BackoffMS = defaultBackoffMS
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// envValue returns the first non-blank value among keys.
func envValue(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
