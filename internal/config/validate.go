package config

import (
	"errors"
	"fmt"
	"net/url"

	"lerobotviz/internal/dataset"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateHub(); err != nil {
		return err
	}
	if err := c.validateFetch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateHub() error {
	parsed, err := url.Parse(c.Hub.BaseURL)
	if err != nil {
		return fmt.Errorf("hub.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("hub.base_url must use http or https, got %q", c.Hub.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("hub.base_url must include a host, got %q", c.Hub.BaseURL)
	}
	return nil
}

func (c *Config) validateFetch() error {
	if c.Fetch.TimeoutMS <= 0 {
		return errors.New("fetch.timeout_ms must be positive")
	}
	if c.Fetch.MaxAttempts <= 0 || c.Fetch.MaxAttempts > dataset.AttemptLimit {
		return fmt.Errorf("fetch.max_attempts must be between 1 and %d, got %d", dataset.AttemptLimit, c.Fetch.MaxAttempts)
	}
	if c.Fetch.BackoffMS <= 0 {
		return errors.New("fetch.backoff_ms must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
