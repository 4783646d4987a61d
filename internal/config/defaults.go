package config

import "lerobotviz/internal/dataset"

const (
	defaultConfigPath  = "~/.config/lerobotviz/config.toml"
	projectConfigName  = "lerobotviz.toml"
	defaultTimeoutMS   = 10000
	defaultMaxAttempts = 2
	defaultBackoffMS   = 300
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Hub: Hub{
			BaseURL: dataset.DefaultBaseURL,
		},
		Fetch: Fetch{
			TimeoutMS:   defaultTimeoutMS,
			MaxAttempts: defaultMaxAttempts,
			BackoffMS:   defaultBackoffMS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
