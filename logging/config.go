package logging

import (
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every logging variable, e.g. WINECONF_LOG_LEVEL.
const envPrefix = "WINECONF"

// Config defines the logging settings read from the environment.
type Config struct {
	// Level is the minimum log level to output (e.g., "debug", "info", "warn", "error").
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// ReportCaller, if true, includes the file, line, and function name in the log output.
	ReportCaller bool `envconfig:"LOG_CALLER" default:"false"`

	// File is the full path to an optional log file.
	File string `envconfig:"LOG_FILE"`

	// Format is "text" (default) or "json".
	Format string `envconfig:"LOG_FORMAT" default:"text"`

	// Stderr controls when logs are sent to stderr.
	// Can be "auto" (default), "always", or "never".
	Stderr string `envconfig:"LOG_STDERR" default:"auto"`
}

// LoadConfig reads the logging settings, falling back to defaults when the
// environment holds values that cannot be decoded.
func LoadConfig() Config {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{Level: "info", Format: "text", Stderr: "auto"}
	}
	return cfg
}
