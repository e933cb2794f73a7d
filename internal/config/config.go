package config

import (
	"fmt"
	"strings"
)

// Config centralizes the run settings the CLI collects from flags. The
// extension table is deliberately not part of it: categories are fixed
// constants of the program, not configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	DryRun    bool
}

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Validate normalizes and checks the configuration, returning the first
// problem found.
func (c *Config) Validate() error {
	c.normalize()
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level: unsupported value %q (expected debug, info, warn, or error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log format: unsupported value %q (expected console or json)", c.LogFormat)
	}
	return nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat == "" {
		c.LogFormat = defaultLogFormat
	}
}
