package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvHome         = "CARBONSENSE_HOME"
	EnvConfig       = "CARBONSENSE_CONFIG"
	EnvLogLevel     = "CARBONSENSE_LOG_LEVEL"
	EnvLogFormat    = "CARBONSENSE_LOG_FORMAT"
	EnvLogFile      = "CARBONSENSE_LOG_FILE"
	EnvOutputFormat = "CARBONSENSE_OUTPUT_FORMAT"
	EnvNoColor      = "CARBONSENSE_NO_COLOR"
	EnvNoColorStd   = "NO_COLOR"
)

// DotEnvFile is the file LoadDotEnv reads by default.
const DotEnvFile = ".env"

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DotEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment overrides on c.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvOutputFormat); ok && v != "" {
		c.Output.DefaultFormat = v
	}
	if v, ok := lookupEnv(EnvNoColor); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.TUI.NoColor = b
		}
	}
	// https://no-color.org: any non-empty value disables color.
	if v, ok := lookupEnv(EnvNoColorStd); ok && v != "" {
		c.TUI.NoColor = true
	}
}

// ResolvePath picks the config file: the flag value, then CARBONSENSE_CONFIG,
// then the default location. It returns "" when no home directory is known.
func ResolvePath(flagValue string, lookupEnv func(string) (string, bool)) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := lookupEnv(EnvConfig); ok && v != "" {
		return v
	}
	return New().ConfigPath()
}
