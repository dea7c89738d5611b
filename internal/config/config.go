// Package config loads, validates and saves the carbonsense configuration
// file (~/.carbonsense/config.yaml) and applies environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonsense/internal/logging"
	"github.com/rshade/carbonsense/internal/report"
)

// SchemaVersion is the config schema version written by New.
const SchemaVersion = "1.0"

// supportedSchema is the semver constraint a config file's version must meet.
const supportedSchema = "^1.0"

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.yaml"

const (
	configDirPerm  = 0o700
	configFilePerm = 0o600
)

// Sentinel errors returned by Validate and Load.
const (
	ErrInvalidOutputFormat = constError("invalid output format")
	ErrInvalidLogLevel     = constError("invalid log level")
	ErrInvalidLogFormat    = constError("invalid log format")
	ErrUnsupportedVersion  = constError("unsupported config version")
)

type constError string

func (e constError) Error() string { return string(e) }

// Config is the carbonsense configuration.
type Config struct {
	Version string        `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	TUI     TUIConfig     `yaml:"tui"`

	configPath string
}

// OutputConfig controls non-interactive report output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// TUIConfig controls the interactive calculator.
type TUIConfig struct {
	AltScreen bool `yaml:"alt_screen"`
	NoColor   bool `yaml:"no_color"`
}

// New returns the default configuration bound to the default config path.
func New() *Config {
	cfg := &Config{
		Version: SchemaVersion,
		Output:  OutputConfig{DefaultFormat: string(report.OutputTable)},
		Logging: LoggingConfig{Level: "info", Format: logging.FormatConsole},
		TUI:     TUIConfig{AltScreen: true},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	return cfg
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults bound to path.
func Load(path string) (*Config, error) {
	cfg := New()
	if path != "" {
		cfg.configPath = path
	}

	data, err := os.ReadFile(cfg.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", cfg.configPath, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if decodeErr := decoder.Decode(cfg); decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", cfg.configPath, decodeErr)
	}
	return cfg, nil
}

// ConfigPath returns the file the configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if writeErr := os.WriteFile(c.configPath, data, configFilePerm); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := report.ParseOutputFormat(c.Output.DefaultFormat); err != nil {
		errs = append(errs, fmt.Errorf("%w: output.default_format %q", ErrInvalidOutputFormat, c.Output.DefaultFormat))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidLogLevel, c.Logging.Level))
	}
	switch c.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q (want console or json)",
			ErrInvalidLogFormat, c.Logging.Format))
	}
	if err := checkVersion(c.Version); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func checkVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedSchema)
	}
	return nil
}

// String renders the configuration as YAML.
func (c *Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}
