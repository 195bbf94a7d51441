// Package config loads settings for the aqa command from TOML or YAML files
// and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file picked up from the working directory when
// neither --config nor AQA_CONFIG names one.
const DefaultFile = "aqa.toml"

// Environment variables read by Load.
const (
	EnvConfig    = "AQA_CONFIG"
	EnvLogLevel  = "AQA_LOG_LEVEL"
	EnvColor     = "AQA_COLOR"
	EnvASTFormat = "AQA_AST_FORMAT"
)

// Config holds the complete command configuration.
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Trace  TraceConfig  `toml:"trace" yaml:"trace"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Watch  WatchConfig  `toml:"watch" yaml:"watch"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
}

// OutputConfig holds settings for printed results.
type OutputConfig struct {
	Color     bool   `toml:"color" yaml:"color"`
	ASTFormat string `toml:"ast_format" yaml:"ast_format"` // text, json, yaml
}

// TraceConfig selects the intermediate results printed by "aqa run".
type TraceConfig struct {
	Tokens bool `toml:"tokens" yaml:"tokens"`
	AST    bool `toml:"ast" yaml:"ast"`
}

// REPLConfig holds interactive loop settings.
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"` // relative to $HOME unless absolute
}

// WatchConfig holds settings for "aqa run --watch".
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "200ms".
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Format is a config file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatAuto // detect from the file extension
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	}
	return "unknown"
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn"},
		Output: OutputConfig{Color: true, ASTFormat: "text"},
		REPL:   REPLConfig{Prompt: "aqa> ", HistoryFile: ".aqa_history"},
		Watch:  WatchConfig{Debounce: Duration{100 * time.Millisecond}},
	}
}

// Load resolves the config file, reads it over the defaults, applies
// environment overrides, and validates the result.
//
// The file is the first of: path, $AQA_CONFIG, ./aqa.toml if it exists.
// An explicitly named file that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, FormatAuto); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the file at path over the defaults. It does not apply
// environment overrides or validate.
func LoadFile(path string, format Format) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if format == FormatAuto {
		format = detectFormat(path)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// detectFormat determines the format from the file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data over the defaults. Keys that match no setting are an
// error, so typos are not silently ignored.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables looked up with
// getenv. Empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvColor); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvColor, v)
		}
		c.Output.Color = b
	}
	if v := getenv(EnvASTFormat); v != "" {
		c.Output.ASTFormat = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Output.ASTFormat {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output.ast_format %q: want text, json, or yaml", c.Output.ASTFormat)
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("invalid watch.debounce %s: must not be negative", c.Watch.Debounce)
	}
	return nil
}

// SlogLevel returns the configured log level. It assumes Validate passed
// and falls back to warn otherwise.
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log.level %q: want debug, info, warn, or error", s)
}

// HistoryPath returns the REPL history file path, resolved against the
// home directory when relative. It returns "" when history is disabled or
// the home directory is unknown.
func (c *Config) HistoryPath() string {
	p := c.REPL.HistoryFile
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, p)
}
