// Package config loads the chord bindings and logging settings for stamper.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/ionut-t/stamper/core"
)

// Version is the current configuration schema version.
const Version = 1

// Binding maps one chord to one stamp.
type Binding struct {
	Name    string       `toml:"name" json:"name" yaml:"name"`
	Chord   string       `toml:"chord" json:"chord" yaml:"chord"`
	Format  string       `toml:"format" json:"format" yaml:"format"`
	Variant core.Variant `toml:"variant,omitempty" json:"variant,omitempty" yaml:"variant,omitempty"`
}

// Config holds the complete stamper configuration.
type Config struct {
	Version  int       `toml:"version" json:"version" yaml:"version"`
	LogLevel string    `toml:"log_level" json:"log_level" yaml:"log_level"`
	LogFile  string    `toml:"log_file,omitempty" json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Bindings []Binding `toml:"bindings" json:"bindings" yaml:"bindings"`
}

// DefaultConfig returns the built-in bindings.
func DefaultConfig() *Config {
	return &Config{
		Version:  Version,
		LogLevel: "info",
		Bindings: []Binding{
			{
				Name:    "timestamp",
				Chord:   "ctrl+shift+1",
				Format:  "%Y-%m-%d %H:%M:%S",
				Variant: core.PlainVariant,
			},
			{
				Name:    "weekly",
				Chord:   "ctrl+alt+w",
				Format:  "%y%m%d",
				Variant: core.WeeklyVariant,
			},
		},
	}
}

// ConfigDir returns the stamper directory under the user config dir.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".stamper"
	}
	return filepath.Join(dir, "stamper")
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads configuration from path, or the default path when empty.
// A missing file yields the defaults. The format follows the extension:
// .toml, .json, .yaml or .yml; anything else is tried in that order.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.ApplyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// decode parses data over the defaults. Bindings are replaced as a whole:
// a file that lists bindings keeps only those.
func decode(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Bindings
	cfg.Bindings = nil

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := autoDetectAndParse(data, cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Bindings == nil {
		cfg.Bindings = defaults
	}
	return cfg, nil
}

// autoDetectAndParse tries TOML, JSON and YAML in turn.
func autoDetectAndParse(data []byte, cfg *Config) error {
	if _, err := toml.Decode(string(data), cfg); err == nil {
		return nil
	}

	resetForDecode(cfg)
	if err := json.Unmarshal(data, cfg); err == nil {
		return nil
	}

	resetForDecode(cfg)
	if err := yaml.Unmarshal(data, cfg); err == nil {
		return nil
	}

	return fmt.Errorf("unable to parse config file (tried TOML, JSON, YAML)")
}

func resetForDecode(cfg *Config) {
	*cfg = *DefaultConfig()
	cfg.Bindings = nil
}

// Save writes cfg to path as TOML, creating the parent directory.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode TOML: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// ApplyEnvOverrides applies STAMPER_ environment variables.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("STAMPER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("STAMPER_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// LogPath returns the log file path, defaulting to stamper.log in ConfigDir.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(ConfigDir(), "stamper.log")
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Stamp returns the stamp function for the binding's variant and format.
func (b Binding) Stamp() (core.Stamp, error) {
	return core.NewStamp(b.Variant, b.Format)
}

// Keymap builds one controller per binding, in order.
func (c *Config) Keymap(opts ...core.Option) (*core.Keymap, error) {
	km := core.NewKeymap(opts...)

	for _, b := range c.Bindings {
		stamp, err := b.Stamp()
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Name, err)
		}
		if _, err := km.Add(b.Name, b.Chord, stamp); err != nil {
			return nil, fmt.Errorf("binding %q: %w", b.Name, err)
		}
	}

	return km, nil
}
