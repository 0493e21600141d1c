// Package config loads reg2ps settings from defaults, an optional TOML file
// and REG2PS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/joshuapare/reg2ps/pkg/reg2ps"
)

const (
	// AppName is the application name.
	AppName = "reg2ps"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix prefixes environment overrides (REG2PS_SERVER_ADDR).
	EnvPrefix = "REG2PS"
)

// ErrConfigNotFound is returned when an explicitly requested config file is missing.
var ErrConfigNotFound = errors.New("config: file not found")

// Config is the effective reg2ps configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output" toml:"output" json:"output"`
	Server ServerConfig `mapstructure:"server" toml:"server" json:"server"`
	UI     UIConfig     `mapstructure:"ui" toml:"ui" json:"ui"`
}

// OutputConfig controls how input is read and scripts are written.
type OutputConfig struct {
	// Header is the generator comment placed above saved scripts.
	Header string `mapstructure:"header" toml:"header" json:"header"`
	// FileName is the default name for saved scripts.
	FileName string `mapstructure:"file_name" toml:"file_name" json:"file_name"`
	// Encoding is the input encoding used when a file has no byte order mark.
	Encoding string `mapstructure:"encoding" toml:"encoding" json:"encoding"`
	// JoinContinuations merges '\'-wrapped value lines before conversion.
	JoinContinuations bool `mapstructure:"join_continuations" toml:"join_continuations" json:"join_continuations"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr         string `mapstructure:"addr" toml:"addr" json:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes" toml:"max_body_bytes" json:"max_body_bytes"`
}

// UIConfig controls terminal output.
type UIConfig struct {
	NoColor bool `mapstructure:"no_color" toml:"no_color" json:"no_color"`
}

// LoadOptions selects where configuration comes from.
type LoadOptions struct {
	// ConfigFilePath is used exclusively when set (--config).
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory.
	ConfigDirPath string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Header:   reg2ps.DefaultHeader,
			FileName: reg2ps.DefaultFileName,
			Encoding: "UTF-8",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// Dir returns the reg2ps configuration directory: %APPDATA% on Windows,
// ~/Library/Application Support on macOS and $XDG_CONFIG_HOME (default
// ~/.config) elsewhere.
func Dir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, AppName), nil
}

// Load builds the effective configuration. A missing default config file is
// not an error; a missing explicit one is. The returned path is the file
// that was read, or "" when only defaults and environment applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.ConfigFilePath
	if path != "" {
		if !fileExists(path) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
	} else {
		dir := opts.ConfigDirPath
		if dir == "" {
			d, err := Dir()
			if err != nil {
				return nil, "", err
			}
			dir = d
		}
		if candidate := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt); fileExists(candidate) {
			path = candidate
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(ConfigFileExt)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return nil, "", fmt.Errorf("config: server.max_body_bytes must be positive, got %d", cfg.Server.MaxBodyBytes)
	}
	return &cfg, path, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("output.header", d.Output.Header)
	v.SetDefault("output.file_name", d.Output.FileName)
	v.SetDefault("output.encoding", d.Output.Encoding)
	v.SetDefault("output.join_continuations", d.Output.JoinContinuations)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("ui.no_color", d.UI.NoColor)
}

// Marshal renders cfg as TOML.
func Marshal(cfg *Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left alone unless force is set.
func WriteDefault(path string, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("config: %s already exists", path)
	}
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns the config file path inside Dir().
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
