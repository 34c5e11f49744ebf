// Package config handles the configuration directory, config file and API token.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "todoist"

	// ConfigFile is the optional config filename inside the config directory.
	ConfigFile = "config.yaml"

	// TokenEnv is the environment variable holding the API token.
	TokenEnv = "TODOIST_API_KEY"

	// APIURLEnv overrides the API base URL.
	APIURLEnv = "TODOIST_API_URL"

	// DefaultAPIURL is the Todoist API base URL.
	DefaultAPIURL = "https://api.todoist.com/api/v1"
)

// ErrMissingToken is returned when TODOIST_API_KEY is unset or blank.
var ErrMissingToken = errors.New(TokenEnv + " environment variable not set")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Token is the bearer token for API calls. Read once at load.
	Token string

	// APIURL is the API base URL without a trailing slash.
	APIURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses confirmation messages. Empty-state messages are
	// still printed.
	Quiet bool

	// JSON switches output to raw JSON.
	JSON bool
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	APIURL string `mapstructure:"api_url"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoist or $HOME/.config/todoist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, APIURL: DefaultAPIURL}, nil
}

// Load builds a Config from the config directory, config.yaml (if present)
// and the environment.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("api_url", DefaultAPIURL)
	if err := v.BindEnv("api_url", APIURLEnv); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.FilePath()); err == nil {
		v.SetConfigFile(cfg.FilePath())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	if fc.APIURL != "" {
		cfg.APIURL = strings.TrimRight(fc.APIURL, "/")
	}

	cfg.Token = strings.TrimSpace(os.Getenv(TokenEnv))
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasToken reports whether an API token is configured.
func (c *Config) HasToken() bool {
	return c.Token != ""
}

// RequireToken returns ErrMissingToken when no token is configured.
func (c *Config) RequireToken() error {
	if !c.HasToken() {
		return ErrMissingToken
	}
	return nil
}
