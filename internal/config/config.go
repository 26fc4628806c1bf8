// Package config handles the XDG configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskmgr"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// TokenFile is the stored session token filename.
	TokenFile = "token.json"

	// DefaultAPIURL is the Task Manager API used when nothing else is configured.
	DefaultAPIURL = "https://backend-tm.onrender.com"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 10 * time.Second

	// DefaultRateLimit is the client-side request rate in requests per second.
	DefaultRateLimit = 10.0

	// DefaultRateBurst is the limiter burst size.
	DefaultRateBurst = 5
)

// Environment variables that override config.yaml.
const (
	EnvAPIURL    = "TASKMGR_API_URL"
	EnvTimeout   = "TASKMGR_TIMEOUT"
	EnvRateLimit = "TASKMGR_RATE_LIMIT"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// APIURL is the base URL of the Task Manager API.
	APIURL string

	// Timeout bounds each API request.
	Timeout time.Duration

	// RateLimit is the maximum request rate (requests per second).
	RateLimit float64

	// RateBurst is the limiter burst size.
	RateBurst int
}

// fileConfig mirrors config.yaml.
type fileConfig struct {
	APIURL    string        `yaml:"api_url"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"`
	RateBurst int           `yaml:"rate_burst"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskmgr or $HOME/.config/taskmgr.
// Settings start from defaults, then config.yaml, then the environment.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:       dir,
		APIURL:    DefaultAPIURL,
		Timeout:   DefaultTimeout,
		RateLimit: DefaultRateLimit,
		RateBurst: DefaultRateBurst,
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}
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

func (c *Config) loadFile() error {
	f, err := os.Open(c.FilePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ConfigFile, err)
	}
	defer f.Close()

	var fc fileConfig
	if err := yaml.NewDecoder(f).Decode(&fc); err != nil {
		// An empty file decodes to io.EOF; treat it as no settings.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.Timeout > 0 {
		c.Timeout = fc.Timeout
	}
	if fc.RateLimit > 0 {
		c.RateLimit = fc.RateLimit
	}
	if fc.RateBurst > 0 {
		c.RateBurst = fc.RateBurst
	}
	return nil
}

func (c *Config) overrideFromEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid %s: %s", EnvTimeout, v)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return fmt.Errorf("invalid %s: %s", EnvRateLimit, v)
		}
		c.RateLimit = r
	}
	return nil
}

// SetAPIURL overrides the API base URL (the --api-url flag).
func (c *Config) SetAPIURL(u string) {
	if u = strings.TrimSpace(u); u != "" {
		c.APIURL = u
	}
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// TokenPath returns the path to the stored session token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}
