// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Demo      DemoConfig      `toml:"demo"`
	Services  ServicesConfig  `toml:"services"`
	HTTP      HTTPConfig      `toml:"http"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file,omitempty"` // rotated log file; stderr when empty
}

// DemoConfig controls the sample data fallback.
type DemoConfig struct {
	Enabled bool `toml:"enabled"`
}

// ServicesConfig holds the upstream services. A nil entry is not configured.
type ServicesConfig struct {
	Sonarr  *ServiceConfig `toml:"sonarr,omitempty"`
	Radarr  *ServiceConfig `toml:"radarr,omitempty"`
	SABnzbd *ServiceConfig `toml:"sabnzbd,omitempty"`
}

type ServiceConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// HTTPConfig tunes the upstream HTTP client.
type HTTPConfig struct {
	Timeout   time.Duration `toml:"timeout"`
	Retries   int           `toml:"retries"`    // extra attempts after a network error or 5xx
	RateLimit float64       `toml:"rate_limit"` // requests per second, 0 disables
	Burst     int           `toml:"burst"`
}

type DashboardConfig struct {
	RecentLimit     int `toml:"recent_limit"`
	HistoryPageSize int `toml:"history_page_size"`
}

const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8484
	DefaultTimeout         = 10 * time.Second
	DefaultRecentLimit     = 10
	DefaultHistoryPageSize = 20
)

// Load reads, substitutes, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file but skips
// Validate. Unresolved environment variables are still reported.
func LoadWithoutValidation(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = DefaultTimeout
	}
	if c.HTTP.RateLimit > 0 && c.HTTP.Burst == 0 {
		c.HTTP.Burst = 1
	}
	if c.Dashboard.RecentLimit == 0 {
		c.Dashboard.RecentLimit = DefaultRecentLimit
	}
	if c.Dashboard.HistoryPageSize == 0 {
		c.Dashboard.HistoryPageSize = DefaultHistoryPageSize
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references in content. Unresolved
// references are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
