package config

import (
	"fmt"
	"net/url"
	"time"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

const (
	minTimeout         = time.Second
	maxTimeout         = time.Minute
	maxRetries         = 10
	maxRecentLimit     = 100
	maxHistoryPageSize = 200
)

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	services := map[string]*ServiceConfig{
		"sonarr":  c.Services.Sonarr,
		"radarr":  c.Services.Radarr,
		"sabnzbd": c.Services.SABnzbd,
	}
	configured := 0
	for _, name := range []string{"sonarr", "radarr", "sabnzbd"} {
		svc := services[name]
		if svc == nil {
			continue
		}
		configured++
		errs = append(errs, svc.validate("services."+name)...)
	}
	if configured == 0 && !c.Demo.Enabled {
		errs = append(errs, "services: at least one service must be configured unless demo.enabled is set")
	}

	if c.HTTP.Timeout != 0 && (c.HTTP.Timeout < minTimeout || c.HTTP.Timeout > maxTimeout) {
		errs = append(errs, fmt.Sprintf("http.timeout: must be between %s and %s, got %s", minTimeout, maxTimeout, c.HTTP.Timeout))
	}
	if c.HTTP.Retries < 0 || c.HTTP.Retries > maxRetries {
		errs = append(errs, fmt.Sprintf("http.retries: must be between 0 and %d, got %d", maxRetries, c.HTTP.Retries))
	}
	if c.HTTP.RateLimit < 0 {
		errs = append(errs, fmt.Sprintf("http.rate_limit: must not be negative, got %g", c.HTTP.RateLimit))
	}
	if c.HTTP.Burst < 0 {
		errs = append(errs, fmt.Sprintf("http.burst: must not be negative, got %d", c.HTTP.Burst))
	}

	if c.Dashboard.RecentLimit < 0 || c.Dashboard.RecentLimit > maxRecentLimit {
		errs = append(errs, fmt.Sprintf("dashboard.recent_limit: must be between 1 and %d, got %d", maxRecentLimit, c.Dashboard.RecentLimit))
	}
	if c.Dashboard.HistoryPageSize < 0 || c.Dashboard.HistoryPageSize > maxHistoryPageSize {
		errs = append(errs, fmt.Sprintf("dashboard.history_page_size: must be between 1 and %d, got %d", maxHistoryPageSize, c.Dashboard.HistoryPageSize))
	}

	return errs
}

func (s *ServiceConfig) validate(prefix string) []string {
	var errs []string
	if s.URL == "" {
		errs = append(errs, prefix+".url: required when the service is configured")
	} else if u, err := url.Parse(s.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("%s.url: must be an http or https URL, got %q", prefix, s.URL))
	}
	if s.APIKey == "" {
		errs = append(errs, prefix+".api_key: required when the service is configured")
	}
	return errs
}
