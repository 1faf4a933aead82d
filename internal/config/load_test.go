package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 8080

[services.sabnzbd]
url = "http://localhost:8080"
api_key = "abc"

[http]
timeout = "15s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Services.SABnzbd == nil || cfg.Services.SABnzbd.APIKey != "abc" {
		t.Errorf("expected sabnzbd api key, got %+v", cfg.Services.SABnzbd)
	}
	if cfg.Services.Sonarr != nil {
		t.Errorf("expected sonarr unset, got %+v", cfg.Services.Sonarr)
	}
	if cfg.HTTP.Timeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %s", cfg.HTTP.Timeout)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("ARRDASH_MISSING_KEY")
	path := writeConfig(t, `
[services.radarr]
url = "http://localhost:7878"
api_key = "${ARRDASH_MISSING_KEY}"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if !strings.Contains(err.Error(), "ARRDASH_MISSING_KEY") {
		t.Errorf("expected ARRDASH_MISSING_KEY in error, got %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 99999

[demo]
enabled = true
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "server.port") {
		t.Errorf("expected server.port in error, got %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[demo]
enabled = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("expected default host %s, got %s", DefaultHost, cfg.Server.Host)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.HTTP.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.HTTP.Timeout)
	}
	if cfg.Dashboard.RecentLimit != DefaultRecentLimit || cfg.Dashboard.HistoryPageSize != DefaultHistoryPageSize {
		t.Errorf("expected dashboard defaults, got %+v", cfg.Dashboard)
	}
	if cfg.Addr() != "0.0.0.0:8484" {
		t.Errorf("expected 0.0.0.0:8484, got %s", cfg.Addr())
	}
}

func TestLoad_BurstDefaultsWithRateLimit(t *testing.T) {
	path := writeConfig(t, `
[demo]
enabled = true

[http]
rate_limit = 2.5
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Burst != 1 {
		t.Errorf("expected burst 1, got %d", cfg.HTTP.Burst)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 99999
`)

	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 99999 {
		t.Errorf("expected port 99999, got %d", cfg.Server.Port)
	}
}

func TestLoad_EnvVarDefault(t *testing.T) {
	os.Unsetenv("ARRDASH_OPTIONAL_HOST")
	path := writeConfig(t, `
[server]
host = "${ARRDASH_OPTIONAL_HOST:-localhost}"

[demo]
enabled = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected host localhost, got %s", cfg.Server.Host)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeConfig(t, "[server\nport = ")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parse error, got %v", err)
	}
}
