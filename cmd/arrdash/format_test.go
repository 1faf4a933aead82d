package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "-"},
		{"negative", -100, "-"},
		{"small bytes", 500, "500 B"},
		{"1.5KiB", 1536, "1.5 KiB"},
		{"exactly 1MiB", 1024 * 1024, "1.0 MiB"},
		{"1GiB", 1073741824, "1.0 GiB"},
		{"11GiB", 12000000000, "11 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSize(tt.bytes))
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "-", formatSpeed(0))
	assert.Equal(t, "5.2 MiB/s", formatSpeed(5452595))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "-", formatDuration(0))
	assert.Equal(t, "5m30s", formatDuration(5*time.Minute+30*time.Second+200*time.Millisecond))
}

func TestFormatAgo(t *testing.T) {
	assert.Equal(t, "-", formatAgo(time.Time{}))
	assert.Equal(t, "3 hours ago", formatAgo(time.Now().Add(-3*time.Hour)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "a long ...", truncate("a long download name", 10))
}

func TestIdentityLabel(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		want string
	}{
		{"episode", Identity{Title: "Severance", Season: intPtr(2), Episode: intPtr(1)}, "Severance S02E01"},
		{"season pack", Identity{Title: "The Bear", Season: intPtr(3)}, "The Bear S03"},
		{"movie", Identity{Title: "Oppenheimer", Year: intPtr(2023)}, "Oppenheimer (2023)"},
		{"unparsed", Identity{Title: "some.random.file"}, "some.random.file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identityLabel(tt.id))
		})
	}
}

func TestSourceNotes(t *testing.T) {
	notes := sourceNotes(map[string]Section{
		"sonarr":  {Source: "live"},
		"sabnzbd": {Source: "demo"},
		"radarr":  {Source: "unavailable", Error: "connection refused"},
		"other":   {Source: "unconfigured"},
	})
	assert.Equal(t, []string{
		"other: unconfigured",
		"radarr: unavailable (connection refused)",
		"sabnzbd: demo data",
	}, notes)

	assert.Empty(t, sourceNotes(map[string]Section{"sonarr": {Source: "live"}}))
}

func TestServiceState(t *testing.T) {
	tests := []struct {
		name string
		s    ServiceStatus
		want string
	}{
		{"connected", ServiceStatus{Configured: true, Connected: true, Version: "4.0.1", Source: "live"}, "ok (v4.0.1)"},
		{"not configured", ServiceStatus{Source: "unconfigured"}, "not configured"},
		{"demo", ServiceStatus{Source: "demo"}, "demo data"},
		{"failed", ServiceStatus{Configured: true, Source: "unavailable", Message: "timeout"}, "FAIL timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceState(tt.s))
		})
	}
}
