// Package dashboard joins the series manager, movie manager and download
// manager into the views served by the API. Each upstream fetch is reported
// with its own Source so callers can tell live data from demo data, an
// outage, or a service that was never configured.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vmunix/arrdash/internal/apiclient"
	"github.com/vmunix/arrdash/internal/demo"
	"github.com/vmunix/arrdash/pkg/release"
)

var (
	ErrInvalidLimit  = errors.New("limit must be positive")
	ErrUnknownKind   = errors.New("unknown media kind")
	ErrUnknownAction = errors.New("unknown queue action")
	ErrNotFound      = errors.New("not found")
)

// Source tells where a section's data came from.
type Source string

const (
	SourceLive         Source = "live"
	SourceDemo         Source = "demo"
	SourceUnavailable  Source = "unavailable"
	SourceUnconfigured Source = "unconfigured"
)

// Section is the outcome of one upstream fetch.
type Section struct {
	Source Source `json:"source"`
	Error  string `json:"error,omitempty"`
}

// Sections maps service names ("sonarr", "radarr", "sabnzbd") to the
// outcome of their fetch.
type Sections map[string]Section

// Options tunes the dashboard views. Zero values take defaults.
type Options struct {
	RecentLimit     int              // entries in the recent list
	RecentWindow    int              // history slots fetched for reconciliation
	HistoryPageSize int              // default history page size
	CalendarDays    int              // days of upcoming episodes
	UpcomingWindow  time.Duration    // horizon for upcoming movies
	Now             func() time.Time // clock
}

func (o Options) withDefaults() Options {
	if o.RecentLimit <= 0 {
		o.RecentLimit = 10
	}
	if o.RecentWindow <= 0 {
		o.RecentWindow = 50
	}
	if o.HistoryPageSize <= 0 {
		o.HistoryPageSize = 20
	}
	if o.CalendarDays <= 0 {
		o.CalendarDays = 7
	}
	if o.UpcomingWindow <= 0 {
		o.UpcomingWindow = 60 * 24 * time.Hour
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Service builds dashboard views.
type Service struct {
	src  Sources
	demo *demo.Provider
	opts Options
	log  *slog.Logger
}

// New creates a dashboard service. A nil demo provider disables fallback.
func New(src Sources, demo *demo.Provider, opts Options, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		src:  src,
		demo: demo,
		opts: opts.withDefaults(),
		log:  log.With("component", "dashboard"),
	}
}

// Options returns the effective options.
func (s *Service) Options() Options {
	return s.opts
}

// DemoActive reports whether failed fetches are replaced by sample data.
func (s *Service) DemoActive() bool {
	return s.demo.IsActive()
}

var (
	seriesService   = apiclient.SeriesManager.String()
	moviesService   = apiclient.MovieManager.String()
	downloadService = apiclient.DownloadManager.String()
)

func (s *Service) librarySource(kind release.Kind) (LibrarySource, string, error) {
	switch kind {
	case release.KindSeries:
		return s.src.Series, seriesService, nil
	case release.KindMovie:
		return s.src.Movies, moviesService, nil
	default:
		return nil, "", ErrUnknownKind
	}
}

func libraryConfigured(src LibrarySource) bool {
	return src != nil && src.Configured()
}

func downloadsConfigured(src DownloadSource) bool {
	return src != nil && src.Configured()
}

// fetch runs call and classifies the outcome. A failed call, including an
// unconfigured service, is replaced by sample() when demo mode is on.
// Successful results are returned as they are, even when empty. Only
// cancellation of ctx is returned as an error.
func fetch[T any](ctx context.Context, s *Service, service string, configured bool, call func(context.Context) (T, error), sample func() T) (T, Section, error) {
	var zero T

	err := apiclient.ErrNotConfigured
	if configured {
		var v T
		start := time.Now()
		v, err = call(ctx)
		if err == nil {
			s.log.Debug("fetched", "service", service, "duration_ms", time.Since(start).Milliseconds())
			return v, Section{Source: SourceLive}, nil
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, Section{}, ctxErr
	}

	if s.demo.ShouldFallback(err) {
		s.log.Debug("serving demo data", "service", service, "error", err)
		return sample(), Section{Source: SourceDemo}, nil
	}
	if errors.Is(err, apiclient.ErrNotConfigured) {
		return zero, Section{Source: SourceUnconfigured, Error: apiclient.ErrNotConfigured.Error()}, nil
	}
	s.log.Warn("upstream fetch failed", "service", service, "error", err)
	return zero, Section{Source: SourceUnavailable, Error: err.Error()}, nil
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
