// Package demo supplies fixed sample data that stands in for failed
// upstream calls when demo mode is on.
package demo

import (
	"fmt"
	"net/url"
	"time"

	"github.com/samber/mo"

	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/internal/library"
	"github.com/vmunix/arrdash/pkg/release"
)

// Version is reported as the service version while serving sample data.
const Version = "demo"

// Provider serves the sample data set. All timestamps are relative to the
// provider clock truncated to the hour, so calls within one hour agree.
type Provider struct {
	enabled bool
	now     func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// New creates a provider. A disabled provider never asks for fallback.
func New(enabled bool, opts ...Option) *Provider {
	p := &Provider{enabled: enabled, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// IsActive reports whether demo mode is on. A nil provider is inactive.
func (p *Provider) IsActive() bool {
	return p != nil && p.enabled
}

// ShouldFallback reports whether a fetch that returned err should be
// replaced by sample data. Successful fetches are never replaced, even
// when they returned nothing.
func (p *Provider) ShouldFallback(err error) bool {
	return err != nil && p.IsActive()
}

func (p *Provider) anchor() time.Time {
	return p.now().UTC().Truncate(time.Hour)
}

type show struct {
	id      int64
	title   string
	year    int
	network string
	tvdb    int64
	status  string
	addedH  int // hours before anchor
}

type film struct {
	id       int64
	title    string
	year     int
	studio   string
	tmdb     int64
	runtime  int
	addedH   int
	releaseD int // days relative to anchor
}

var shows = []show{
	{1, "Severance", 2022, "Apple TV+", 371980, "continuing", 6},
	{2, "The Office", 2005, "NBC", 73244, "ended", 30},
	{3, "Andor", 2022, "Disney+", 393189, "ended", 54},
	{4, "Shogun", 2024, "FX", 421254, "continuing", 78},
	{5, "The Last of Us", 2023, "HBO", 392256, "continuing", 102},
	{6, "Breaking Bad", 2008, "AMC", 81189, "ended", 500},
}

var films = []film{
	{101, "Dune: Part Two", 2024, "Legendary Pictures", 693134, 166, 3, -420},
	{102, "Oppenheimer", 2023, "Universal Pictures", 872585, 180, 27, -700},
	{103, "Poor Things", 2023, "Searchlight Pictures", 792307, 141, 51, -640},
	{104, "Civil War", 2024, "A24", 929590, 109, 75, -380},
	{105, "Furiosa", 2024, "Warner Bros.", 786892, 148, 99, -330},
	{106, "Project Hail Mary", 2026, "Amazon MGM Studios", 687163, 0, 123, 21},
	{107, "The Odyssey", 2026, "Universal Pictures", 1368337, 0, 147, 45},
}

// SampleLibrary returns the sample library for kind, most recently added
// first. KindUnknown returns nothing.
func (p *Provider) SampleLibrary(kind release.Kind) []library.Record {
	at := p.anchor()
	switch kind {
	case release.KindSeries:
		out := make([]library.Record, 0, len(shows))
		for _, s := range shows {
			out = append(out, library.Record{
				ID:         s.id,
				Kind:       release.KindSeries,
				Title:      s.title,
				Year:       mo.Some(s.year),
				Status:     s.status,
				Network:    s.network,
				ExternalID: s.tvdb,
				PosterURL:  placeholder(s.title),
				FanartURL:  placeholder(s.title),
				Monitored:  true,
				AddedAt:    at.Add(-time.Duration(s.addedH) * time.Hour),
			})
		}
		return out
	case release.KindMovie:
		out := make([]library.Record, 0, len(films))
		for _, f := range films {
			out = append(out, library.Record{
				ID:          f.id,
				Kind:        release.KindMovie,
				Title:       f.title,
				Year:        mo.Some(f.year),
				Network:     f.studio,
				ExternalID:  f.tmdb,
				Runtime:     f.runtime,
				PosterURL:   placeholder(f.title),
				FanartURL:   placeholder(f.title),
				Monitored:   true,
				AddedAt:     at.Add(-time.Duration(f.addedH) * time.Hour),
				ReleaseDate: at.AddDate(0, 0, f.releaseD),
			})
		}
		return out
	default:
		return []library.Record{}
	}
}

// SampleQueue returns a queue with one active and two waiting downloads.
func (p *Provider) SampleQueue() download.Queue {
	const mb = 1024 * 1024
	slots := []download.QueueSlot{
		{
			ID: "SABnzbd_nzo_demo_q1", Name: "Severance.S02E10.Cold.Harbor.2160p.ATVP.WEB-DL.DDP5.1.HDR.H.265",
			Category: "tv", Status: "Downloading", Priority: "Normal", Progress: 62,
			SizeBytes: 6144 * mb, SizeLeftBytes: 2335 * mb, TimeLeft: 3*time.Minute + 53*time.Second,
		},
		{
			ID: "SABnzbd_nzo_demo_q2", Name: "Project.Hail.Mary.2026.1080p.WEB-DL.DDP5.1.H.264",
			Category: "movies", Status: "Queued", Priority: "Normal",
			SizeBytes: 8192 * mb, SizeLeftBytes: 8192 * mb,
		},
		{
			ID: "SABnzbd_nzo_demo_q3", Name: "Shogun.S02E01.1080p.DSNP.WEB-DL.DDP5.1.H.264",
			Category: "tv", Status: "Paused", Priority: "Low",
			SizeBytes: 2048 * mb, SizeLeftBytes: 2048 * mb,
		},
	}
	var left int64
	for i := range slots {
		slots[i].State = download.QueueState(slots[i].Status)
		left += slots[i].SizeLeftBytes
	}
	return download.Queue{
		Slots:         slots,
		Speed:         10 * mb,
		SizeLeftBytes: left,
		TimeLeft:      20*time.Minute + 42*time.Second,
		Total:         len(slots),
	}
}

type historyEntry struct {
	name     string
	category string
	status   string
	gb       float64
	minutes  int // minutes before anchor
	fail     string
}

var history = []historyEntry{
	{"Severance.S02E09.The.After.Hours.2160p.ATVP.WEB-DL", "tv", download.StatusCompleted, 5.8, 20, ""},
	{"Severance.S02E08.Sweet.Vitriol.2160p.ATVP.WEB-DL", "tv", download.StatusCompleted, 5.6, 24, ""},
	{"Severance.S02E07.Chikhai.Bardo.2160p.ATVP.WEB-DL", "tv", download.StatusCompleted, 5.9, 31, ""},
	{"Furiosa.2024.2160p.UHD.BluRay.REMUX", "movies", download.StatusCompleted, 61.2, 95, ""},
	{"The.Office.US.S03E01.Gay.Witch.Hunt.1080p.WEB-DL", "tv", download.StatusCompleted, 1.1, 180, ""},
	{"The.Office.US.S03E02.The.Convention.1080p.WEB-DL", "tv", download.StatusCompleted, 1.1, 182, ""},
	{"Civil.War.2024.1080p.WEB-DL.DDP5.1", "movies", download.StatusFailed, 7.4, 240, "Unpacking failed, archive requires a password"},
	{"Oppenheimer.2023.1080p.BluRay.x264", "movies", download.StatusCompleted, 14.3, 300, ""},
	{"Andor.S01E01.Kassa.2160p.DSNP.WEB-DL", "tv", download.StatusCompleted, 7.2, 420, ""},
	{"Poor.Things.2023.2160p.WEB-DL.DDP5.1", "movies", download.StatusCompleted, 18.8, 600, ""},
	{"ubuntu-24.04-desktop-amd64", "software", download.StatusCompleted, 5.7, 720, ""},
	{"The.Last.of.Us.S02E01.Future.Days.1080p.WEB-DL", "tv", download.StatusCompleted, 3.4, 900, ""},
}

// SampleHistory returns the newest limit history entries. A non-positive
// limit returns all of them. Total is always the full sample size.
func (p *Provider) SampleHistory(limit int) download.HistoryPage {
	at := p.anchor()
	n := len(history)
	if limit > 0 && limit < n {
		n = limit
	}

	slots := make([]download.HistorySlot, 0, n)
	for i, h := range history[:n] {
		slots = append(slots, download.HistorySlot{
			ID:          fmt.Sprintf("SABnzbd_nzo_demo_h%02d", i+1),
			Name:        h.name,
			Category:    h.category,
			Status:      h.status,
			State:       download.HistoryState(h.status),
			SizeBytes:   int64(h.gb * 1024 * 1024 * 1024),
			CompletedAt: at.Add(-time.Duration(h.minutes) * time.Minute),
			FailMessage: h.fail,
			Storage:     "/downloads/complete/" + h.category + "/" + h.name,
		})
	}
	return download.HistoryPage{Slots: slots, Total: len(history)}
}

// SampleCalendar returns episodes airing over the next week.
func (p *Provider) SampleCalendar() []library.Episode {
	at := p.anchor()
	day := at.Truncate(24 * time.Hour)
	return []library.Episode{
		{ID: 9001, SeriesID: 4, SeriesTitle: "Shogun", Season: 2, Number: 2, Title: "Episode 2", AirDate: day.AddDate(0, 0, 1).Add(2 * time.Hour)},
		{ID: 9002, SeriesID: 5, SeriesTitle: "The Last of Us", Season: 2, Number: 3, Title: "The Path", AirDate: day.AddDate(0, 0, 3).Add(1 * time.Hour)},
		{ID: 9003, SeriesID: 1, SeriesTitle: "Severance", Season: 3, Number: 1, Title: "TBA", AirDate: day.AddDate(0, 0, 6).Add(3 * time.Hour)},
	}
}

// SampleUpcomingMovies returns the sample movies not yet in cinemas.
func (p *Provider) SampleUpcomingMovies() []library.Record {
	return library.UpcomingMovies(p.SampleLibrary(release.KindMovie), p.anchor(), 60*24*time.Hour)
}

func placeholder(title string) string {
	return "https://placehold.co/300x450?text=" + url.QueryEscape(title)
}
