// Package library reads series and movie libraries from Sonarr and Radarr
// and indexes them for title lookup.
package library

import (
	"errors"
	"time"

	"github.com/samber/mo"

	"github.com/vmunix/arrdash/pkg/release"
)

// ErrUnsupported is returned for operations the endpoint's service lacks.
var ErrUnsupported = errors.New("operation not supported for this service")

// UnknownShow titles calendar entries whose series is not in the library.
const UnknownShow = "Unknown Show"

// Record is one series or movie in a library snapshot.
type Record struct {
	ID          int64          `json:"id"`
	Kind        release.Kind   `json:"kind"`
	Title       string         `json:"title"`
	Year        mo.Option[int] `json:"year"`
	Overview    string         `json:"overview,omitempty"`
	Status      string         `json:"status,omitempty"`
	Network     string         `json:"network,omitempty"`
	PosterURL   string         `json:"poster_url,omitempty"`
	FanartURL   string         `json:"fanart_url,omitempty"`
	ExternalID  int64          `json:"external_id,omitempty"` // TVDB for series, TMDB for movies
	Runtime     int            `json:"runtime,omitempty"`     // minutes
	SizeOnDisk  int64          `json:"size_on_disk,omitempty"`
	Monitored   bool           `json:"monitored"`
	AddedAt     time.Time      `json:"added_at"`
	ReleaseDate time.Time      `json:"release_date,omitzero"` // in cinemas for movies, first aired for series
}

// InLibrary reports whether the record exists in the manager's library.
// Lookup results for titles not yet added carry no ID.
func (r Record) InLibrary() bool {
	return r.ID > 0
}

// Episode is one series episode from the calendar or episode list.
type Episode struct {
	ID          int64     `json:"id"`
	SeriesID    int64     `json:"series_id"`
	SeriesTitle string    `json:"series_title"`
	Season      int       `json:"season"`
	Number      int       `json:"episode"`
	Title       string    `json:"title"`
	AirDate     time.Time `json:"air_date,omitzero"`
	HasFile     bool      `json:"has_file"`
	Overview    string    `json:"overview,omitempty"`
}
