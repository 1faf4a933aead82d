package library

import (
	"errors"
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/vmunix/arrdash/pkg/release"
)

// Wire shapes for the Sonarr/Radarr v3 API. Only the fields the dashboard
// reads are declared.

type imageResource struct {
	CoverType string `json:"coverType"`
	RemoteURL string `json:"remoteUrl"`
	URL       string `json:"url"`
}

type statisticsResource struct {
	SizeOnDisk int64 `json:"sizeOnDisk"`
}

type mediaResource struct {
	ID         int64               `json:"id"`
	Title      string              `json:"title"`
	Year       int                 `json:"year"`
	Overview   string              `json:"overview"`
	Status     string              `json:"status"`
	Network    string              `json:"network"`
	Studio     string              `json:"studio"`
	Images     []imageResource     `json:"images"`
	Added      string              `json:"added"`
	InCinemas  string              `json:"inCinemas"`
	FirstAired string              `json:"firstAired"`
	Runtime    int                 `json:"runtime"`
	Monitored  bool                `json:"monitored"`
	TvdbID     int64               `json:"tvdbId"`
	TmdbID     int64               `json:"tmdbId"`
	SizeOnDisk int64               `json:"sizeOnDisk"`
	Statistics *statisticsResource `json:"statistics"`
}

type episodeResource struct {
	ID            int64  `json:"id"`
	SeriesID      int64  `json:"seriesId"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	Title         string `json:"title"`
	Overview      string `json:"overview"`
	AirDateUTC    string `json:"airDateUtc"`
	AirDate       string `json:"airDate"`
	HasFile       bool   `json:"hasFile"`
	Series        *struct {
		Title string `json:"title"`
	} `json:"series"`
}

type statusResource struct {
	Version string `json:"version"`
}

var (
	errMissingID    = errors.New("missing id")
	errMissingTitle = errors.New("missing title")
)

// toRecord validates a wire resource and converts it. requireID is false for
// lookup results, which describe titles not yet in the library.
func toRecord(kind release.Kind, res mediaResource, requireID bool) (Record, error) {
	if requireID && res.ID <= 0 {
		return Record{}, errMissingID
	}
	title := strings.TrimSpace(res.Title)
	if title == "" {
		return Record{}, errMissingTitle
	}

	rec := Record{
		ID:        max(res.ID, 0),
		Kind:      kind,
		Title:     title,
		Overview:  res.Overview,
		Status:    res.Status,
		PosterURL: selectImage(res.Images, "poster"),
		FanartURL: selectImage(res.Images, "fanart"),
		Runtime:   res.Runtime,
		Monitored: res.Monitored,
		AddedAt:   parseTime(res.Added),
	}
	if res.Year > 0 {
		rec.Year = mo.Some(res.Year)
	}

	switch kind {
	case release.KindSeries:
		rec.Network = res.Network
		rec.ExternalID = res.TvdbID
		rec.ReleaseDate = parseTime(res.FirstAired)
		if res.Statistics != nil {
			rec.SizeOnDisk = res.Statistics.SizeOnDisk
		}
	case release.KindMovie:
		rec.Network = res.Studio
		rec.ExternalID = res.TmdbID
		rec.ReleaseDate = parseTime(res.InCinemas)
		rec.SizeOnDisk = res.SizeOnDisk
	}
	return rec, nil
}

func toEpisode(res episodeResource) Episode {
	ep := Episode{
		ID:       res.ID,
		SeriesID: res.SeriesID,
		Season:   res.SeasonNumber,
		Number:   res.EpisodeNumber,
		Title:    res.Title,
		Overview: res.Overview,
		HasFile:  res.HasFile,
		AirDate:  parseTime(res.AirDateUTC),
	}
	if ep.AirDate.IsZero() {
		ep.AirDate = parseTime(res.AirDate)
	}
	if res.Series != nil {
		ep.SeriesTitle = strings.TrimSpace(res.Series.Title)
	}
	return ep
}

// selectImage returns the URL of the first image with the given cover type,
// preferring remoteUrl over url. Other cover types fall back to the poster.
func selectImage(images []imageResource, coverType string) string {
	if u := findImage(images, coverType); u != "" {
		return u
	}
	if !strings.EqualFold(coverType, "poster") {
		return findImage(images, "poster")
	}
	return ""
}

func findImage(images []imageResource, coverType string) string {
	for _, img := range images {
		if !strings.EqualFold(img.CoverType, coverType) {
			continue
		}
		if img.RemoteURL != "" {
			return img.RemoteURL
		}
		return img.URL
	}
	return ""
}

// parseTime accepts the timestamp and date-only forms the managers emit.
// Unparseable values yield the zero time.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
