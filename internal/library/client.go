package library

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/arrdash/internal/apiclient"
	"github.com/vmunix/arrdash/pkg/release"
)

// Client reads one Sonarr or Radarr library.
type Client struct {
	api  *apiclient.Client
	ep   apiclient.Endpoint
	kind release.Kind
	log  *slog.Logger
}

// NewClient creates a client for ep. The endpoint kind selects series
// (Sonarr) or movie (Radarr) resources.
func NewClient(api *apiclient.Client, ep apiclient.Endpoint, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	kind := release.KindMovie
	if ep.Kind == apiclient.SeriesManager {
		kind = release.KindSeries
	}
	return &Client{
		api:  api,
		ep:   ep,
		kind: kind,
		log:  log.With("component", ep.Kind.String()),
	}
}

// Kind returns the media kind this client serves.
func (c *Client) Kind() release.Kind {
	return c.kind
}

// Configured reports whether the endpoint has credentials.
func (c *Client) Configured() bool {
	return c.ep.Configured()
}

func (c *Client) resource() string {
	if c.kind == release.KindSeries {
		return "series"
	}
	return "movie"
}

// List returns the whole library, most recently added first.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	var res []mediaResource
	if err := c.api.DoJSON(ctx, c.ep, apiclient.Request{Path: "api/v3/" + c.resource()}, &res); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.resource(), err)
	}

	records := c.convert(res, true)
	slices.SortStableFunc(records, func(a, b Record) int {
		return b.AddedAt.Compare(a.AddedAt)
	})
	c.log.Debug("library loaded", "count", len(records), "skipped", len(res)-len(records))
	return records, nil
}

// Lookup searches the manager's metadata source for term. Results for
// titles not in the library have no ID.
func (c *Client) Lookup(ctx context.Context, term string) ([]Record, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Record{}, nil
	}

	var res []mediaResource
	req := apiclient.Request{
		Path:  "api/v3/" + c.resource() + "/lookup",
		Query: url.Values{"term": {term}},
	}
	if err := c.api.DoJSON(ctx, c.ep, req, &res); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", c.resource(), err)
	}
	return c.convert(res, false), nil
}

// Episodes lists all episodes of one series in season/episode order.
func (c *Client) Episodes(ctx context.Context, seriesID int64) ([]Episode, error) {
	if c.kind != release.KindSeries {
		return nil, ErrUnsupported
	}

	var res []episodeResource
	req := apiclient.Request{
		Path:  "api/v3/episode",
		Query: url.Values{"seriesId": {strconv.FormatInt(seriesID, 10)}},
	}
	if err := c.api.DoJSON(ctx, c.ep, req, &res); err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	episodes := make([]Episode, 0, len(res))
	for _, r := range res {
		episodes = append(episodes, toEpisode(r))
	}
	slices.SortStableFunc(episodes, func(a, b Episode) int {
		return cmp.Or(cmp.Compare(a.Season, b.Season), cmp.Compare(a.Number, b.Number))
	})
	return episodes, nil
}

// Calendar returns episodes airing in [from, to], soonest first. Entries the
// manager returns without a series title are named from shows, falling back
// to UnknownShow.
func (c *Client) Calendar(ctx context.Context, from, to time.Time, shows *Index) ([]Episode, error) {
	if c.kind != release.KindSeries {
		return nil, ErrUnsupported
	}

	var res []episodeResource
	req := apiclient.Request{
		Path: "api/v3/calendar",
		Query: url.Values{
			"start":                {from.Format(time.DateOnly)},
			"end":                  {to.Format(time.DateOnly)},
			"includeSeries":        {"true"},
			"includeEpisodeImages": {"false"},
		},
	}
	if err := c.api.DoJSON(ctx, c.ep, req, &res); err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	episodes := make([]Episode, 0, len(res))
	for _, r := range res {
		ep := toEpisode(r)
		if ep.SeriesTitle == "" {
			ep.SeriesTitle = UnknownShow
			if show, ok := shows.FindByID(ep.SeriesID); ok {
				ep.SeriesTitle = show.Title
			}
		}
		episodes = append(episodes, ep)
	}
	slices.SortStableFunc(episodes, func(a, b Episode) int {
		return a.AirDate.Compare(b.AirDate)
	})
	return episodes, nil
}

// Version reports the manager's version, used as a connection test.
func (c *Client) Version(ctx context.Context) (string, error) {
	var res statusResource
	if err := c.api.DoJSON(ctx, c.ep, apiclient.Request{Path: "api/v3/system/status"}, &res); err != nil {
		return "", fmt.Errorf("system status: %w", err)
	}
	if res.Version == "" {
		return "", errors.New("system status: no version in response")
	}
	return res.Version, nil
}

func (c *Client) convert(res []mediaResource, requireID bool) []Record {
	records := make([]Record, 0, len(res))
	for i, r := range res {
		rec, err := toRecord(c.kind, r, requireID)
		if err != nil {
			c.log.Warn("skipping invalid record", "index", i, "id", r.ID, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// UpcomingMovies returns movies whose cinema release falls strictly between
// now and now+window, soonest first.
func UpcomingMovies(movies []Record, now time.Time, window time.Duration) []Record {
	end := now.Add(window)
	out := make([]Record, 0)
	for _, m := range movies {
		if m.ReleaseDate.After(now) && m.ReleaseDate.Before(end) {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, func(a, b Record) int {
		return a.ReleaseDate.Compare(b.ReleaseDate)
	})
	return out
}
