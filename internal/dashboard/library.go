package dashboard

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdash/internal/demo"
	"github.com/vmunix/arrdash/internal/library"
	"github.com/vmunix/arrdash/pkg/release"
)

// LibraryView is a series or movie library, most recently added first.
type LibraryView struct {
	Kind    release.Kind     `json:"kind"`
	Records []library.Record `json:"records"`
	Section
}

// DetailsView is one library record. Series carry their episode list.
type DetailsView struct {
	Record   library.Record    `json:"record"`
	Episodes []library.Episode `json:"episodes,omitempty"`
	Section
}

// SearchView holds search results. Library holds titles already present,
// Available holds manager lookups that are not.
type SearchView struct {
	Term      string           `json:"term"`
	Library   []library.Record `json:"library"`
	Available []library.Record `json:"available"`
	Sources   Sections         `json:"sources"`
}

// UpcomingView lists episodes airing soon and movies about to reach cinemas.
type UpcomingView struct {
	Episodes []library.Episode `json:"episodes"`
	Movies   []library.Record  `json:"movies"`
	Sources  Sections          `json:"sources"`
}

// Library returns the library for kind.
func (s *Service) Library(ctx context.Context, kind release.Kind) (LibraryView, error) {
	recs, sec, err := s.fetchLibrary(ctx, kind)
	if err != nil {
		return LibraryView{}, err
	}
	return LibraryView{Kind: kind, Records: orEmpty(recs), Section: sec}, nil
}

// Details returns the record with id from the library for kind.
func (s *Service) Details(ctx context.Context, kind release.Kind, id int64) (DetailsView, error) {
	recs, sec, err := s.fetchLibrary(ctx, kind)
	if err != nil {
		return DetailsView{}, err
	}
	rec, ok := library.NewIndex(recs).FindByID(id)
	if !ok {
		return DetailsView{}, ErrNotFound
	}

	view := DetailsView{Record: rec, Section: sec}
	if kind != release.KindSeries {
		return view, nil
	}

	sample := func() []library.Episode {
		return lo.Filter(s.demo.SampleCalendar(), func(e library.Episode, _ int) bool {
			return e.SeriesID == id
		})
	}
	if sec.Source == SourceDemo {
		view.Episodes = sample()
		return view, nil
	}

	eps, epSec, err := fetch(ctx, s, seriesService, libraryConfigured(s.src.Series),
		func(ctx context.Context) ([]library.Episode, error) { return s.src.Series.Episodes(ctx, id) },
		sample,
	)
	if err != nil {
		return DetailsView{}, err
	}
	view.Episodes = eps
	if epSec.Source != SourceLive {
		view.Section = epSec
	}
	return view, nil
}

// Search looks term up in the library for kind and in the manager's
// catalogue. KindUnknown searches both kinds. Catalogue results already in
// the library are left out of Available.
func (s *Service) Search(ctx context.Context, kind release.Kind, term string) (SearchView, error) {
	term = strings.TrimSpace(term)
	view := SearchView{
		Term:      term,
		Library:   []library.Record{},
		Available: []library.Record{},
		Sources:   Sections{},
	}
	if term == "" {
		return view, nil
	}

	kinds := []release.Kind{kind}
	if kind == release.KindUnknown {
		kinds = []release.Kind{release.KindSeries, release.KindMovie}
	}

	results := make([]searchResult, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		if _, _, err := s.librarySource(k); err != nil {
			return SearchView{}, err
		}
		g.Go(func() error {
			r, err := s.searchKind(gctx, k, term)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return SearchView{}, err
	}

	for _, r := range results {
		view.Library = append(view.Library, r.local...)
		view.Available = append(view.Available, r.available...)
		view.Sources[r.name] = r.sec
	}
	return view, nil
}

type searchResult struct {
	name      string
	local     []library.Record
	available []library.Record
	sec       Section
}

// searchKind matches term against the library snapshot and the manager's
// lookup endpoint in parallel.
func (s *Service) searchKind(ctx context.Context, kind release.Kind, term string) (searchResult, error) {
	src, name, _ := s.librarySource(kind)
	r := searchResult{name: name}

	var (
		recs   []library.Record
		found  []library.Record
		libSec Section
		lkSec  Section
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recs, libSec, err = s.fetchLibrary(gctx, kind)
		return err
	})
	g.Go(func() error {
		var err error
		found, lkSec, err = fetch(gctx, s, name, libraryConfigured(src),
			func(ctx context.Context) ([]library.Record, error) { return src.Lookup(ctx, term) },
			func() []library.Record { return nil },
		)
		return err
	})
	if err := g.Wait(); err != nil {
		return r, err
	}

	r.local = library.NewIndex(recs).Search(term)
	owned := make(map[int64]bool, len(recs))
	for _, rec := range recs {
		if rec.ExternalID > 0 {
			owned[rec.ExternalID] = true
		}
	}
	r.available = lo.Filter(found, func(rec library.Record, _ int) bool {
		return !rec.InLibrary() && !owned[rec.ExternalID]
	})

	r.sec = libSec
	if libSec.Source == SourceLive && lkSec.Source != SourceLive {
		r.sec = lkSec
	}
	return r, nil
}

// Upcoming returns episodes airing within the calendar window and movies
// reaching cinemas within the upcoming window.
func (s *Service) Upcoming(ctx context.Context) (UpcomingView, error) {
	now := s.opts.Now()
	view := UpcomingView{Sources: Sections{}}

	var seriesSec, moviesSec Section
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recs, sec, err := s.fetchLibrary(gctx, release.KindSeries)
		if err != nil {
			return err
		}
		if sec.Source == SourceDemo {
			view.Episodes, seriesSec = s.demo.SampleCalendar(), sec
			return nil
		}
		shows := library.NewIndex(recs)
		to := now.AddDate(0, 0, s.opts.CalendarDays)
		view.Episodes, seriesSec, err = fetch(gctx, s, seriesService, libraryConfigured(s.src.Series),
			func(ctx context.Context) ([]library.Episode, error) {
				return s.src.Series.Calendar(ctx, now, to, shows)
			},
			s.demo.SampleCalendar,
		)
		return err
	})
	g.Go(func() error {
		recs, sec, err := s.fetchLibrary(gctx, release.KindMovie)
		if err != nil {
			return err
		}
		view.Movies, moviesSec = library.UpcomingMovies(recs, now, s.opts.UpcomingWindow), sec
		if sec.Source == SourceDemo {
			view.Movies = s.demo.SampleUpcomingMovies()
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return UpcomingView{}, err
	}

	view.Episodes = orEmpty(view.Episodes)
	view.Movies = orEmpty(view.Movies)
	view.Sources[seriesService] = seriesSec
	view.Sources[moviesService] = moviesSec
	return view, nil
}

// ServiceStatus is the result of a connection test.
type ServiceStatus struct {
	Service    string `json:"service"`
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Version    string `json:"version,omitempty"`
	Message    string `json:"message"`
	Source     Source `json:"source"`
}

// Status tests the connection to every service.
func (s *Service) Status(ctx context.Context) ([]ServiceStatus, error) {
	type check struct {
		name       string
		configured bool
		version    func(context.Context) (string, error)
	}
	checks := []check{
		{seriesService, libraryConfigured(s.src.Series), nil},
		{moviesService, libraryConfigured(s.src.Movies), nil},
		{downloadService, downloadsConfigured(s.src.Downloads), nil},
	}
	if checks[0].configured {
		checks[0].version = s.src.Series.Version
	}
	if checks[1].configured {
		checks[1].version = s.src.Movies.Version
	}
	if checks[2].configured {
		checks[2].version = s.src.Downloads.Version
	}

	out := make([]ServiceStatus, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, c := range checks {
		g.Go(func() error {
			v, sec, err := fetch(gctx, s, c.name, c.configured, c.version,
				func() string { return demo.Version },
			)
			if err != nil {
				return err
			}
			st := ServiceStatus{Service: c.name, Configured: c.configured, Version: v, Source: sec.Source}
			switch sec.Source {
			case SourceLive:
				st.Connected = true
				st.Message = "Connected successfully"
			case SourceDemo:
				st.Message = "Serving demo data"
			default:
				st.Message = sec.Error
			}
			out[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
