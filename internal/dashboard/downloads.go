package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdash/internal/apiclient"
	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/internal/library"
	"github.com/vmunix/arrdash/internal/reconcile"
	"github.com/vmunix/arrdash/pkg/release"
)

// RecentView is the ranked list of recently completed downloads.
type RecentView struct {
	Items   []reconcile.Download `json:"items"`
	Sources Sections             `json:"sources"`
}

// QueueView is the download queue with parsed identities.
type QueueView struct {
	Items         []reconcile.QueueItem `json:"items"`
	Paused        bool                  `json:"paused"`
	Speed         int64                 `json:"speed"` // bytes/s
	SizeLeftBytes int64                 `json:"size_left_bytes"`
	TimeLeft      time.Duration         `json:"time_left"`
	Total         int                   `json:"total"`
	Section
}

// HistoryView is one page of download history.
type HistoryView struct {
	reconcile.Page[reconcile.Download]
	Sources Sections `json:"sources"`
}

// libraries fetches both library snapshots for annotation.
type libraries struct {
	series, movies       *library.Index
	seriesSec, moviesSec Section
}

func (s *Service) fetchLibraries(ctx context.Context, g *errgroup.Group, out *libraries) {
	g.Go(func() error {
		recs, sec, err := s.fetchLibrary(ctx, release.KindSeries)
		out.series, out.seriesSec = library.NewIndex(recs), sec
		return err
	})
	g.Go(func() error {
		recs, sec, err := s.fetchLibrary(ctx, release.KindMovie)
		out.movies, out.moviesSec = library.NewIndex(recs), sec
		return err
	})
}

func (s *Service) fetchLibrary(ctx context.Context, kind release.Kind) ([]library.Record, Section, error) {
	src, name, err := s.librarySource(kind)
	if err != nil {
		return nil, Section{}, err
	}
	return fetch(ctx, s, name, libraryConfigured(src),
		func(ctx context.Context) ([]library.Record, error) { return src.List(ctx) },
		func() []library.Record { return s.demo.SampleLibrary(kind) },
	)
}

// RecentDownloads returns up to limit recently completed downloads of kind,
// newest first. KindUnknown returns every kind. A zero limit uses the
// configured default.
func (s *Service) RecentDownloads(ctx context.Context, kind release.Kind, limit int) (RecentView, error) {
	if limit == 0 {
		limit = s.opts.RecentLimit
	}
	if limit < 0 {
		return RecentView{}, ErrInvalidLimit
	}

	var (
		hist    download.HistoryPage
		histSec Section
		libs    libraries
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hist, histSec, err = fetch(gctx, s, downloadService, downloadsConfigured(s.src.Downloads),
			func(ctx context.Context) (download.HistoryPage, error) {
				return s.src.Downloads.History(ctx, 0, s.opts.RecentWindow)
			},
			func() download.HistoryPage { return s.demo.SampleHistory(s.opts.RecentWindow) },
		)
		return err
	})
	s.fetchLibraries(gctx, g, &libs)
	if err := g.Wait(); err != nil {
		return RecentView{}, err
	}

	items := reconcile.Reconcile(hist.Slots, libs.series, libs.movies)
	if kind != release.KindUnknown {
		items = lo.Filter(items, func(d reconcile.Download, _ int) bool {
			return d.Identity.Kind == kind
		})
	}

	return RecentView{
		Items: reconcile.Rank(items, limit),
		Sources: Sections{
			downloadService: histSec,
			seriesService:   libs.seriesSec,
			moviesService:   libs.moviesSec,
		},
	}, nil
}

// Queue returns the active download queue.
func (s *Service) Queue(ctx context.Context) (QueueView, error) {
	q, sec, err := fetch(ctx, s, downloadService, downloadsConfigured(s.src.Downloads),
		func(ctx context.Context) (download.Queue, error) { return s.src.Downloads.Queue(ctx) },
		s.demo.SampleQueue,
	)
	if err != nil {
		return QueueView{}, err
	}
	return QueueView{
		Items:         reconcile.AnnotateQueue(q.Slots),
		Paused:        q.Paused,
		Speed:         q.Speed,
		SizeLeftBytes: q.SizeLeftBytes,
		TimeLeft:      q.TimeLeft,
		Total:         q.Total,
		Section:       sec,
	}, nil
}

// History returns one page of download history, matched against both
// libraries. Page numbers start at 1; a zero pageSize uses the configured
// default.
func (s *Service) History(ctx context.Context, page, pageSize int) (HistoryView, error) {
	if pageSize == 0 {
		pageSize = s.opts.HistoryPageSize
	}
	if pageSize < 0 {
		return HistoryView{}, ErrInvalidLimit
	}
	page = max(page, 1)

	var (
		hist    download.HistoryPage
		histSec Section
		libs    libraries
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hist, histSec, err = fetch(gctx, s, downloadService, downloadsConfigured(s.src.Downloads),
			func(ctx context.Context) (download.HistoryPage, error) {
				return s.src.Downloads.History(ctx, reconcile.Offset(page, pageSize), pageSize)
			},
			func() download.HistoryPage { return s.demo.SampleHistory(0) },
		)
		return err
	})
	s.fetchLibraries(gctx, g, &libs)
	if err := g.Wait(); err != nil {
		return HistoryView{}, err
	}

	items := reconcile.Annotate(hist.Slots, libs.series, libs.movies)
	var p reconcile.Page[reconcile.Download]
	if histSec.Source == SourceDemo {
		p = reconcile.Paginate(items, page, pageSize)
	} else {
		p = reconcile.NewPage(items, page, pageSize, hist.Total)
	}

	return HistoryView{
		Page: p,
		Sources: Sections{
			downloadService: histSec,
			seriesService:   libs.seriesSec,
			moviesService:   libs.moviesSec,
		},
	}, nil
}

// Action is a download manager control action.
type Action string

const (
	ActionPause         Action = "pause"
	ActionResume        Action = "resume"
	ActionPauseItem     Action = "pause_item"
	ActionResumeItem    Action = "resume_item"
	ActionDeleteItem    Action = "delete_item"
	ActionRetry         Action = "retry"
	ActionDeleteHistory Action = "delete_history"
	ActionClearHistory  Action = "clear_history"
)

// NeedsID reports whether the action targets a single item.
func (a Action) NeedsID() bool {
	switch a {
	case ActionPauseItem, ActionResumeItem, ActionDeleteItem, ActionRetry, ActionDeleteHistory:
		return true
	}
	return false
}

// QueueAction forwards a control action to the download manager. Actions
// are never served from demo data.
func (s *Service) QueueAction(ctx context.Context, action Action, id string) error {
	if !downloadsConfigured(s.src.Downloads) {
		return apiclient.ErrNotConfigured
	}
	if action.NeedsID() && id == "" {
		return fmt.Errorf("%s: %w", action, download.ErrMissingID)
	}

	d := s.src.Downloads
	var err error
	switch action {
	case ActionPause:
		err = d.Pause(ctx)
	case ActionResume:
		err = d.Resume(ctx)
	case ActionPauseItem:
		err = d.PauseItem(ctx, id)
	case ActionResumeItem:
		err = d.ResumeItem(ctx, id)
	case ActionDeleteItem:
		err = d.DeleteItem(ctx, id)
	case ActionRetry:
		err = d.Retry(ctx, id)
	case ActionDeleteHistory:
		err = d.DeleteHistoryItem(ctx, id)
	case ActionClearHistory:
		err = d.ClearHistory(ctx)
	default:
		return fmt.Errorf("%q: %w", action, ErrUnknownAction)
	}
	if err != nil {
		return err
	}
	s.log.Info("queue action", "action", action, "id", id)
	return nil
}
