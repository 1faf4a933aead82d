package dashboard

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=mocks/sources.go -package=mocks github.com/vmunix/arrdash/internal/dashboard LibrarySource,DownloadSource

import (
	"context"
	"time"

	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/internal/library"
)

// LibrarySource is a series or movie manager.
type LibrarySource interface {
	Configured() bool
	List(ctx context.Context) ([]library.Record, error)
	Lookup(ctx context.Context, term string) ([]library.Record, error)
	Episodes(ctx context.Context, seriesID int64) ([]library.Episode, error)
	Calendar(ctx context.Context, from, to time.Time, shows *library.Index) ([]library.Episode, error)
	Version(ctx context.Context) (string, error)
}

// DownloadSource is the download manager.
type DownloadSource interface {
	Configured() bool
	Queue(ctx context.Context) (download.Queue, error)
	History(ctx context.Context, start, limit int) (download.HistoryPage, error)
	Version(ctx context.Context) (string, error)
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	PauseItem(ctx context.Context, nzoID string) error
	ResumeItem(ctx context.Context, nzoID string) error
	DeleteItem(ctx context.Context, nzoID string) error
	DeleteHistoryItem(ctx context.Context, nzoID string) error
	Retry(ctx context.Context, nzoID string) error
	ClearHistory(ctx context.Context) error
}

// Compile-time interface checks.
var (
	_ LibrarySource  = (*library.Client)(nil)
	_ DownloadSource = (*download.Client)(nil)
)

// Sources groups the upstream services. A nil source is treated as not
// configured.
type Sources struct {
	Series    LibrarySource
	Movies    LibrarySource
	Downloads DownloadSource
}
