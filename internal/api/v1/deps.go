package v1

import (
	"context"
	"errors"

	"github.com/vmunix/arrdash/internal/dashboard"
	"github.com/vmunix/arrdash/pkg/release"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Dashboard defines the views served by the API.
type Dashboard interface {
	RecentDownloads(ctx context.Context, kind release.Kind, limit int) (dashboard.RecentView, error)
	Queue(ctx context.Context) (dashboard.QueueView, error)
	History(ctx context.Context, page, pageSize int) (dashboard.HistoryView, error)
	Library(ctx context.Context, kind release.Kind) (dashboard.LibraryView, error)
	Details(ctx context.Context, kind release.Kind, id int64) (dashboard.DetailsView, error)
	Search(ctx context.Context, kind release.Kind, term string) (dashboard.SearchView, error)
	Upcoming(ctx context.Context) (dashboard.UpcomingView, error)
	Status(ctx context.Context) ([]dashboard.ServiceStatus, error)
	QueueAction(ctx context.Context, action dashboard.Action, id string) error
	DemoActive() bool
}

var _ Dashboard = (*dashboard.Service)(nil)

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Dashboard Dashboard
	Version   string // reported by GET /api/v1/status
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Dashboard == nil {
		return errors.New("dashboard is required")
	}
	return nil
}
