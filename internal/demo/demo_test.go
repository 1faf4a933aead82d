package demo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/internal/library"
	"github.com/vmunix/arrdash/internal/reconcile"
	"github.com/vmunix/arrdash/pkg/release"
)

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func TestProvider_IsActive(t *testing.T) {
	assert.True(t, New(true).IsActive())
	assert.False(t, New(false).IsActive())

	var p *Provider
	assert.False(t, p.IsActive())
	assert.False(t, p.ShouldFallback(errors.New("boom")))
}

func TestProvider_ShouldFallback(t *testing.T) {
	failure := errors.New("connection refused")

	assert.True(t, New(true).ShouldFallback(failure))
	assert.False(t, New(true).ShouldFallback(nil), "success is never replaced")
	assert.False(t, New(false).ShouldFallback(failure))
}

func TestProvider_StableWithinHour(t *testing.T) {
	a := New(true, fixedClock(time.Date(2025, 6, 1, 14, 5, 0, 0, time.UTC)))
	b := New(true, fixedClock(time.Date(2025, 6, 1, 14, 55, 0, 0, time.UTC)))
	c := New(true, fixedClock(time.Date(2025, 6, 2, 14, 5, 0, 0, time.UTC)))

	assert.Equal(t, a.SampleHistory(0), b.SampleHistory(0))
	assert.Equal(t, a.SampleLibrary(release.KindSeries), b.SampleLibrary(release.KindSeries))
	assert.Equal(t, a.SampleQueue(), b.SampleQueue())
	assert.NotEqual(t, a.SampleHistory(0), c.SampleHistory(0))
}

func TestProvider_SampleLibrary(t *testing.T) {
	p := New(true, fixedClock(time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)))

	for _, kind := range []release.Kind{release.KindSeries, release.KindMovie} {
		recs := p.SampleLibrary(kind)
		require.NotEmpty(t, recs)
		for i, r := range recs {
			assert.Equal(t, kind, r.Kind)
			assert.Positive(t, r.ID)
			assert.NotEmpty(t, r.Title)
			assert.NotEmpty(t, r.PosterURL)
			if i > 0 {
				assert.False(t, r.AddedAt.After(recs[i-1].AddedAt), "sorted by added, newest first")
			}
		}
	}
	assert.Empty(t, p.SampleLibrary(release.KindUnknown))
}

func TestProvider_SampleQueue(t *testing.T) {
	q := New(true).SampleQueue()

	require.Len(t, q.Slots, 3)
	assert.Equal(t, 3, q.Total)
	assert.Equal(t, download.StateDownloading, q.Slots[0].State)
	assert.Equal(t, download.StatePaused, q.Slots[2].State)

	var left int64
	for _, s := range q.Slots {
		left += s.SizeLeftBytes
	}
	assert.Equal(t, left, q.SizeLeftBytes)
}

func TestProvider_SampleHistory(t *testing.T) {
	p := New(true, fixedClock(time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)))

	all := p.SampleHistory(0)
	assert.Equal(t, len(all.Slots), all.Total)

	some := p.SampleHistory(4)
	require.Len(t, some.Slots, 4)
	assert.Equal(t, all.Total, some.Total)
	assert.Equal(t, all.Slots[:4], some.Slots)

	for i := 1; i < len(all.Slots); i++ {
		assert.True(t, all.Slots[i].CompletedAt.Before(all.Slots[i-1].CompletedAt))
	}
}

func TestProvider_SampleHistoryReconciles(t *testing.T) {
	p := New(true, fixedClock(time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)))
	series := library.NewIndex(p.SampleLibrary(release.KindSeries))
	movies := library.NewIndex(p.SampleLibrary(release.KindMovie))

	got := reconcile.Reconcile(p.SampleHistory(0).Slots, series, movies)

	byTitle := make(map[string]reconcile.Download)
	for _, d := range got {
		byTitle[d.Identity.Title] = d
	}
	require.Contains(t, byTitle, "Severance")
	assert.Equal(t, 3, byTitle["Severance"].EpisodeCount)
	require.Contains(t, byTitle, "The Office")
	assert.Equal(t, 2, byTitle["The Office"].EpisodeCount)
	assert.True(t, byTitle["Oppenheimer"].Match.IsPresent())
	assert.NotContains(t, byTitle, "Civil War", "failed downloads are dropped")
	assert.Contains(t, byTitle, "ubuntu-24.04-desktop-amd64")
}

func TestProvider_SampleUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	p := New(true, fixedClock(now))

	movies := p.SampleUpcomingMovies()
	require.NotEmpty(t, movies)
	for _, m := range movies {
		assert.True(t, m.ReleaseDate.After(now))
	}

	eps := p.SampleCalendar()
	require.NotEmpty(t, eps)
	for _, e := range eps {
		assert.True(t, e.AirDate.After(now))
		assert.True(t, e.AirDate.Before(now.AddDate(0, 0, 8)))
		assert.NotEmpty(t, e.SeriesTitle)
	}
}
