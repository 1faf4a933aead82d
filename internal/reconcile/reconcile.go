// Package reconcile matches download names against library snapshots,
// collapses repeat downloads of the same title and ranks the result.
package reconcile

import (
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/internal/library"
	"github.com/vmunix/arrdash/pkg/release"
)

// Download is a history slot annotated with its parsed identity and, when
// found, the library record it belongs to. When Match is present
// Identity.Title equals the record title.
type Download struct {
	Slot         download.HistorySlot      `json:"slot"`
	Identity     release.Identity          `json:"identity"`
	Match        mo.Option[library.Record] `json:"match"`
	EpisodeCount int                       `json:"episode_count"`
}

// PosterURL returns the matched record's poster, if any.
func (d Download) PosterURL() string {
	if rec, ok := d.Match.Get(); ok {
		return rec.PosterURL
	}
	return ""
}

// QueueItem is a queue slot with its parsed identity. Queue items are not
// matched against the library.
type QueueItem struct {
	Slot     download.QueueSlot `json:"slot"`
	Identity release.Identity   `json:"identity"`
}

// Reconcile turns completed history slots into display entries.
//
// Slots whose status is not Completed are dropped. Each remaining slot is
// parsed and looked up in the index for its kind. Slots that parsed with a
// season (series) or year (movie) are grouped by kind and case-folded
// title; a group keeps the slot with the latest completion time, the
// earlier slot winning ties. Series groups count their members in
// EpisodeCount, movie groups count 1. Slots that did not parse pass through
// on their own. Groups keep the position of their first slot.
func Reconcile(slots []download.HistorySlot, series, movies *library.Index) []Download {
	completed := lo.Filter(slots, func(s download.HistorySlot, _ int) bool {
		return s.Completed()
	})

	out := make([]Download, 0, len(completed))
	groups := make(map[groupKey]int)
	for _, s := range completed {
		d := annotate(s, series, movies)
		if !d.Identity.Parsed() {
			out = append(out, d)
			continue
		}

		key := groupKey{kind: d.Identity.Kind, title: release.FoldTitle(d.Identity.Title)}
		i, seen := groups[key]
		if !seen {
			groups[key] = len(out)
			out = append(out, d)
			continue
		}

		count := out[i].EpisodeCount
		if d.Identity.Kind == release.KindSeries {
			count++
		}
		if d.Slot.CompletedAt.After(out[i].Slot.CompletedAt) {
			out[i] = d
		}
		out[i].EpisodeCount = count
	}
	return out
}

// Annotate parses and matches every slot without filtering or merging.
func Annotate(slots []download.HistorySlot, series, movies *library.Index) []Download {
	return lo.Map(slots, func(s download.HistorySlot, _ int) Download {
		return annotate(s, series, movies)
	})
}

// AnnotateQueue parses queue slots. No library matching is done.
func AnnotateQueue(slots []download.QueueSlot) []QueueItem {
	return lo.Map(slots, func(s download.QueueSlot, _ int) QueueItem {
		return QueueItem{Slot: s, Identity: release.Parse(s.Name, s.Category)}
	})
}

type groupKey struct {
	kind  release.Kind
	title string
}

func annotate(s download.HistorySlot, series, movies *library.Index) Download {
	d := Download{
		Slot:         s,
		Identity:     release.Parse(s.Name, s.Category),
		EpisodeCount: 1,
	}

	var idx *library.Index
	switch d.Identity.Kind {
	case release.KindSeries:
		idx = series
	case release.KindMovie:
		idx = movies
	default:
		return d
	}

	if rec, ok := idx.FindByFuzzyTitle(d.Identity.Title); ok {
		d.Match = mo.Some(rec)
		d.Identity.Title = rec.Title
	}
	return d
}
