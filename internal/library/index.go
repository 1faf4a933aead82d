package library

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/vmunix/arrdash/pkg/release"
)

// Index is a read-only lookup over one library snapshot. A nil *Index is
// valid and matches nothing.
type Index struct {
	records []Record
	folded  []string
	byID    map[int64]int
}

// NewIndex builds an index over records. Input order is kept and decides
// ties between equally good title matches.
func NewIndex(records []Record) *Index {
	idx := &Index{
		records: records,
		folded:  make([]string, len(records)),
		byID:    make(map[int64]int, len(records)),
	}
	for i, r := range records {
		idx.folded[i] = release.FoldTitle(r.Title)
		if _, dup := idx.byID[r.ID]; !dup {
			idx.byID[r.ID] = i
		}
	}
	return idx
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// Records returns the indexed records in input order.
func (idx *Index) Records() []Record {
	if idx == nil {
		return nil
	}
	return idx.records
}

// FindByID returns the record with the given ID.
func (idx *Index) FindByID(id int64) (Record, bool) {
	if idx == nil {
		return Record{}, false
	}
	i, ok := idx.byID[id]
	if !ok {
		return Record{}, false
	}
	return idx.records[i], true
}

// FindByFuzzyTitle matches candidate against indexed titles after case
// folding and trimming both. Rules are tried in order and the first rule
// with any hit decides:
//
//  1. exact equality
//  2. the indexed title is a prefix of the candidate ("The Office" for
//     "The Office US"); the longest such title wins
//  3. the candidate is a prefix of the indexed title
//
// Remaining ties go to the earliest record.
func (idx *Index) FindByFuzzyTitle(candidate string) (Record, bool) {
	if idx == nil {
		return Record{}, false
	}
	c := release.FoldTitle(candidate)
	if c == "" {
		return Record{}, false
	}

	for i, t := range idx.folded {
		if t == c {
			return idx.records[i], true
		}
	}

	best := -1
	for i, t := range idx.folded {
		if t != "" && strings.HasPrefix(c, t) && (best < 0 || len(t) > len(idx.folded[best])) {
			best = i
		}
	}
	if best >= 0 {
		return idx.records[best], true
	}

	for i, t := range idx.folded {
		if strings.HasPrefix(t, c) {
			return idx.records[i], true
		}
	}
	return Record{}, false
}

// Search returns records whose title fuzzily contains term, best first.
// An empty term returns nothing.
func (idx *Index) Search(term string) []Record {
	if idx == nil {
		return nil
	}
	key := release.SearchKey(term)
	if key == "" {
		return nil
	}

	type hit struct {
		rec   Record
		score float64
	}
	var hits []hit
	for _, r := range idx.records {
		title := release.SearchKey(r.Title)
		if !fuzzy.Match(key, title) && !strings.Contains(title, key) {
			continue
		}
		hits = append(hits, hit{rec: r, score: release.Similarity(term, r.Title)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	out := make([]Record, len(hits))
	for i, h := range hits {
		out[i] = h.rec
	}
	return out
}
