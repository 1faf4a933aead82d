package release

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// Scored pairs a candidate index with its similarity to a query.
type Scored struct {
	Index int
	Score float64
}

// Similarity returns the Jaro-Winkler similarity of two titles after
// reducing both with SearchKey. The result is in [0, 1].
func Similarity(a, b string) float64 {
	ka, kb := SearchKey(a), SearchKey(b)
	if ka == "" || kb == "" {
		return 0
	}
	if ka == kb {
		return 1
	}
	return float64(edlib.JaroWinklerSimilarity(ka, kb))
}

// RankTitles scores every candidate against query and returns them ordered
// by descending similarity. Equal scores keep candidate order.
func RankTitles(query string, candidates []string) []Scored {
	out := make([]Scored, len(candidates))
	for i, c := range candidates {
		out[i] = Scored{Index: i, Score: Similarity(query, c)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
