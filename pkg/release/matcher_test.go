package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("The Matrix", "matrix"), 0.0001)
	assert.InDelta(t, 0.0, Similarity("", "matrix"), 0.0001)
	assert.Greater(t, Similarity("breaking bad", "Breaking Badd"), Similarity("breaking bad", "Better Call Saul"))
}

func TestRankTitles(t *testing.T) {
	candidates := []string{"Better Call Saul", "Breaking Bad", "El Camino: A Breaking Bad Movie"}

	ranked := RankTitles("breaking bad", candidates)

	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Index)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.0001)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i].Score, ranked[i-1].Score)
	}
}

func TestRankTitles_StableOnTies(t *testing.T) {
	ranked := RankTitles("dune", []string{"Dune", "dune", "DUNE"})

	require.Len(t, ranked, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{ranked[0].Index, ranked[1].Index, ranked[2].Index})
}

func TestRankTitles_Empty(t *testing.T) {
	assert.Empty(t, RankTitles("anything", nil))
}
