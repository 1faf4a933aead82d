package main

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdash/internal/download"
)

type fakeHistory struct {
	slots []download.HistorySlot
	calls []int
	err   error
}

func (f *fakeHistory) History(_ context.Context, start, limit int) (download.HistoryPage, error) {
	f.calls = append(f.calls, start)
	if f.err != nil {
		return download.HistoryPage{}, f.err
	}
	end := min(start+limit, len(f.slots))
	if start > end {
		start = end
	}
	return download.HistoryPage{Slots: f.slots[start:end], Total: len(f.slots)}, nil
}

func TestCollect(t *testing.T) {
	src := &fakeHistory{slots: []download.HistorySlot{
		{Name: "Severance.S02E01.1080p", Category: "tv", SizeBytes: 100},
		{Name: "Oppenheimer.2023.1080p", Category: "movies", SizeBytes: 200},
		{Name: "Severance.S02E01.1080p", Category: "tv", SizeBytes: 100},
		{Name: "random.file", Category: "", SizeBytes: 1},
		{Name: "Severance.S02E02.1080p", Category: "tv", SizeBytes: 100},
	}}

	records, err := collect(context.Background(), src, 10, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, src.calls)
	require.Len(t, records, 4)
	assert.Equal(t, "Severance", records[0].Identity.Title)
	assert.True(t, records[1].Identity.Parsed())
	assert.False(t, records[2].Identity.Parsed())
}

func TestCollect_PageLimit(t *testing.T) {
	src := &fakeHistory{slots: make([]download.HistorySlot, 10)}
	for i := range src.slots {
		src.slots[i].Name = string(rune('a' + i))
	}

	records, err := collect(context.Background(), src, 2, 3)
	require.NoError(t, err)
	assert.Len(t, records, 6)
	assert.Equal(t, []int{0, 3}, src.calls)
}

func TestCollect_FirstPageError(t *testing.T) {
	src := &fakeHistory{err: errors.New("connection refused")}
	_, err := collect(context.Background(), src, 3, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWriteCSV(t *testing.T) {
	src := &fakeHistory{slots: []download.HistorySlot{
		{Name: "Severance.S02E01.1080p", Category: "tv", SizeBytes: 1024},
		{Name: "Oppenheimer.2023.1080p", Category: "movies", SizeBytes: 2048},
	}}
	records, err := collect(context.Background(), src, 1, 10)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, writeCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"name", "category", "size", "kind", "title", "season", "episode", "year", "parsed"}, rows[0])
	assert.Equal(t, []string{"Severance.S02E01.1080p", "tv", "1024", "series", "Severance", "2", "1", "", "true"}, rows[1])
	assert.Equal(t, []string{"Oppenheimer.2023.1080p", "movies", "2048", "movie", "Oppenheimer", "", "", "2023", "true"}, rows[2])
}
