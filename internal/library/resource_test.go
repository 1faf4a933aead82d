package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectImage(t *testing.T) {
	images := []imageResource{
		{CoverType: "banner", URL: "/banner.jpg"},
		{CoverType: "Poster", URL: "/poster.jpg", RemoteURL: "https://remote/poster.jpg"},
	}

	tests := []struct {
		name      string
		images    []imageResource
		coverType string
		want      string
	}{
		{"remote preferred", images, "poster", "https://remote/poster.jpg"},
		{"local url when no remote", images, "banner", "/banner.jpg"},
		{"falls back to poster", images, "fanart", "https://remote/poster.jpg"},
		{"no images", nil, "poster", ""},
		{"poster missing", []imageResource{{CoverType: "banner", URL: "/b.jpg"}}, "poster", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectImage(tt.images, tt.coverType))
		})
	}
}

func TestParseTime(t *testing.T) {
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), parseTime("2024-05-06T07:08:09Z"))
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), parseTime("2024-05-06"))
	assert.True(t, parseTime("").IsZero())
	assert.True(t, parseTime("yesterday").IsZero())
}

func TestToRecord_Validation(t *testing.T) {
	_, err := toRecord(0, mediaResource{ID: 0, Title: "x"}, true)
	assert.ErrorIs(t, err, errMissingID)

	_, err = toRecord(0, mediaResource{ID: 1, Title: ""}, true)
	assert.ErrorIs(t, err, errMissingTitle)

	rec, err := toRecord(0, mediaResource{ID: -4, Title: " Lookup Only "}, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rec.ID)
	assert.Equal(t, "Lookup Only", rec.Title)
}
