package download

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrdash/internal/apiclient"
)

// writeJSON is a helper that writes a JSON response, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode JSON response: %v", err)
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	ep := apiclient.Endpoint{Kind: apiclient.DownloadManager, BaseURL: srv.URL, APIKey: "test-key"}
	return NewClient(apiclient.New(), ep, nil)
}

func TestClient_Queue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, "queue", r.URL.Query().Get("mode"))
		assert.Equal(t, "json", r.URL.Query().Get("output"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		writeJSON(t, w, map[string]any{
			"queue": map[string]any{
				"paused":    false,
				"speed":     "5.0 M",
				"mbleft":    "512",
				"timeleft":  "0:10:00",
				"noofslots": 2,
				"slots": []map[string]any{
					{
						"nzo_id": "SABnzbd_nzo_1", "filename": "Severance.S02E01.1080p", "cat": "tv",
						"status": "Downloading", "percentage": "45", "mb": "1024", "mbleft": "563.2", "timeleft": "0:05:30",
					},
					{"nzo_id": "SABnzbd_nzo_2", "filename": "Dune.2021.2160p", "cat": "movies", "status": "Paused", "percentage": "0"},
				},
			},
		})
	})

	q, err := c.Queue(context.Background())
	require.NoError(t, err)
	require.Len(t, q.Slots, 2)

	assert.False(t, q.Paused)
	assert.Equal(t, int64(5*1024*1024), q.Speed)
	assert.Equal(t, int64(512*1024*1024), q.SizeLeftBytes)
	assert.Equal(t, 10*time.Minute, q.TimeLeft)
	assert.Equal(t, 2, q.Total)

	s := q.Slots[0]
	assert.Equal(t, "SABnzbd_nzo_1", s.ID)
	assert.Equal(t, "Severance.S02E01.1080p", s.Name)
	assert.Equal(t, "tv", s.Category)
	assert.Equal(t, StateDownloading, s.State)
	assert.InDelta(t, 45.0, s.Progress, 0.001)
	assert.Equal(t, int64(1024*1024*1024), s.SizeBytes)
	assert.Equal(t, 5*time.Minute+30*time.Second, s.TimeLeft)

	assert.Equal(t, StatePaused, q.Slots[1].State)
}

func TestClient_QueueInvalidKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"status": false, "error": "API Key Incorrect"})
	})

	_, err := c.Queue(context.Background())
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestClient_QueueUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ep := apiclient.Endpoint{Kind: apiclient.DownloadManager, BaseURL: srv.URL, APIKey: "k"}
	srv.Close()

	_, err := NewClient(apiclient.New(), ep, nil).Queue(context.Background())
	require.Error(t, err)
	assert.True(t, apiclient.IsKind(err, apiclient.KindNetwork))
}

func TestClient_History(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "history", r.URL.Query().Get("mode"))
		assert.Equal(t, "10", r.URL.Query().Get("start"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		writeJSON(t, w, map[string]any{
			"history": map[string]any{
				"noofslots": 42,
				"slots": []map[string]any{
					{
						"nzo_id": "SABnzbd_nzo_9", "name": "Andor.S01E03.1080p", "category": "tv", "status": "Completed",
						"bytes": 1500000000, "completed": 1717236000, "storage": "/downloads/complete/Andor.S01E03",
					},
					{"nzo_id": "SABnzbd_nzo_8", "name": "Broken.Release", "category": "movies", "status": "Failed", "fail_message": "Unpacking failed"},
				},
			},
		})
	})

	page, err := c.History(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 42, page.Total)
	require.Len(t, page.Slots, 2)

	done := page.Slots[0]
	assert.True(t, done.Completed())
	assert.Equal(t, StateCompleted, done.State)
	assert.Equal(t, int64(1500000000), done.SizeBytes)
	assert.Equal(t, time.Unix(1717236000, 0).UTC(), done.CompletedAt)
	assert.Equal(t, "tv", done.Category)

	failed := page.Slots[1]
	assert.False(t, failed.Completed())
	assert.Equal(t, StateFailed, failed.State)
	assert.Equal(t, "Unpacking failed", failed.FailMessage)
	assert.True(t, failed.CompletedAt.IsZero())
}

func TestClient_HistoryNoLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("start"))
		assert.False(t, r.URL.Query().Has("limit"))
		writeJSON(t, w, map[string]any{"history": map[string]any{"noofslots": 0, "slots": []any{}}})
	})

	page, err := c.History(context.Background(), -3, 0)
	require.NoError(t, err)
	assert.Empty(t, page.Slots)
	assert.NotNil(t, page.Slots)
}

func TestClient_Version(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "version", r.URL.Query().Get("mode"))
		writeJSON(t, w, map[string]any{"version": "4.3.2"})
	})

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4.3.2", v)
}

func TestClient_Actions(t *testing.T) {
	tests := []struct {
		name  string
		call  func(*Client) error
		query map[string]string
	}{
		{"pause queue", func(c *Client) error { return c.Pause(context.Background()) }, map[string]string{"mode": "pause"}},
		{"resume queue", func(c *Client) error { return c.Resume(context.Background()) }, map[string]string{"mode": "resume"}},
		{"pause item", func(c *Client) error { return c.PauseItem(context.Background(), "nzo_1") },
			map[string]string{"mode": "queue", "name": "pause", "value": "nzo_1"}},
		{"resume item", func(c *Client) error { return c.ResumeItem(context.Background(), "nzo_1") },
			map[string]string{"mode": "queue", "name": "resume", "value": "nzo_1"}},
		{"delete item", func(c *Client) error { return c.DeleteItem(context.Background(), "nzo_1") },
			map[string]string{"mode": "queue", "name": "delete", "value": "nzo_1"}},
		{"delete history item", func(c *Client) error { return c.DeleteHistoryItem(context.Background(), "nzo_2") },
			map[string]string{"mode": "history", "name": "delete", "value": "nzo_2"}},
		{"clear history", func(c *Client) error { return c.ClearHistory(context.Background()) },
			map[string]string{"mode": "history", "name": "delete", "value": "all"}},
		{"retry", func(c *Client) error { return c.Retry(context.Background(), "nzo_3") },
			map[string]string{"mode": "retry", "value": "nzo_3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.query {
					assert.Equal(t, v, r.URL.Query().Get(k), k)
				}
				writeJSON(t, w, map[string]any{"status": true})
			})
			assert.NoError(t, tt.call(c))
		})
	}
}

func TestClient_ActionFailed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"status": false})
	})

	err := c.Pause(context.Background())
	assert.ErrorIs(t, err, ErrActionFailed)
}

func TestClient_ItemActionMissingID(t *testing.T) {
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) {
		t.Error("unexpected request")
	})

	assert.ErrorIs(t, c.DeleteItem(context.Background(), " "), ErrMissingID)
	assert.ErrorIs(t, c.Retry(context.Background(), ""), ErrMissingID)
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"5.5 M", 5767168},
		{"1.5 K", 1536},
		{"500 B", 500},
		{"1 G", 1024 * 1024 * 1024},
		{"", 0},
		{"fast", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSpeed(tt.in))
		})
	}
}

func TestParseTimeLeft(t *testing.T) {
	assert.Equal(t, 5*time.Minute+30*time.Second, parseTimeLeft("0:05:30"))
	assert.Equal(t, 26*time.Hour, parseTimeLeft("1:02:00:00"))
	assert.Equal(t, time.Duration(0), parseTimeLeft("unknown"))
}

func TestStateMapping(t *testing.T) {
	assert.Equal(t, StateQueued, QueueState("Queued"))
	assert.Equal(t, StateProcessing, QueueState("Extracting"))
	assert.Equal(t, StateDownloading, QueueState("Grabbing"))
	assert.Equal(t, StateCompleted, HistoryState("Completed"))
	assert.Equal(t, StateFailed, HistoryState("Failed"))
	assert.Equal(t, StateProcessing, HistoryState("Repairing"))
}
