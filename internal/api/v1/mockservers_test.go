package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// SABnzbdMock provides a configurable mock SABnzbd server with realistic behavior.
// It validates API keys, checks HTTP methods, and returns appropriate error responses.
type SABnzbdMock struct {
	t *testing.T

	// Configuration
	APIKey  string           // Expected API key (empty = no validation)
	Queue   []map[string]any // queue slots
	History []map[string]any // history slots
	Paused  bool

	// Tracking
	mu       sync.Mutex
	Requests []SABnzbdRequest // All requests received
}

// SABnzbdRequest captures details of a request to the mock server.
type SABnzbdRequest struct {
	Method string
	Mode   string
	Name   string
	Value  string
	APIKey string
}

// NewSABnzbdMock creates a new mock SABnzbd server.
func NewSABnzbdMock(t *testing.T) *SABnzbdMock {
	t.Helper()
	return &SABnzbdMock{t: t, APIKey: "sab-key"}
}

// WithQueueSlot adds a queue entry.
func (m *SABnzbdMock) WithQueueSlot(id, filename, cat string, percentage int) *SABnzbdMock {
	m.Queue = append(m.Queue, map[string]any{
		"nzo_id":     id,
		"filename":   filename,
		"cat":        cat,
		"status":     "Downloading",
		"priority":   "Normal",
		"percentage": fmt.Sprint(percentage),
		"mb":         "1024.00",
		"mbleft":     fmt.Sprintf("%.2f", 1024*float64(100-percentage)/100),
		"timeleft":   "0:05:30",
	})
	return m
}

// WithHistorySlot adds a history entry completed at unix time completed.
func (m *SABnzbdMock) WithHistorySlot(id, name, category, status string, completed int64) *SABnzbdMock {
	m.History = append(m.History, map[string]any{
		"nzo_id":    id,
		"name":      name,
		"category":  category,
		"status":    status,
		"bytes":     1 << 30,
		"completed": completed,
		"storage":   "/downloads/" + name,
	})
	return m
}

// Build creates the httptest.Server.
func (m *SABnzbdMock) Build() *httptest.Server {
	m.t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mode := q.Get("mode")
		apiKey := q.Get("apikey")

		m.mu.Lock()
		m.Requests = append(m.Requests, SABnzbdRequest{
			Method: r.Method,
			Mode:   mode,
			Name:   q.Get("name"),
			Value:  q.Get("value"),
			APIKey: apiKey,
		})
		m.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		// SABnzbd API uses GET
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "error": "use GET"})
			return
		}

		// SABnzbd returns 200 with error in body, not 401
		if m.APIKey != "" && apiKey != m.APIKey {
			_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "error": "API Key Incorrect"})
			return
		}

		switch mode {
		case "queue":
			if q.Get("name") != "" {
				_ = json.NewEncoder(w).Encode(map[string]any{"status": true})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"queue": map[string]any{
					"paused":    m.Paused,
					"speed":     "5.2 M",
					"mbleft":    "512.00",
					"timeleft":  "0:05:30",
					"noofslots": len(m.Queue),
					"slots":     nonNil(m.Queue),
				},
			})
		case "history":
			if q.Get("name") == "delete" {
				_ = json.NewEncoder(w).Encode(map[string]any{"status": true})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"history": map[string]any{
					"noofslots": len(m.History),
					"slots":     nonNil(m.History),
				},
			})
		case "version":
			_ = json.NewEncoder(w).Encode(map[string]any{"version": "4.3.2"})
		case "pause", "resume", "retry":
			_ = json.NewEncoder(w).Encode(map[string]any{"status": true})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"status": false, "error": "Unknown mode: " + mode})
		}
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

// Modes returns the modes requested so far.
func (m *SABnzbdMock) Modes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Requests))
	for i, r := range m.Requests {
		out[i] = r.Mode
	}
	return out
}

// AssertAPIKeyChecked verifies that all requests had the correct API key.
func (m *SABnzbdMock) AssertAPIKeyChecked(t *testing.T) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, req := range m.Requests {
		if req.APIKey != m.APIKey {
			t.Errorf("request %d: expected API key %q, got %q", i, m.APIKey, req.APIKey)
		}
	}
}

// ArrMock provides a mock Sonarr or Radarr v3 API. Requests must carry the
// X-Api-Key header.
type ArrMock struct {
	t *testing.T

	APIKey   string
	Resource string           // "series" or "movie"
	Records  []map[string]any // library
	Lookup   []map[string]any // lookup results
	Calendar []map[string]any
}

// NewArrMock creates a mock for resource ("series" or "movie").
func NewArrMock(t *testing.T, resource string) *ArrMock {
	t.Helper()
	return &ArrMock{t: t, APIKey: "arr-key", Resource: resource}
}

// WithRecord adds a library record with a poster image.
func (m *ArrMock) WithRecord(id int, title string, year int, added string) *ArrMock {
	m.Records = append(m.Records, map[string]any{
		"id":    id,
		"title": title,
		"year":  year,
		"added": added,
		"images": []map[string]any{
			{"coverType": "poster", "remoteUrl": fmt.Sprintf("https://img.example/%d.jpg", id)},
		},
	})
	return m
}

// Build creates the httptest.Server.
func (m *ArrMock) Build() *httptest.Server {
	m.t.Helper()

	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("GET /api/v3/"+m.Resource, func(w http.ResponseWriter, _ *http.Request) {
		write(w, nonNil(m.Records))
	})
	mux.HandleFunc("GET /api/v3/"+m.Resource+"/lookup", func(w http.ResponseWriter, _ *http.Request) {
		write(w, nonNil(m.Lookup))
	})
	mux.HandleFunc("GET /api/v3/calendar", func(w http.ResponseWriter, _ *http.Request) {
		write(w, nonNil(m.Calendar))
	})
	mux.HandleFunc("GET /api/v3/system/status", func(w http.ResponseWriter, _ *http.Request) {
		write(w, map[string]any{"version": "4.0.0"})
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != m.APIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}
		mux.ServeHTTP(w, r)
	}))
	m.t.Cleanup(srv.Close)
	return srv
}

func nonNil(v []map[string]any) []map[string]any {
	if v == nil {
		return []map[string]any{}
	}
	return v
}
