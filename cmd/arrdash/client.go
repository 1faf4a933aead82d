package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the arrdash server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new arrdash API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) send(method, path string, result any) error {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return serverError(resp)
	}

	if result != nil && resp.StatusCode == http.StatusOK {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// serverError reports a non-success response, preferring the API's error
// message over the raw body.
func serverError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var e ErrorResponse
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return fmt.Errorf("server error %d: %s (%s)", resp.StatusCode, e.Error, e.Code)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
}

// API response types (mirror server types)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Section reports where a block of data came from.
type Section struct {
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

type Identity struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Season  *int   `json:"season"`
	Episode *int   `json:"episode"`
	Year    *int   `json:"year"`
}

type Record struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Year        *int      `json:"year"`
	Overview    string    `json:"overview,omitempty"`
	Status      string    `json:"status,omitempty"`
	Network     string    `json:"network,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	ExternalID  int64     `json:"external_id,omitempty"`
	Runtime     int       `json:"runtime,omitempty"`
	SizeOnDisk  int64     `json:"size_on_disk,omitempty"`
	Monitored   bool      `json:"monitored"`
	AddedAt     time.Time `json:"added_at"`
	ReleaseDate time.Time `json:"release_date"`
}

type Episode struct {
	ID          int64     `json:"id"`
	SeriesID    int64     `json:"series_id"`
	SeriesTitle string    `json:"series_title"`
	Season      int       `json:"season"`
	Number      int       `json:"episode"`
	Title       string    `json:"title"`
	AirDate     time.Time `json:"air_date"`
	HasFile     bool      `json:"has_file"`
}

type HistorySlot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	SizeBytes   int64     `json:"size_bytes"`
	CompletedAt time.Time `json:"completed_at"`
	FailMessage string    `json:"fail_message,omitempty"`
}

type DownloadResponse struct {
	Slot         HistorySlot `json:"slot"`
	Identity     Identity    `json:"identity"`
	Match        *Record     `json:"match"`
	EpisodeCount int         `json:"episode_count"`
}

type RecentResponse struct {
	Items   []DownloadResponse `json:"items"`
	Sources map[string]Section `json:"sources"`
}

type QueueSlot struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Status        string        `json:"status"`
	Progress      float64       `json:"progress"`
	SizeBytes     int64         `json:"size_bytes"`
	SizeLeftBytes int64         `json:"size_left_bytes"`
	TimeLeft      time.Duration `json:"time_left"`
}

type QueueItem struct {
	Slot     QueueSlot `json:"slot"`
	Identity Identity  `json:"identity"`
}

type QueueResponse struct {
	Items         []QueueItem   `json:"items"`
	Paused        bool          `json:"paused"`
	Speed         int64         `json:"speed"`
	SizeLeftBytes int64         `json:"size_left_bytes"`
	TimeLeft      time.Duration `json:"time_left"`
	Total         int           `json:"total"`
	Section
}

type HistoryResponse struct {
	Items      []DownloadResponse `json:"items"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalItems int                `json:"total_items"`
	TotalPages int                `json:"total_pages"`
	Sources    map[string]Section `json:"sources"`
}

type LibraryResponse struct {
	Kind    string   `json:"kind"`
	Records []Record `json:"records"`
	Section
}

type DetailsResponse struct {
	Record   Record    `json:"record"`
	Episodes []Episode `json:"episodes,omitempty"`
	Section
}

type SearchResponse struct {
	Term      string             `json:"term"`
	Library   []Record           `json:"library"`
	Available []Record           `json:"available"`
	Sources   map[string]Section `json:"sources"`
}

type UpcomingResponse struct {
	Episodes []Episode          `json:"episodes"`
	Movies   []Record           `json:"movies"`
	Sources  map[string]Section `json:"sources"`
}

type ServiceStatus struct {
	Service    string `json:"service"`
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Version    string `json:"version,omitempty"`
	Message    string `json:"message"`
	Source     string `json:"source"`
}

type StatusResponse struct {
	Status   string          `json:"status"`
	Version  string          `json:"version"`
	Demo     bool            `json:"demo"`
	Services []ServiceStatus `json:"services"`
}

type ActionResponse struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Recent(kind string, limit int) (*RecentResponse, error) {
	params := url.Values{}
	if kind != "" {
		params.Set("kind", kind)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp RecentResponse
	if err := c.get(withQuery("/api/v1/recent", params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Queue() (*QueueResponse, error) {
	var resp QueueResponse
	if err := c.get("/api/v1/queue", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QueueControl pauses or resumes the whole queue.
func (c *Client) QueueControl(action string) error {
	return c.send(http.MethodPost, "/api/v1/queue/"+url.PathEscape(action), nil)
}

// ItemControl pauses or resumes one queue entry.
func (c *Client) ItemControl(id, action string) error {
	return c.send(http.MethodPost, fmt.Sprintf("/api/v1/queue/items/%s/%s", url.PathEscape(id), url.PathEscape(action)), nil)
}

func (c *Client) DeleteQueueItem(id string) error {
	return c.send(http.MethodDelete, "/api/v1/queue/items/"+url.PathEscape(id), nil)
}

func (c *Client) History(page, pageSize int) (*HistoryResponse, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	var resp HistoryResponse
	if err := c.get(withQuery("/api/v1/history", params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) RetryHistoryItem(id string) error {
	return c.send(http.MethodPost, "/api/v1/history/"+url.PathEscape(id)+"/retry", nil)
}

func (c *Client) DeleteHistoryItem(id string) error {
	return c.send(http.MethodDelete, "/api/v1/history/"+url.PathEscape(id), nil)
}

func (c *Client) ClearHistory() error {
	return c.send(http.MethodDelete, "/api/v1/history", nil)
}

func (c *Client) Library(kind string) (*LibraryResponse, error) {
	var resp LibraryResponse
	if err := c.get("/api/v1/library/"+url.PathEscape(kind), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Details(kind string, id int64) (*DetailsResponse, error) {
	var resp DetailsResponse
	if err := c.get(fmt.Sprintf("/api/v1/library/%s/%d", url.PathEscape(kind), id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(term, kind string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", term)
	if kind != "" {
		params.Set("kind", kind)
	}
	var resp SearchResponse
	if err := c.get(withQuery("/api/v1/search", params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Upcoming() (*UpcomingResponse, error) {
	var resp UpcomingResponse
	if err := c.get("/api/v1/upcoming", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
