package download

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/arrdash/internal/apiclient"
)

// Client talks to the SABnzbd API.
type Client struct {
	api *apiclient.Client
	ep  apiclient.Endpoint
	log *slog.Logger
}

// NewClient creates a SABnzbd client for ep.
func NewClient(api *apiclient.Client, ep apiclient.Endpoint, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		api: api,
		ep:  ep,
		log: log.With("component", "sabnzbd"),
	}
}

// Configured reports whether the endpoint has credentials.
func (c *Client) Configured() bool {
	return c.ep.Configured()
}

// Queue fetches the current download queue.
func (c *Client) Queue(ctx context.Context) (Queue, error) {
	var resp queueResponse
	if err := c.call(ctx, url.Values{"mode": {"queue"}}, &resp); err != nil {
		return Queue{}, err
	}

	q := Queue{
		Slots:         make([]QueueSlot, 0, len(resp.Queue.Slots)),
		Paused:        resp.Queue.Paused,
		Speed:         parseSpeed(resp.Queue.Speed),
		SizeLeftBytes: megabytes(resp.Queue.MBLeft),
		TimeLeft:      parseTimeLeft(resp.Queue.TimeLeft),
		Total:         resp.Queue.NoOfSlots,
	}
	for _, s := range resp.Queue.Slots {
		q.Slots = append(q.Slots, QueueSlot{
			ID:            s.NzoID,
			Name:          s.Filename,
			Category:      s.Cat,
			Status:        s.Status,
			State:         QueueState(s.Status),
			Priority:      s.Priority,
			Progress:      parseFloat(s.Percentage),
			SizeBytes:     megabytes(s.MB),
			SizeLeftBytes: megabytes(s.MBLeft),
			TimeLeft:      parseTimeLeft(s.TimeLeft),
		})
	}
	if q.Total < len(q.Slots) {
		q.Total = len(q.Slots)
	}
	return q, nil
}

// History fetches limit history entries starting at offset start, along
// with the total number of entries.
func (c *Client) History(ctx context.Context, start, limit int) (HistoryPage, error) {
	params := url.Values{
		"mode":  {"history"},
		"start": {strconv.Itoa(max(start, 0))},
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp historyResponse
	if err := c.call(ctx, params, &resp); err != nil {
		return HistoryPage{}, err
	}

	page := HistoryPage{
		Slots: make([]HistorySlot, 0, len(resp.History.Slots)),
		Total: resp.History.NoOfSlots,
	}
	for _, s := range resp.History.Slots {
		slot := HistorySlot{
			ID:          s.NzoID,
			Name:        s.Name,
			Category:    s.Category,
			Status:      s.Status,
			State:       HistoryState(s.Status),
			SizeBytes:   s.Bytes,
			FailMessage: s.FailMessage,
			Storage:     s.Storage,
		}
		if s.Completed > 0 {
			slot.CompletedAt = time.Unix(s.Completed, 0).UTC()
		}
		page.Slots = append(page.Slots, slot)
	}
	return page, nil
}

// Version reports the SABnzbd version, used as a connection test.
func (c *Client) Version(ctx context.Context) (string, error) {
	var resp versionResponse
	if err := c.call(ctx, url.Values{"mode": {"version"}}, &resp); err != nil {
		return "", err
	}
	if resp.Version == "" {
		return "", errors.New("sabnzbd: no version in response")
	}
	return resp.Version, nil
}

// Pause pauses the whole queue.
func (c *Client) Pause(ctx context.Context) error {
	return c.action(ctx, "pause", url.Values{"mode": {"pause"}})
}

// Resume resumes the whole queue.
func (c *Client) Resume(ctx context.Context) error {
	return c.action(ctx, "resume", url.Values{"mode": {"resume"}})
}

// PauseItem pauses one queue entry.
func (c *Client) PauseItem(ctx context.Context, nzoID string) error {
	return c.itemAction(ctx, "queue", "pause", nzoID)
}

// ResumeItem resumes one queue entry.
func (c *Client) ResumeItem(ctx context.Context, nzoID string) error {
	return c.itemAction(ctx, "queue", "resume", nzoID)
}

// DeleteItem removes one queue entry.
func (c *Client) DeleteItem(ctx context.Context, nzoID string) error {
	return c.itemAction(ctx, "queue", "delete", nzoID)
}

// DeleteHistoryItem removes one history entry.
func (c *Client) DeleteHistoryItem(ctx context.Context, nzoID string) error {
	return c.itemAction(ctx, "history", "delete", nzoID)
}

// Retry requeues a failed history entry.
func (c *Client) Retry(ctx context.Context, nzoID string) error {
	if strings.TrimSpace(nzoID) == "" {
		return ErrMissingID
	}
	return c.action(ctx, "retry", url.Values{"mode": {"retry"}, "value": {nzoID}})
}

// ClearHistory removes every history entry.
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.action(ctx, "history/clear", url.Values{"mode": {"history"}, "name": {"delete"}, "value": {"all"}})
}

func (c *Client) itemAction(ctx context.Context, mode, name, nzoID string) error {
	if strings.TrimSpace(nzoID) == "" {
		return ErrMissingID
	}
	c.log.Debug("item action", "mode", mode, "name", name, "nzo_id", nzoID)
	return c.action(ctx, mode+"/"+name, url.Values{"mode": {mode}, "name": {name}, "value": {nzoID}})
}

func (c *Client) action(ctx context.Context, label string, params url.Values) error {
	var resp statusResponse
	if err := c.call(ctx, params, &resp); err != nil {
		return err
	}
	if !resp.Status {
		return fmt.Errorf("%s: %w", label, ErrActionFailed)
	}
	return nil
}

// call performs a GET against the SABnzbd api endpoint and decodes the body.
func (c *Client) call(ctx context.Context, params url.Values, result errorCarrier) error {
	params.Set("output", "json")
	mode := params.Get("mode")

	err := c.api.DoJSON(ctx, c.ep, apiclient.Request{Path: "api", Query: params}, result)
	if err != nil {
		return fmt.Errorf("sabnzbd %s: %w", mode, err)
	}
	if msg := result.errorMessage(); msg != "" {
		if isAPIKeyError(msg) {
			return ErrInvalidAPIKey
		}
		return fmt.Errorf("sabnzbd %s: %s", mode, msg)
	}
	return nil
}

// Response types for SABnzbd API

type errorCarrier interface {
	errorMessage() string
}

type apiError struct {
	Error string `json:"error"`
}

func (e *apiError) errorMessage() string { return e.Error }

type statusResponse struct {
	apiError
	Status bool `json:"status"`
}

type versionResponse struct {
	apiError
	Version string `json:"version"`
}

type queueResponse struct {
	apiError
	Queue struct {
		Paused    bool        `json:"paused"`
		Speed     string      `json:"speed"` // e.g. "5.2 M"
		MBLeft    string      `json:"mbleft"`
		TimeLeft  string      `json:"timeleft"`
		NoOfSlots int         `json:"noofslots"`
		Slots     []queueSlot `json:"slots"`
	} `json:"queue"`
}

type queueSlot struct {
	NzoID      string `json:"nzo_id"`
	Filename   string `json:"filename"`
	Cat        string `json:"cat"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	Percentage string `json:"percentage"`
	MB         string `json:"mb"`
	MBLeft     string `json:"mbleft"`
	TimeLeft   string `json:"timeleft"`
}

type historyResponse struct {
	apiError
	History struct {
		NoOfSlots int           `json:"noofslots"`
		Slots     []historySlot `json:"slots"`
	} `json:"history"`
}

type historySlot struct {
	NzoID       string `json:"nzo_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Bytes       int64  `json:"bytes"`
	Completed   int64  `json:"completed"`
	FailMessage string `json:"fail_message"`
	Storage     string `json:"storage"`
}

// isAPIKeyError checks if the error message indicates an invalid API key.
func isAPIKeyError(errMsg string) bool {
	lower := strings.ToLower(errMsg)
	return strings.Contains(lower, "api key") || strings.Contains(lower, "apikey")
}

// parseFloat parses a string to float64, returning 0 on error.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// megabytes converts a SABnzbd MB string to bytes.
func megabytes(s string) int64 {
	return int64(parseFloat(s) * 1024 * 1024)
}

// parseSpeed parses SABnzbd speed string (e.g., "5.2 M") to bytes/sec.
func parseSpeed(s string) int64 {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return 0
	}

	val, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0
	}

	if len(parts) > 1 {
		switch strings.ToUpper(parts[1]) {
		case "G":
			val *= 1024 * 1024 * 1024
		case "M":
			val *= 1024 * 1024
		case "K":
			val *= 1024
		}
	}
	return int64(val)
}

// parseTimeLeft parses SABnzbd time string (e.g., "0:05:30", "1:02:05:30")
// to a duration. A leading fourth field counts days.
func parseTimeLeft(s string) time.Duration {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 && len(parts) != 4 {
		return 0
	}

	var days int
	if len(parts) == 4 {
		days, _ = strconv.Atoi(parts[0])
		parts = parts[1:]
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.Atoi(parts[2])

	return time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
}
