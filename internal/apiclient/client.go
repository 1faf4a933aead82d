// Package apiclient is the single HTTP seam to the series manager, movie
// manager and download manager APIs.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds every request unless WithTimeout overrides it.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response is kept as detail.
const maxErrorBody = 512

// v3Path matches the namespace whose services take the key in a header.
var v3Path = regexp.MustCompile(`^/*api/v3(/|$)`)

// ServiceKind identifies which upstream an endpoint points at.
type ServiceKind int

const (
	SeriesManager ServiceKind = iota + 1
	MovieManager
	DownloadManager
)

func (k ServiceKind) String() string {
	switch k {
	case SeriesManager:
		return "sonarr"
	case MovieManager:
		return "radarr"
	case DownloadManager:
		return "sabnzbd"
	default:
		return "unknown"
	}
}

// Endpoint holds the credentials for one upstream service.
type Endpoint struct {
	Kind    ServiceKind
	BaseURL string
	APIKey  string
}

// Configured reports whether the endpoint has both a URL and a key.
func (e Endpoint) Configured() bool {
	return strings.TrimSpace(e.BaseURL) != "" && strings.TrimSpace(e.APIKey) != ""
}

// Request describes one API call.
type Request struct {
	Method string // defaults to GET
	Path   string
	Query  url.Values
	// Body holds parameters. GET and DELETE send them in the query string,
	// POST and PUT send them as JSON unless Form is set.
	Body map[string]any
	Form bool
}

// Client performs authenticated requests against an Endpoint.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	attempts   uint
	retryDelay time.Duration
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. It applies to a copy of any
// client passed with WithHTTPClient, regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRateLimit caps outgoing requests per second across all endpoints.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithRetry repeats requests that failed with a network error or a 5xx
// status, up to attempts total tries.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.attempts = attempts
		c.retryDelay = delay
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		attempts:   1,
		retryDelay: 500 * time.Millisecond,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	c.log = c.log.With("component", "apiclient")
	return c
}

// Do performs req against ep. On success the body is decoded as JSON into
// a generic value; if that fails the raw body text is returned as a string.
func (c *Client) Do(ctx context.Context, ep Endpoint, req Request) (any, error) {
	body, err := c.fetch(ctx, ep, req)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body), nil
	}
	return v, nil
}

// DoJSON performs req against ep and decodes the body into out.
func (c *Client) DoJSON(ctx context.Context, ep Endpoint, req Request, out any) error {
	body, err := c.fetch(ctx, ep, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindDecode, Service: ep.Kind, Detail: req.Path, Err: err}
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, ep Endpoint, req Request) ([]byte, error) {
	if !ep.Configured() {
		return nil, &Error{Kind: KindNotConfigured, Service: ep.Kind}
	}

	var body []byte
	err := retry.Do(
		func() error {
			var err error
			body, err = c.once(ctx, ep, req)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying request", "service", ep.Kind, "path", req.Path, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			// cancelled while waiting between attempts
			return nil, &Error{Kind: KindNetwork, Service: ep.Kind, Detail: req.Path, Err: err}
		}
		return nil, err
	}
	return body, nil
}

func (c *Client) once(ctx context.Context, ep Endpoint, req Request) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindNetwork, Service: ep.Kind, Detail: "rate limit wait", Err: err}
		}
	}

	httpReq, err := c.build(ctx, ep, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Debug("api request failed", "service", ep.Kind, "path", req.Path, "error", err)
		return nil, &Error{Kind: KindNetwork, Service: ep.Kind, Detail: req.Path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Service: ep.Kind, Detail: "read body", Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Debug("api unexpected status", "service", ep.Kind, "path", req.Path, "status", resp.StatusCode)
		detail := strings.TrimSpace(string(data))
		if len(detail) > maxErrorBody {
			detail = detail[:maxErrorBody]
		}
		return nil, &Error{Kind: KindHTTPStatus, Service: ep.Kind, StatusCode: resp.StatusCode, Detail: detail}
	}

	c.log.Debug("api request complete", "service", ep.Kind, "path", req.Path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
	return data, nil
}

// build assembles the HTTP request with URL joining and auth placement.
func (c *Client) build(ctx context.Context, ep Endpoint, req Request) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := url.Parse(JoinURL(ep.BaseURL, req.Path))
	if err != nil {
		return nil, &Error{Kind: KindNotConfigured, Service: ep.Kind, Detail: "invalid base url", Err: err}
	}

	q := u.Query()
	for k, vs := range req.Query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	header := v3Path.MatchString(req.Path)
	if !header {
		q.Set("apikey", ep.APIKey)
	}

	var (
		reader      io.Reader
		contentType string
	)
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if len(req.Body) > 0 {
			if req.Form {
				reader = strings.NewReader(formValues(req.Body).Encode())
				contentType = "application/x-www-form-urlencoded"
			} else {
				b, err := json.Marshal(req.Body)
				if err != nil {
					return nil, fmt.Errorf("encode body: %w", err)
				}
				reader = bytes.NewReader(b)
				contentType = "application/json"
			}
		}
	default:
		for k, vs := range formValues(req.Body) {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if header {
		httpReq.Header.Set("X-Api-Key", ep.APIKey)
	}
	return httpReq, nil
}

// JoinURL joins a base URL and a path with exactly one slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func formValues(params map[string]any) url.Values {
	v := make(url.Values, len(params))
	for k, p := range params {
		switch p := p.(type) {
		case []string:
			v[k] = append(v[k], p...)
		case string:
			v.Set(k, p)
		default:
			v.Set(k, fmt.Sprint(p))
		}
	}
	return v
}
