// Package v1 implements the native REST API.
package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vmunix/arrdash/internal/apiclient"
	"github.com/vmunix/arrdash/internal/dashboard"
	"github.com/vmunix/arrdash/internal/download"
	"github.com/vmunix/arrdash/pkg/release"
)

// Server is the v1 API server.
type Server struct {
	deps ServerDeps
	log  *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, log *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{deps: deps, log: log.With("component", "api")}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Downloads
	mux.HandleFunc("GET /api/v1/recent", s.recent)
	mux.HandleFunc("GET /api/v1/queue", s.queue)
	mux.HandleFunc("POST /api/v1/queue/{action}", s.queueControl)
	mux.HandleFunc("POST /api/v1/queue/items/{id}/{action}", requireID(s.queueItemControl))
	mux.HandleFunc("DELETE /api/v1/queue/items/{id}", requireID(s.deleteQueueItem))

	// History
	mux.HandleFunc("GET /api/v1/history", s.history)
	mux.HandleFunc("POST /api/v1/history/{id}/retry", requireID(s.retryHistoryItem))
	mux.HandleFunc("DELETE /api/v1/history/{id}", requireID(s.deleteHistoryItem))
	mux.HandleFunc("DELETE /api/v1/history", s.clearHistory)

	// Library
	mux.HandleFunc("GET /api/v1/library/{kind}", requireKind(s.library))
	mux.HandleFunc("GET /api/v1/library/{kind}/{id}", requireKind(s.details))
	mux.HandleFunc("GET /api/v1/search", s.search)
	mux.HandleFunc("GET /api/v1/upcoming", s.upcoming)

	// System
	mux.HandleFunc("GET /api/v1/status", s.status)
	mux.HandleFunc("GET /api/v1/parse", s.parse)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeServiceError maps dashboard and upstream errors to HTTP responses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboard.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", err.Error())
	case errors.Is(err, dashboard.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
	case errors.Is(err, dashboard.ErrUnknownAction):
		writeError(w, http.StatusBadRequest, "INVALID_ACTION", err.Error())
	case errors.Is(err, download.ErrMissingID):
		writeError(w, http.StatusBadRequest, "MISSING_ID", err.Error())
	case errors.Is(err, dashboard.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, apiclient.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "NOT_CONFIGURED", err.Error())
	case errors.Is(err, download.ErrInvalidAPIKey):
		writeError(w, http.StatusBadGateway, "UPSTREAM_AUTH", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "CANCELLED", err.Error())
	default:
		var apiErr *apiclient.Error
		if errors.As(err, &apiErr) || errors.Is(err, download.ErrActionFailed) {
			writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
			return
		}
		s.log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

// queryInt extracts an optional integer from query string.
func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s: not an integer: %q", name, val)
	}
	return i, nil
}

// queryKind extracts an optional media kind. An empty value is KindUnknown.
func queryKind(r *http.Request) (release.Kind, error) {
	val := r.URL.Query().Get("kind")
	if val == "" || val == "all" {
		return release.KindUnknown, nil
	}
	kind := release.ParseKind(val)
	if kind == release.KindUnknown {
		return kind, fmt.Errorf("kind: must be series or movies, got %q", val)
	}
	return kind, nil
}

func (s *Server) recent(w http.ResponseWriter, r *http.Request) {
	kind, err := queryKind(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", err.Error())
		return
	}

	view, err := s.deps.Dashboard.RecentDownloads(r.Context(), kind, limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) queue(w http.ResponseWriter, r *http.Request) {
	view, err := s.deps.Dashboard.Queue(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) queueControl(w http.ResponseWriter, r *http.Request) {
	var action dashboard.Action
	switch r.PathValue("action") {
	case "pause":
		action = dashboard.ActionPause
	case "resume":
		action = dashboard.ActionResume
	default:
		writeError(w, http.StatusBadRequest, "INVALID_ACTION", "action must be pause or resume")
		return
	}
	s.runAction(w, r, action, "")
}

func (s *Server) queueItemControl(w http.ResponseWriter, r *http.Request, id string) {
	var action dashboard.Action
	switch r.PathValue("action") {
	case "pause":
		action = dashboard.ActionPauseItem
	case "resume":
		action = dashboard.ActionResumeItem
	default:
		writeError(w, http.StatusBadRequest, "INVALID_ACTION", "action must be pause or resume")
		return
	}
	s.runAction(w, r, action, id)
}

func (s *Server) deleteQueueItem(w http.ResponseWriter, r *http.Request, id string) {
	s.runAction(w, r, dashboard.ActionDeleteItem, id)
}

func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_PAGE", err.Error())
		return
	}
	size, err := queryInt(r, "page_size", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_LIMIT", err.Error())
		return
	}

	view, err := s.deps.Dashboard.History(r.Context(), page, size)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) retryHistoryItem(w http.ResponseWriter, r *http.Request, id string) {
	s.runAction(w, r, dashboard.ActionRetry, id)
}

func (s *Server) deleteHistoryItem(w http.ResponseWriter, r *http.Request, id string) {
	s.runAction(w, r, dashboard.ActionDeleteHistory, id)
}

func (s *Server) clearHistory(w http.ResponseWriter, r *http.Request) {
	s.runAction(w, r, dashboard.ActionClearHistory, "")
}

func (s *Server) runAction(w http.ResponseWriter, r *http.Request, action dashboard.Action, id string) {
	if err := s.deps.Dashboard.QueueAction(r.Context(), action, id); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Action: string(action), ID: id})
}

func (s *Server) library(w http.ResponseWriter, r *http.Request, kind release.Kind) {
	view, err := s.deps.Dashboard.Library(r.Context(), kind)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) details(w http.ResponseWriter, r *http.Request, kind release.Kind) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer")
		return
	}

	view, err := s.deps.Dashboard.Details(r.Context(), kind, id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "q is required")
		return
	}
	kind, err := queryKind(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_KIND", err.Error())
		return
	}

	view, err := s.deps.Dashboard.Search(r.Context(), kind, term)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) upcoming(w http.ResponseWriter, r *http.Request) {
	view, err := s.deps.Dashboard.Upcoming(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	services, err := s.deps.Dashboard.Status(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:   "ok",
		Version:  s.deps.Version,
		Demo:     s.deps.Dashboard.DemoActive(),
		Services: services,
	})
}

func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_NAME", "name is required")
		return
	}
	category := r.URL.Query().Get("category")
	id := release.Parse(name, category)
	writeJSON(w, http.StatusOK, parseResponse{
		Name:     name,
		Category: category,
		Identity: id,
		Parsed:   id.Parsed(),
	})
}
