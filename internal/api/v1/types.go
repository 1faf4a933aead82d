package v1

import (
	"github.com/vmunix/arrdash/internal/dashboard"
	"github.com/vmunix/arrdash/pkg/release"
)

// statusResponse is the response for GET /status.
type statusResponse struct {
	Status   string                    `json:"status"`
	Version  string                    `json:"version"`
	Demo     bool                      `json:"demo"`
	Services []dashboard.ServiceStatus `json:"services"`
}

// parseResponse is the response for GET /parse.
type parseResponse struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Identity release.Identity `json:"identity"`
	Parsed   bool             `json:"parsed"`
}

// actionResponse confirms a queue or history action.
type actionResponse struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}
