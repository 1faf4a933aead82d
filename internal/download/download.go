// Package download reads and controls the SABnzbd queue and history.
package download

import "time"

// SABnzbd status text for finished downloads.
const (
	StatusCompleted = "Completed"
	StatusFailed    = "Failed"
)

// State is the coarse state used for display and filtering.
type State string

const (
	StateQueued      State = "queued"
	StateDownloading State = "downloading"
	StatePaused      State = "paused"
	StateProcessing  State = "processing"
	StateCompleted   State = "completed"
	StateFailed      State = "failed"
)

// QueueSlot is one active entry in the download queue.
type QueueSlot struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Category      string        `json:"category"`
	Status        string        `json:"status"`
	State         State         `json:"state"`
	Priority      string        `json:"priority,omitempty"`
	Progress      float64       `json:"progress"` // percent, 0-100
	SizeBytes     int64         `json:"size_bytes"`
	SizeLeftBytes int64         `json:"size_left_bytes"`
	TimeLeft      time.Duration `json:"time_left"`
}

// Queue is a snapshot of the download queue.
type Queue struct {
	Slots         []QueueSlot   `json:"slots"`
	Paused        bool          `json:"paused"`
	Speed         int64         `json:"speed"` // bytes/sec
	SizeLeftBytes int64         `json:"size_left_bytes"`
	TimeLeft      time.Duration `json:"time_left"`
	Total         int           `json:"total"`
}

// HistorySlot is one finished entry in the download history.
type HistorySlot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	State       State     `json:"state"`
	SizeBytes   int64     `json:"size_bytes"`
	CompletedAt time.Time `json:"completed_at"`
	FailMessage string    `json:"fail_message,omitempty"`
	Storage     string    `json:"storage,omitempty"`
}

// Completed reports whether SABnzbd finished the download successfully.
func (s HistorySlot) Completed() bool {
	return s.Status == StatusCompleted
}

// HistoryPage is one window of the history plus the overall entry count.
type HistoryPage struct {
	Slots []HistorySlot `json:"slots"`
	Total int           `json:"total"`
}

// QueueState maps SABnzbd queue status text to a State.
func QueueState(status string) State {
	switch status {
	case "Downloading", "Fetching", "Grabbing":
		return StateDownloading
	case "Paused":
		return StatePaused
	case "Checking", "Verifying", "Repairing", "Extracting", "Moving", "Running":
		return StateProcessing
	case "Queued", "Propagating":
		return StateQueued
	default:
		return StateDownloading
	}
}

// HistoryState maps SABnzbd history status text to a State.
func HistoryState(status string) State {
	switch status {
	case StatusCompleted:
		return StateCompleted
	case StatusFailed:
		return StateFailed
	default:
		return StateProcessing
	}
}
