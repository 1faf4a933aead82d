package download

import "errors"

// Sentinel errors for the download package.
var (
	// ErrInvalidAPIKey is returned when SABnzbd rejects the API key.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrActionFailed is returned when SABnzbd answers a control call with status false.
	ErrActionFailed = errors.New("sabnzbd action failed")

	// ErrMissingID is returned by item actions called without an nzo_id.
	ErrMissingID = errors.New("missing nzo_id")
)
