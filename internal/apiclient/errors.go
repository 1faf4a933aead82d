package apiclient

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is matched by errors.Is for requests against an endpoint
// with no URL or API key.
var ErrNotConfigured = errors.New("service not configured")

// ErrorKind classifies request failures.
type ErrorKind int

const (
	// KindNetwork covers timeouts, refused connections and other transport failures.
	KindNetwork ErrorKind = iota + 1
	// KindHTTPStatus means the service answered with a status >= 400.
	KindHTTPStatus
	// KindDecode means the body did not match the expected shape.
	KindDecode
	// KindNotConfigured means the endpoint lacks a URL or key.
	KindNotConfigured
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindDecode:
		return "decode"
	case KindNotConfigured:
		return "not_configured"
	default:
		return "unknown"
	}
}

// Error is returned by every Client request method.
type Error struct {
	Kind       ErrorKind
	Service    ServiceKind
	StatusCode int // set for KindHTTPStatus
	Detail     string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("%s: http status %d: %s", e.Service, e.StatusCode, e.Detail)
	case KindNotConfigured:
		return fmt.Sprintf("%s: %s", e.Service, ErrNotConfigured)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %s: %v", e.Service, e.Kind, e.Detail, e.Err)
		}
		return fmt.Sprintf("%s: %s: %s", e.Service, e.Kind, e.Detail)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotConfigured) match configuration errors.
func (e *Error) Is(target error) bool {
	return target == ErrNotConfigured && e.Kind == KindNotConfigured
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// retryable reports whether a failed request may succeed if repeated.
func retryable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Kind {
	case KindNetwork:
		return true
	case KindHTTPStatus:
		return apiErr.StatusCode >= 500
	default:
		return false
	}
}
