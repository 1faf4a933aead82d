// Package release extracts a media identity from raw download names.
package release

import (
	"strings"

	"github.com/samber/mo"
)

// Kind is the media category a download belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindSeries
	KindMovie
)

// unknownStr is the string representation for unknown values.
const unknownStr = "unknown"

func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindMovie:
		return "movie"
	default:
		return unknownStr
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name; unrecognised names decode to KindUnknown.
func (k *Kind) UnmarshalText(b []byte) error {
	*k = ParseKind(string(b))
	return nil
}

// ParseKind converts a user-facing kind name ("series", "tv", "movie") to a Kind.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "series", "tv", "show", "shows":
		return KindSeries
	case "movie", "movies", "film":
		return KindMovie
	default:
		return KindUnknown
	}
}

// Identity is the candidate identity parsed from a download name.
type Identity struct {
	Kind    Kind           `json:"kind"`
	Title   string         `json:"title"`
	Season  mo.Option[int] `json:"season"`
	Episode mo.Option[int] `json:"episode"`
	Year    mo.Option[int] `json:"year"`
}

// Parsed reports whether a kind-specific pattern matched the name.
// Series identities need a season, movie identities need a year.
func (id Identity) Parsed() bool {
	switch id.Kind {
	case KindSeries:
		return id.Season.IsPresent()
	case KindMovie:
		return id.Year.IsPresent()
	default:
		return false
	}
}
