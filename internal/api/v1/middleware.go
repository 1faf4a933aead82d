package v1

import (
	"net/http"

	"github.com/vmunix/arrdash/pkg/release"
)

// requireKind wraps a handler and returns 400 unless the {kind} path value
// names series or movies.
func requireKind(next func(http.ResponseWriter, *http.Request, release.Kind)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := release.ParseKind(r.PathValue("kind"))
		if kind == release.KindUnknown {
			writeError(w, http.StatusBadRequest, "INVALID_KIND", "kind must be series or movies")
			return
		}
		next(w, r, kind)
	}
}

// requireID wraps a handler and returns 400 when the {id} path value is empty.
func requireID(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "MISSING_ID", "missing path parameter: id")
			return
		}
		next(w, r, id)
	}
}
