package handlers

import (
	"net/http"

	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready        bool `json:"ready"`
	SpacesLoaded int  `json:"spaces_loaded"`
}

// Readyz reports whether the catalog has been loaded. A server with an
// empty catalog answers but cannot serve useful searches.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := d.Catalog.Count()
		status := http.StatusOK
		if count == 0 {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, readyzResponse{
			Ready:        count > 0,
			SpacesLoaded: count,
		})
	}
}
