package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
)

type componentStatus struct {
	OK           bool   `json:"ok"`
	SpacesLoaded *int   `json:"spaces_loaded,omitempty"`
	Bookings     *int   `json:"bookings,omitempty"`
	LastReload   string `json:"last_reload,omitempty"`
	Impact       string `json:"impact,omitempty"`
	Error        string `json:"error,omitempty"`
}

type statusResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Status reports the health of the catalog, the ledger and the
// persistence backend. Redis being down degrades the mode but never
// the booking operations themselves.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spaces := d.Catalog.Count()
		bookings := d.Ledger.Len()

		lastReload := "never"
		if t := d.Catalog.LastReload(); !t.IsZero() {
			lastReload = t.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:           spaces > 0,
				SpacesLoaded: &spaces,
				LastReload:   lastReload,
			},
			"ledger": {
				OK:       true,
				Bookings: &bookings,
			},
			"redis": checkRedis(d),
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Mode:       determineMode(components),
			Components: components,
		})
	}
}

func determineMode(components map[string]componentStatus) string {
	if cat, ok := components["catalog"]; ok && !cat.OK {
		return "critical"
	}
	if rds, ok := components["redis"]; ok && !rds.OK {
		return "memory-only"
	}
	return "durable"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Impact: "bookings lost on restart",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Impact: "bookings lost on restart",
			Error:  err.Error(),
		}
	}

	return componentStatus{OK: true}
}
