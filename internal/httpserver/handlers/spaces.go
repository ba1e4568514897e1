package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BillJamesM/UdubHacks/internal/domain"
	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
	"github.com/BillJamesM/UdubHacks/internal/logger"
	"github.com/BillJamesM/UdubHacks/internal/reservation"
)

type spaceView struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Building    string             `json:"building"`
	Capacity    int                `json:"capacity"`
	Features    []string           `json:"features"`
	NoiseLevel  string             `json:"noiseLevel"`
	Hours       domain.Hours       `json:"hours"`
	Coordinates domain.Coordinates `json:"coordinates"`
	Slots       []domain.SlotView  `json:"slots,omitempty"`
}

type spacesResponse struct {
	Count  int           `json:"count"`
	Filter domain.Filter `json:"filter"`
	Spaces []spaceView   `json:"spaces"`
}

// Spaces searches the catalog. Free text (`q`) goes through the
// reservation service's text search (the chat-assistant path) and takes
// precedence; otherwise structured query params build the filter.
// `noise=any` means unconstrained.
func Spaces(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var filter domain.Filter
		var results []reservation.SpaceAvailability

		if text := strings.TrimSpace(q.Get("q")); text != "" {
			d.Logger.Debug("free-text search",
				logger.String("q", text))
			filter, results = d.Reservations.SearchText(text)
		} else {
			var errMsg string
			filter, errMsg = filterFromParams(q)
			if errMsg != "" {
				writeError(w, http.StatusBadRequest, errMsg)
				return
			}
			results = d.Reservations.Search(filter)
		}

		writeJSON(w, http.StatusOK, spacesResponse{
			Count:  len(results),
			Filter: filter,
			Spaces: toSpaceViews(results),
		})
	}
}

func filterFromParams(q url.Values) (domain.Filter, string) {
	var filter domain.Filter

	if v := q.Get("noise"); v != "" && v != "any" {
		filter.NoiseLevel = v
	}
	if v := q.Get("min_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return domain.Filter{}, "min_capacity must be a non-negative integer"
		}
		filter.MinCapacity = n
	}
	if v := q.Get("features"); v != "" {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filter.Features = append(filter.Features, f)
			}
		}
	}
	filter.Date = q.Get("date")
	filter.TimeSlot = q.Get("time")

	return filter, ""
}

func toSpaceViews(results []reservation.SpaceAvailability) []spaceView {
	views := make([]spaceView, 0, len(results))
	for _, res := range results {
		views = append(views, spaceView{
			ID:          res.Space.ID,
			Name:        res.Space.Name,
			Building:    res.Space.Building,
			Capacity:    res.Space.Capacity,
			Features:    res.Space.Features,
			NoiseLevel:  res.Space.NoiseLevel,
			Hours:       res.Space.Hours,
			Coordinates: res.Space.Coordinates,
			Slots:       res.Slots,
		})
	}
	return views
}
