package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/BillJamesM/UdubHacks/internal/domain"
	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
	"github.com/BillJamesM/UdubHacks/internal/logger"
	"github.com/BillJamesM/UdubHacks/internal/reservation"
)

type bookingRequest struct {
	UserID   string `json:"userId"`
	SpaceID  string `json:"spaceId"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

func (br bookingRequest) validate() string {
	switch {
	case strings.TrimSpace(br.UserID) == "":
		return "userId is required"
	case strings.TrimSpace(br.SpaceID) == "":
		return "spaceId is required"
	case strings.TrimSpace(br.Date) == "":
		return "date is required"
	case strings.TrimSpace(br.TimeSlot) == "":
		return "timeSlot is required"
	}
	return ""
}

type bookingListResponse struct {
	Count    int              `json:"count"`
	Bookings []domain.Booking `json:"bookings"`
}

// CreateBooking books a slot. Unknown spaces map to 404, taken or
// unknown slots to 409.
func CreateBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		booking, err := d.Reservations.Book(r.Context(), req.UserID, req.SpaceID, req.Date, req.TimeSlot)
		switch {
		case errors.Is(err, reservation.ErrSpaceNotFound):
			writeError(w, http.StatusNotFound, "space not found")
			return
		case errors.Is(err, reservation.ErrSlotUnavailable):
			writeError(w, http.StatusConflict, "slot unavailable")
			return
		case err != nil:
			d.Logger.Error("booking failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, booking)
	}
}

// CancelBooking removes a booking by id. Cancelling twice yields 404.
func CancelBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := d.Reservations.Cancel(r.Context(), id)
		switch {
		case errors.Is(err, reservation.ErrBookingNotFound):
			writeError(w, http.StatusNotFound, "booking not found")
			return
		case err != nil:
			d.Logger.Error("cancel failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListBookings returns all bookings for a user, oldest first.
func ListBookings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := strings.TrimSpace(r.URL.Query().Get("user"))
		if user == "" {
			writeError(w, http.StatusBadRequest, "user query parameter is required")
			return
		}

		bookings := d.Reservations.ListUserBookings(user)
		if bookings == nil {
			bookings = []domain.Booking{}
		}

		writeJSON(w, http.StatusOK, bookingListResponse{
			Count:    len(bookings),
			Bookings: bookings,
		})
	}
}
