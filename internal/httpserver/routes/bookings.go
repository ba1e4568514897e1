package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
	"github.com/BillJamesM/UdubHacks/internal/httpserver/handlers"
	"github.com/BillJamesM/UdubHacks/internal/httpserver/mw"
)

func init() { Register(registerBookings) }

func registerBookings(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		MaxEntries:        10000,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})

	r.With(limit).Post("/api/bookings", handlers.CreateBooking(d))
	r.Delete("/api/bookings/{id}", handlers.CancelBooking(d))
	r.Get("/api/bookings", handlers.ListBookings(d))
}
