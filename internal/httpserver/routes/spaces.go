package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/BillJamesM/UdubHacks/internal/httpserver/deps"
	"github.com/BillJamesM/UdubHacks/internal/httpserver/handlers"
)

func init() { Register(registerSpaces) }

func registerSpaces(r chi.Router, d deps.Deps) {
	r.Get("/api/spaces", handlers.Spaces(d))
}
