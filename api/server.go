/*
server.go - HTTP router and middleware configuration

ROUTER: chi. Middleware: request logging, panic recovery, request ids, and
CORS for the back-office frontend. Authentication/authorization belongs to
the surrounding platform; nothing here assumes an identity.
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/investments", func(r chi.Router) {
			r.Get("/", h.ListInvestments)
			r.Post("/", h.CreateInvestment)
			r.Get("/{id}", h.GetInvestment)
			r.Get("/{id}/projection", h.GetProjection)
			r.Get("/{id}/commission", h.GetCommission)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/commissions", h.GetCommissionReport)
		})

		r.Get("/rates", h.GetRate)
		r.Get("/calendar/payable", h.GetPayableDate)
	})

	return r
}
