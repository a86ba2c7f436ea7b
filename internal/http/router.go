package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the register's HTTP surface. This layer is a thin adapter:
// menu navigation, receipt layout and login screens live in clients of this
// API, not here.
func NewRouter(catalogH *CatalogHandler, cartH *CartHandler, checkoutH *CheckoutHandler, sessionH *SessionHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogH.Get)
			r.Get("/search", catalogH.Search)
			r.Get("/{id}", catalogH.GetByID)
		})

		r.Route("/session", func(r chi.Router) {
			r.Put("/", sessionH.Put)
			r.Get("/", sessionH.Get)
			r.Delete("/", sessionH.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.Get)
			r.Post("/items", cartH.AddItem)
			r.Delete("/items/{product_id}", cartH.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", checkoutH.Quote)
			r.Post("/", checkoutH.Begin)
			r.Post("/payment", checkoutH.Tender)
			r.Post("/items/remove", checkoutH.RemoveItem)
			r.Post("/cancel", checkoutH.Cancel)
			r.Post("/reset", checkoutH.Reset)
		})
	})

	return r
}
