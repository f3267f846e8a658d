// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/handlers"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Brands         *handlers.BrandHandler
	Tags           *handlers.TagHandler
	Collections    *handlers.CollectionHandler
	Menus          *handlers.MenuHandler
	Reconciliation *handlers.ReconciliationHandler
	Health         *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", h.Brands.ListBrands)
			r.Post("/", h.Brands.CreateBrand)
			r.Get("/{id}", h.Brands.GetBrand)
			r.Put("/{id}", h.Brands.UpdateBrand)
			r.Delete("/{id}", h.Brands.DeleteBrand)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.Tags.ListTags)
			r.Post("/", h.Tags.CreateTag)
			r.Get("/{id}", h.Tags.GetTag)
			r.Put("/{id}", h.Tags.UpdateTag)
			r.Delete("/{id}", h.Tags.DeleteTag)
		})

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", h.Collections.ListCollections)
			r.Post("/", h.Collections.CreateCollection)
			r.Get("/{id}", h.Collections.GetCollection)
			r.Delete("/{id}", h.Collections.DeleteCollection)

			r.Post("/{id}/items", h.Collections.AddItem)
			r.Post("/{id}/items/swap", h.Collections.SwapItems)
			r.Delete("/{id}/items/{itemId}", h.Collections.RemoveItem)
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", h.Menus.ListMenus)
			r.Post("/", h.Menus.CreateMenu)
			r.Get("/{id}", h.Menus.GetMenu)
			r.Delete("/{id}", h.Menus.DeleteMenu)
			r.Get("/{id}/tree", h.Menus.GetTree)
			r.Post("/{id}/reorder", h.Menus.Reorder)

			r.Post("/{id}/items", h.Menus.AddItem)
			r.Put("/{id}/items/{itemId}", h.Menus.UpdateItem)
			r.Delete("/{id}/items/{itemId}", h.Menus.RemoveItem)
		})

		r.Get("/reconciliation", h.Reconciliation.List)
		r.Post("/reconciliation/{id}/resolve", h.Reconciliation.Resolve)
	})

	return r
}
