package api

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/graphicoglobal/atelier/pkg/app"
	"github.com/graphicoglobal/atelier/pkg/auth"
	"github.com/graphicoglobal/atelier/services/catalog/application/handlers"
	appsvcs "github.com/graphicoglobal/atelier/services/catalog/application/services"
	"github.com/graphicoglobal/atelier/services/catalog/application/subscribers"
)

// CountdownInterval is the tick of the countdown stream.
const CountdownInterval = time.Second

// CatalogRoutes registers the public gallery and admin endpoints under /api.
func CatalogRoutes(r chi.Router, a *app.Application, svcs *appsvcs.Services) {
	sessionsH := handlers.NewSessionHandler(a.SessionStore, a.Config.AdminSecret, a.Logger)
	adminItems := handlers.NewAdminItemsHandler(svcs)
	promotion := handlers.NewPromotionHandler(svcs)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", handlers.ListCategories)
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewListGalleryHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Get("/{id}/countdown", handlers.NewCountdownHandler(svcs, CountdownInterval).Execute)
			r.Get("/{id}/checkout", handlers.NewCheckoutHandler(svcs).Execute)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/session", sessionsH.Login)
			r.Get("/session", sessionsH.Status)
			r.Delete("/session", sessionsH.Logout)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin(a.SessionStore, a.Logger))
				r.Get("/items", adminItems.List)
				r.Post("/items", adminItems.Create)
				r.Patch("/items/{id}", adminItems.Update)
				r.Delete("/items/{id}", adminItems.Delete)
				r.Post("/items/{id}/promotion/toggle", promotion.Toggle)
				r.Put("/items/{id}/promotion", promotion.Set)
				r.Post("/descriptions", handlers.NewDescriptionHandler(svcs).Execute)
			})
		})
	})
}

// CatalogSubscribers starts the in-process catalog event consumers. They stop
// when ctx is cancelled or the bus is closed.
func CatalogSubscribers(ctx context.Context, a *app.Application) error {
	return subscribers.Register(ctx, a.EventBus, a.Metrics, a.Logger)
}
