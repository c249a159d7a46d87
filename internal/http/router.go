package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/bistro/internal/http/archive"
	"github.com/MrJamesThe3rd/bistro/internal/http/auth"
	"github.com/MrJamesThe3rd/bistro/internal/http/dashboard"
	"github.com/MrJamesThe3rd/bistro/internal/http/export"
	"github.com/MrJamesThe3rd/bistro/internal/http/importcsv"
	"github.com/MrJamesThe3rd/bistro/internal/http/inventory"
	"github.com/MrJamesThe3rd/bistro/internal/http/maintenance"
	"github.com/MrJamesThe3rd/bistro/internal/http/matching"
	"github.com/MrJamesThe3rd/bistro/internal/http/personnel"
	"github.com/MrJamesThe3rd/bistro/internal/http/purchase"
	"github.com/MrJamesThe3rd/bistro/internal/http/sales"
	"github.com/MrJamesThe3rd/bistro/internal/http/settings"
)

type Handlers struct {
	Auth        *auth.Handler
	Personnel   *personnel.Handler
	Purchases   *purchase.Handler
	Maintenance *maintenance.Handler
	Sales       *sales.Handler
	Inventory   *inventory.Handler
	Dashboard   *dashboard.Handler
	Archives    *archive.Handler
	Settings    *settings.Handler
	Export      *export.Handler
	Import      *importcsv.Handler
	Aliases     *matching.Handler
}

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(authenticator *auth.Authenticator, h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.ConfirmHeader},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/unlock", h.Auth.Routes)

		r.Group(func(r chi.Router) {
			r.Use(authenticator.RequireToken)
			r.Use(confirmDeletes(authenticator))

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Personnel.Routes(r)
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				r.With(authenticator.RequireConfirmation).Post("/close", h.Purchases.Close)
				h.Purchases.Routes(r)
			})

			r.Route("/maintenance", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				r.With(authenticator.RequireConfirmation).Post("/close", h.Maintenance.Close)
				h.Maintenance.Routes(r)
			})

			r.Route("/sales", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				r.With(authenticator.RequireConfirmation).Post("/close", h.Sales.Close)
				h.Sales.Routes(r)
			})

			r.Route("/stock", h.Inventory.StockRoutes)

			r.Route("/articles", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Inventory.ArticleRoutes(r)
			})

			r.Route("/dashboard", h.Dashboard.Routes)

			r.Route("/archives", func(r chi.Router) {
				r.With(authenticator.RequireConfirmation).Post("/reset", h.Archives.Reset)
				h.Archives.Routes(r)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Settings.Routes(r)
			})

			r.Route("/export", h.Export.Routes)

			r.Route("/import", h.Import.Routes)

			r.Route("/aliases", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Aliases.Routes(r)
			})
		})
	})

	return router
}

// confirmDeletes requires the confirmation PIN on every DELETE request.
func confirmDeletes(a *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		guarded := a.RequireConfirmation(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodDelete {
				guarded.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
