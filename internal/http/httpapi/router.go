// Package httpapi assembles the chi router and middleware chain.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"adforge/internal/http/handlers"
	"adforge/internal/middleware"
)

// NewRouter wires the API routes. The country lookup may be nil when no GeoIP
// database is configured.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.CORS,
		middleware.Logger(app.Logger),
		middleware.Locale(app.Config.DefaultLocale, lookup),
	)

	r.Get("/v1/healthz", app.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))
		r.Post("/v1/generate-headlines", app.GenerateHeadlines)
		r.Post("/v1/generate-campaign", app.GenerateCampaign)
		r.Post("/v1/generate-ad-image", app.GenerateAdImage)
	})

	r.Get("/v1/campaigns", app.ListCampaigns)

	return r
}
