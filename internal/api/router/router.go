package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/zboobraids/booking-api/internal/availability"
	"github.com/zboobraids/booking-api/internal/calendly"
	"github.com/zboobraids/booking-api/internal/catalog"
	"github.com/zboobraids/booking-api/internal/contact"
	httpmiddleware "github.com/zboobraids/booking-api/internal/http/middleware"
	"github.com/zboobraids/booking-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	AvailabilityHandler *availability.Handler
	CalendlyHandler     *calendly.Handler
	CatalogHandler      *catalog.Handler
	ContactHandler      *contact.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string

	// Contact form rate limit (requests/sec per IP); 0 disables.
	ContactRateLimit float64
	ContactRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.AvailabilityHandler != nil {
			api.Get("/availability", cfg.AvailabilityHandler.GetAvailability)
		}

		if cfg.CalendlyHandler != nil {
			api.Route("/calendly", func(r chi.Router) {
				r.Get("/availability", cfg.CalendlyHandler.GetAvailability)
				r.Get("/event-type", cfg.CalendlyHandler.GetEventType)
				r.Get("/test", cfg.CalendlyHandler.CheckKey)
				r.Post("/schedule", cfg.CalendlyHandler.Schedule)
			})
		}

		if cfg.CatalogHandler != nil {
			api.Route("/catalog", func(r chi.Router) {
				r.Get("/", cfg.CatalogHandler.ListCategories)
				r.Get("/{slug}", cfg.CatalogHandler.GetCategory)
				r.Get("/{slug}/{subSlug}", cfg.CatalogHandler.GetSubcategory)
			})
		}

		if cfg.ContactHandler != nil {
			api.Group(func(r chi.Router) {
				if cfg.ContactRateLimit > 0 {
					r.Use(httpmiddleware.RateLimit(cfg.ContactRateLimit, cfg.ContactRateBurst))
				}
				r.Post("/contact", cfg.ContactHandler.Submit)
			})
		}
	})

	return r
}
