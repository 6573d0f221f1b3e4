package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/HAMZAOUI-AMENY/devops-api/app"
	"github.com/HAMZAOUI-AMENY/devops-api/handlers"
	"github.com/HAMZAOUI-AMENY/devops-api/middleware"
	"github.com/HAMZAOUI-AMENY/devops-api/utils"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware. Instrument wraps everything below it, so every
	// dispatched request is counted and timed exactly once, including
	// panics converted to 500s by Recovery.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Instrument(deps.Metrics))
	r.Use(middleware.Recovery(deps.Logger))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// System endpoints
	r.Get("/", handlers.Root(deps))
	r.Get("/health", handlers.HealthCheck(deps))

	// Item endpoints
	r.Route("/items", func(r chi.Router) {
		r.Post("/", handlers.CreateItem(deps))
		r.Get("/{item_id}", handlers.ReadItem(deps))
		r.Put("/{item_id}", handlers.UpdateItem(deps))
		r.Delete("/{item_id}", handlers.DeleteItem(deps))
	})

	// Tracing example
	r.Get("/trace-example/{user_id}", handlers.TraceExample(deps))

	// Calculator endpoints
	r.Get("/sum", handlers.Sum(deps))
	r.Get("/multiply", handlers.Multiply(deps))

	// Metrics exposition
	if deps.Config.Observability.MetricsEnabled {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	// Fallbacks
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteMethodNotAllowed(w, "")
	})

	return r
}
