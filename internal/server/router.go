package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"go-calc-store/internal/calculator"
	"go-calc-store/internal/handlers"
	"go-calc-store/internal/observability"
)

// Deps are the collaborators the router serves.
type Deps struct {
	Sessions *calculator.Registry
	Limits   calculator.Limits
	Gatherer prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", observability.PrometheusHandler(gatherer))

	calculator.RegisterRoutes(r, calculator.NewHandler(deps.Sessions, deps.Limits))

	return r
}
