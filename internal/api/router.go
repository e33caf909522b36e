package api

import (
	"convoy-route-service/internal/api/handlers"
	"convoy-route-service/internal/metrics"
	"convoy-route-service/internal/ports"
	"convoy-route-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// geometry may be nil, in which case road routes are always straight lines.
func NewRouter(opt *services.Optimizer, geometry ports.GeometryProvider) http.Handler {
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{World: opt.World()}
	worldHandler := &handlers.WorldHandler{World: opt.World()}
	optimizeHandler := handlers.NewOptimizeHandler(opt)
	roadHandler := &handlers.RoadRouteHandler{Provider: geometry}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/api/supply-points", worldHandler.SupplyPoints)
	mux.HandleFunc("/api/destinations", worldHandler.Destinations)
	mux.HandleFunc("/api/vehicles", worldHandler.Vehicles)
	mux.HandleFunc("/api/routes", worldHandler.Routes)
	mux.HandleFunc("/api/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/api/road-route", roadHandler.RoadRoute)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
