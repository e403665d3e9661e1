package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the chi router exposing h's routing API plus
// Prometheus metrics, wrapped in panic-recovery and request-ID
// middleware the way chi-based services in the pack set up routing.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Method(http.MethodPost, "/route", http.HandlerFunc(h.ServeRoute))
	r.Method(http.MethodOptions, "/route", http.HandlerFunc(h.ServePreflight))
	r.Handle("/metrics", promhttp.Handler())

	return r
}
