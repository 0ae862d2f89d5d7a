// Package server exposes a Book over a JSON HTTP API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/etnz/deals"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the deals HTTP API server.
type Server struct {
	book   *deals.Book
	logger *slog.Logger
}

// New creates a new API server over b. A nil logger uses slog.Default().
func New(b *deals.Book, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{book: b, logger: logger}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/deals", func(r chi.Router) {
		r.Post("/", s.handleCreateDeal)
		r.Get("/", s.handleListDeals)
		r.Delete("/{date}/{index}", s.handleDeleteDeal)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/week", s.handleWeek)
		r.Get("/range", s.handleRange)
		r.Get("/month/{month}", s.handleMonth)
	})
	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
