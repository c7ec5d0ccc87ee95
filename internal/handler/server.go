// Package handler implements the read-only HTTP report API.
// All handlers are methods on Server. Methods are split into topic files
// (health.go, stats.go, trips.go, export.go) but share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// DatasetLoader defines the loading operation the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching files or the database.
type DatasetLoader interface {
	Load(ctx context.Context, spec domain.FilterSpec) (domain.Dataset, error)
}

// StatsEngine reduces a non-empty dataset to a Summary.
type StatsEngine interface {
	Summarize(ctx context.Context, spec domain.FilterSpec, ds domain.Dataset) (domain.Summary, error)
}

// Server holds the dependencies shared by all endpoints.
type Server struct {
	loader DatasetLoader
	stats  StatsEngine
	cities domain.CityTable
}

// NewServer constructs the Server with all its dependencies.
func NewServer(loader DatasetLoader, stats StatsEngine, cities domain.CityTable) *Server {
	return &Server{loader: loader, stats: stats, cities: cities}
}

// Routes returns a router serving every endpoint. Mount it under "/".
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/cities", s.ListCities)
	r.Route("/cities/{city}", func(r chi.Router) {
		r.Get("/stats", s.GetStats)
		r.Get("/trips", s.ListTrips)
		r.Get("/export", s.GetExport)
	})
	return r
}
