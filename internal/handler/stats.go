package handler

import (
	"net/http"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// CitiesResponse is the body of GET /cities.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// EmptyResponse is returned instead of statistics when no record matches.
type EmptyResponse struct {
	Filter  domain.FilterSpec `json:"filter"`
	Records int               `json:"records"`
	Message string            `json:"message"`
}

// ListCities handles GET /cities.
func (s *Server) ListCities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, CitiesResponse{Cities: s.cities.Names()})
}

// GetStats handles GET /cities/{city}/stats.
// Supports ?month= (1..12) and ?weekday= (1 = Monday .. 7 = Sunday); 0 or
// absent means no filter. When nothing matches, statistics are not computed
// and an EmptyResponse is returned with HTTP 200.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	spec, err := s.filterFromRequest(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ds, err := s.loader.Load(r.Context(), spec)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if ds.IsEmpty() {
		writeJSON(w, http.StatusOK, EmptyResponse{Filter: spec, Records: 0, Message: "no records matched"})
		return
	}

	sum, err := s.stats.Summarize(r.Context(), spec, ds)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
