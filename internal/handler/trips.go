package handler

import (
	"net/http"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// Pagination describes where a page sits in the filtered dataset.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripsResponse is the body of GET /cities/{city}/trips.
type TripsResponse struct {
	Filter     domain.FilterSpec   `json:"filter"`
	Data       []domain.TripRecord `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

// ListTrips handles GET /cities/{city}/trips.
// Supports the month/weekday filters plus ?page= and ?limit= (defaults:
// page=1, limit=20, max=100). Pages past the end return an empty data array.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	spec, err := s.filterFromRequest(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	params, err := paginationFromRequest(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ds, err := s.loader.Load(r.Context(), spec)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, TripsResponse{
		Filter: spec,
		Data:   ds.Slice(params.Offset(), params.Offset()+params.Limit),
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: ds.Len(),
		},
	})
}
