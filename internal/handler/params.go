package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// filterFromRequest builds a FilterSpec from the {city} path parameter and
// the optional month and weekday query parameters.
func (s *Server) filterFromRequest(r *http.Request) (domain.FilterSpec, error) {
	city, ok := s.lookupCity(chi.URLParam(r, "city"))
	if !ok {
		return domain.FilterSpec{}, domain.ErrNotFound
	}

	var month, weekday *int
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "month", query, &month); err != nil {
		return domain.FilterSpec{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "weekday", query, &weekday); err != nil {
		return domain.FilterSpec{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	spec := domain.FilterSpec{City: city.Name}
	if month != nil {
		spec.Month = *month
	}
	if weekday != nil {
		spec.Weekday = *weekday
	}
	if err := spec.Validate(); err != nil {
		return domain.FilterSpec{}, err
	}
	return spec, nil
}

// paginationFromRequest reads the optional page and limit query parameters.
func paginationFromRequest(r *http.Request) (domain.PaginationParams, error) {
	var page, limit *int
	query := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &page); err != nil {
		return domain.PaginationParams{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limit); err != nil {
		return domain.PaginationParams{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return domain.NewPaginationParams(page, limit), nil
}

// lookupCity accepts "new york city" as well as "new_york_city" or "new-york-city".
func (s *Server) lookupCity(raw string) (domain.CitySource, bool) {
	if c, ok := s.cities.Lookup(raw); ok {
		return c, true
	}
	return s.cities.Lookup(strings.NewReplacer("_", " ", "-", " ").Replace(raw))
}
