// Package service contains the filtering and statistics logic of the bikeshare tool.
// Services validate inputs, apply filters, and reduce datasets to statistics.
// No file or SQL access lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/repo"
)

// LoaderService loads a city's dataset and applies a FilterSpec to it.
type LoaderService struct {
	repo repo.DatasetRepo
	log  *slog.Logger
}

// NewLoaderService constructs a LoaderService backed by the provided DatasetRepo.
func NewLoaderService(r repo.DatasetRepo, log *slog.Logger) *LoaderService {
	return &LoaderService{repo: r, log: log}
}

// Load validates spec, reads the city's records and returns those matching
// the month and weekday filters.
// Returns domain.ErrValidation for out-of-range filters, domain.ErrNotFound
// for an unknown city, and domain.ErrDataUnavailable when the data cannot be read.
// An empty dataset is a valid result.
func (s *LoaderService) Load(ctx context.Context, spec domain.FilterSpec) (domain.Dataset, error) {
	if err := spec.Validate(); err != nil {
		return domain.Dataset{}, fmt.Errorf("service.LoaderService.Load: %w", err)
	}
	raw, err := s.repo.Load(ctx, spec.City)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("service.LoaderService.Load: %w", err)
	}
	filtered := FilterBy(raw, spec)
	s.log.DebugContext(ctx, "dataset loaded",
		"city", spec.City,
		"month", spec.Month,
		"weekday", spec.Weekday,
		"records", raw.Len(),
		"matched", filtered.Len(),
	)
	return filtered, nil
}
