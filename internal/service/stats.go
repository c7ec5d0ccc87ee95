package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// StatsService runs the four analyzers over a filtered dataset.
// The analyzers only read the dataset, so they run concurrently.
type StatsService struct {
	now func() time.Time
}

// NewStatsService constructs a StatsService.
func NewStatsService() *StatsService {
	return &StatsService{now: time.Now}
}

// Summarize computes time, station, duration and user statistics for ds.
// ds must not be empty. Each section records how long it took.
func (s *StatsService) Summarize(ctx context.Context, spec domain.FilterSpec, ds domain.Dataset) (domain.Summary, error) {
	if ds.IsEmpty() {
		return domain.Summary{}, fmt.Errorf("service.StatsService.Summarize: %w: empty dataset", domain.ErrValidation)
	}

	sum := domain.Summary{Filter: spec, Records: ds.Len()}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := s.now()
		sum.Time = TimeStats(ds)
		sum.Time.Took = s.now().Sub(start)
		return ctx.Err()
	})
	g.Go(func() error {
		start := s.now()
		sum.Stations = StationStats(ds)
		sum.Stations.Took = s.now().Sub(start)
		return ctx.Err()
	})
	g.Go(func() error {
		start := s.now()
		sum.Durations = DurationStats(ds)
		sum.Durations.Took = s.now().Sub(start)
		return ctx.Err()
	})
	g.Go(func() error {
		start := s.now()
		sum.Users = UserStats(ds)
		sum.Users.Took = s.now().Sub(start)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return domain.Summary{}, fmt.Errorf("service.StatsService.Summarize: %w", err)
	}
	return sum, nil
}
