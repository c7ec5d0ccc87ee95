package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/service"
)

func TestStatsService_Summarize(t *testing.T) {
	spec := domain.FilterSpec{City: "chicago"}

	got, err := service.NewStatsService().Summarize(context.Background(), spec, weekSample())

	require.NoError(t, err)
	assert.Equal(t, spec, got.Filter)
	assert.Equal(t, 14, got.Records)
	assert.Equal(t, []int{9, 17}, got.Time.MostCommonHours)
	assert.Equal(t, []string{"Canal St & Adams St"}, got.Stations.MostCommonStartStations)
	assert.Equal(t, 3360.0, got.Durations.TotalSeconds)
	assert.Equal(t, "0:56:00", got.Durations.Total)
	assert.Equal(t, "0:04:00", got.Durations.Mean)
	assert.True(t, got.Users.UserTypes.Available)
	assert.GreaterOrEqual(t, got.Time.Took, time.Duration(0))
}

func TestStatsService_Summarize_EmptyDataset(t *testing.T) {
	empty := domain.NewDataset("chicago", allColumns, nil)

	_, err := service.NewStatsService().Summarize(context.Background(), domain.FilterSpec{City: "chicago"}, empty)

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatsService_Summarize_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.NewStatsService().Summarize(ctx, domain.FilterSpec{City: "chicago"}, weekSample())

	require.ErrorIs(t, err, context.Canceled)
}
