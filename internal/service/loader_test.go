package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/repo"
	"github.com/fjaeril/pdsnd-github/internal/service"
)

// mockDatasetRepo is a test double for repo.DatasetRepo.
type mockDatasetRepo struct {
	loadFn func(ctx context.Context, city string) (domain.Dataset, error)
	calls  int
}

var _ repo.DatasetRepo = (*mockDatasetRepo)(nil)

func (m *mockDatasetRepo) Load(ctx context.Context, city string) (domain.Dataset, error) {
	m.calls++
	return m.loadFn(ctx, city)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoaderService_Load_AppliesFilters(t *testing.T) {
	mock := &mockDatasetRepo{
		loadFn: func(_ context.Context, city string) (domain.Dataset, error) {
			assert.Equal(t, "chicago", city)
			return weekSample(), nil
		},
	}
	svc := service.NewLoaderService(mock, discardLogger())

	ds, err := svc.Load(context.Background(), domain.FilterSpec{City: "chicago", Month: 1, Weekday: 1})

	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "2017-01-02 09:00:00", ds.At(0).StartTime.Format(domain.StartTimeLayout))
}

func TestLoaderService_Load_EmptyMatchIsNotAnError(t *testing.T) {
	mock := &mockDatasetRepo{
		loadFn: func(context.Context, string) (domain.Dataset, error) { return weekSample(), nil },
	}
	svc := service.NewLoaderService(mock, discardLogger())

	ds, err := svc.Load(context.Background(), domain.FilterSpec{City: "chicago", Month: 12})

	require.NoError(t, err)
	assert.True(t, ds.IsEmpty())
}

func TestLoaderService_Load_InvalidFilterSkipsRepo(t *testing.T) {
	mock := &mockDatasetRepo{}
	svc := service.NewLoaderService(mock, discardLogger())

	_, err := svc.Load(context.Background(), domain.FilterSpec{City: "chicago", Month: 13})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, mock.calls)
}

func TestLoaderService_Load_PropagatesRepoErrors(t *testing.T) {
	for _, want := range []error{domain.ErrNotFound, domain.ErrDataUnavailable} {
		mock := &mockDatasetRepo{
			loadFn: func(context.Context, string) (domain.Dataset, error) { return domain.Dataset{}, want },
		}
		svc := service.NewLoaderService(mock, discardLogger())

		_, err := svc.Load(context.Background(), domain.FilterSpec{City: "paris"})

		require.ErrorIs(t, err, want)
	}
}
