package repo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/repo"
	"github.com/fjaeril/pdsnd-github/testutil"
)

// newTestStore returns a TripStore inside a transaction that is rolled back
// when the test finishes.
func newTestStore(t *testing.T) repo.TripStore {
	t.Helper()
	return repo.NewTripRepo(testutil.NewTx(t))
}

func mustReadCSV(t *testing.T, city, content string) domain.Dataset {
	t.Helper()
	ds, err := repo.ReadCSV(context.Background(), city, strings.NewReader(content))
	require.NoError(t, err)
	return ds
}

func TestTripRepo_ImportAndLoad(t *testing.T) {
	r := newTestStore(t)
	ctx := context.Background()
	src := mustReadCSV(t, "chicago", chicagoCSV)

	n, err := r.Import(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := r.Load(ctx, "Chicago")
	require.NoError(t, err)
	require.Equal(t, src.Len(), got.Len())
	assert.True(t, got.HasColumn(domain.ColGender))
	assert.True(t, got.HasColumn(domain.ColBirthYear))

	for i := range src.Len() {
		want, have := src.At(i), got.At(i)
		assert.True(t, want.StartTime.Equal(have.StartTime), "row %d start time", i)
		assert.Equal(t, want.StartStation, have.StartStation)
		assert.Equal(t, want.EndStation, have.EndStation)
		assert.Equal(t, want.TripDuration, have.TripDuration)
		assert.Equal(t, want.UserType, have.UserType)
		assert.Equal(t, want.Gender, have.Gender)
		assert.Equal(t, want.BirthYear, have.BirthYear)
		assert.Equal(t, want.StartMonth, have.StartMonth)
		assert.Equal(t, want.StartWeekday, have.StartWeekday)
	}
}

func TestTripRepo_Import_RemembersMissingColumns(t *testing.T) {
	r := newTestStore(t)
	ctx := context.Background()

	_, err := r.Import(ctx, mustReadCSV(t, "washington", washingtonCSV))
	require.NoError(t, err)

	got, err := r.Load(ctx, "washington")
	require.NoError(t, err)
	assert.True(t, got.HasColumn(domain.ColUserType))
	assert.False(t, got.HasColumn(domain.ColGender))
	assert.False(t, got.HasColumn(domain.ColBirthYear))
}

func TestTripRepo_Import_ReplacesPreviousData(t *testing.T) {
	r := newTestStore(t)
	ctx := context.Background()

	_, err := r.Import(ctx, mustReadCSV(t, "chicago", chicagoCSV))
	require.NoError(t, err)
	_, err = r.Import(ctx, mustReadCSV(t, "chicago", washingtonCSV))
	require.NoError(t, err)

	got, err := r.Load(ctx, "chicago")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	assert.False(t, got.HasColumn(domain.ColGender))
}

func TestTripRepo_Load_NotImported(t *testing.T) {
	r := newTestStore(t)

	_, err := r.Load(context.Background(), "new york city")

	require.ErrorIs(t, err, domain.ErrDataUnavailable)
}
