// Package repo contains the dataset sources of the bikeshare tool.
// Each source reads one city's trip records and returns them as a
// domain.Dataset with derived calendar fields. No filtering or statistics live here.
package repo

import (
	"context"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// DatasetRepo loads the full, unfiltered dataset of a city.
// The service layer depends on this interface, not the concrete CSV or
// Postgres implementations, which allows it to be unit-tested with a mock.
type DatasetRepo interface {
	// Load returns every trip record of city in source order.
	// Returns domain.ErrNotFound if city is not known to the source and
	// domain.ErrDataUnavailable if its data cannot be located or read.
	Load(ctx context.Context, city string) (domain.Dataset, error)
}
