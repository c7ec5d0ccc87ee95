package service_test

import (
	"time"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// allColumns is the schema of a dataset carrying every optional column.
var allColumns = domain.NewColumnSet(
	domain.ColStartTime, domain.ColEndTime, domain.ColStartStation, domain.ColEndStation,
	domain.ColTripDuration, domain.ColUserType, domain.ColGender, domain.ColBirthYear,
)

// baseColumns is the schema of a dataset without demographics.
var baseColumns = domain.NewColumnSet(
	domain.ColStartTime, domain.ColEndTime, domain.ColStartStation, domain.ColEndStation, domain.ColTripDuration,
)

// tripAt returns a record starting at start ("2006-01-02 15:04:05") with
// sensible defaults. Callers override fields as needed.
func tripAt(start string) domain.TripRecord {
	t, err := time.Parse(domain.StartTimeLayout, start)
	if err != nil {
		panic(err)
	}
	return domain.TripRecord{
		StartTime:    t,
		StartStation: "Canal St & Adams St",
		EndStation:   "Clinton St & Madison St",
		TripDuration: 300,
		UserType:     "Subscriber",
	}
}

func year(y int) *int { return &y }

// weekSample holds one trip per day from Monday 2017-01-02 to Sunday 2017-01-08,
// plus the same again in February (Monday 2017-02-06 onwards).
func weekSample() domain.Dataset {
	var recs []domain.TripRecord
	for _, base := range []time.Time{
		time.Date(2017, 1, 2, 9, 0, 0, 0, time.UTC),
		time.Date(2017, 2, 6, 17, 0, 0, 0, time.UTC),
	} {
		for d := 0; d < 7; d++ {
			r := tripAt(base.AddDate(0, 0, d).Format(domain.StartTimeLayout))
			r.TripDuration = float64(60 * (d + 1))
			recs = append(recs, r)
		}
	}
	return domain.NewDataset("chicago", allColumns, recs)
}
