package service

import (
	"slices"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// UserStats computes rider demographics for ds. User types, genders and
// birth years are each reported only when ds has the matching column.
func UserStats(ds domain.Dataset) domain.UserStats {
	return domain.UserStats{
		UserTypes:  breakdown(ds, domain.ColUserType, func(r domain.TripRecord) string { return r.UserType }),
		Genders:    breakdown(ds, domain.ColGender, func(r domain.TripRecord) string { return r.Gender }),
		BirthYears: birthYears(ds),
	}
}

func breakdown(ds domain.Dataset, col domain.Column, value func(domain.TripRecord) string) domain.Breakdown {
	b := domain.Breakdown{Column: col}
	if !ds.HasColumn(col) {
		return b
	}
	values := make([]string, 0, ds.Len())
	ds.Each(func(r domain.TripRecord) {
		values = append(values, value(r))
	})
	b.Available = true
	b.Counts = ValueCounts(values)
	return b
}

func birthYears(ds domain.Dataset) domain.BirthYearStats {
	if !ds.HasColumn(domain.ColBirthYear) {
		return domain.BirthYearStats{}
	}
	var years []int
	ds.Each(func(r domain.TripRecord) {
		if r.BirthYear != nil {
			years = append(years, *r.BirthYear)
		}
	})
	if len(years) == 0 {
		return domain.BirthYearStats{}
	}
	return domain.BirthYearStats{
		Available:  true,
		Earliest:   slices.Min(years),
		MostRecent: slices.Max(years),
		MostCommon: Mode(years),
	}
}
