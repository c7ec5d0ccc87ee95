package service

import "github.com/fjaeril/pdsnd-github/internal/domain"

// Filter narrows ds to the records started in month (1..12) and on weekday0
// (Monday=0). month 0 and weekday0 below 0 disable the respective filter.
// The result keeps the original record order; ds itself is not modified.
func Filter(ds domain.Dataset, month, weekday0 int) domain.Dataset {
	if month <= 0 && weekday0 < 0 {
		return ds
	}
	return ds.Where(func(r domain.TripRecord) bool {
		if month > 0 && r.StartMonth != month {
			return false
		}
		if weekday0 >= 0 && r.StartWeekday != weekday0 {
			return false
		}
		return true
	})
}

// FilterBy applies the month and weekday of spec to ds.
func FilterBy(ds domain.Dataset, spec domain.FilterSpec) domain.Dataset {
	return Filter(ds, spec.Month, spec.WeekdayIndex())
}
