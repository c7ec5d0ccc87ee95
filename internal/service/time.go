package service

import "github.com/fjaeril/pdsnd-github/internal/domain"

// TimeStats computes the most common start month, weekday and hour of ds,
// along with the per-month, per-weekday and per-hour trip counts.
func TimeStats(ds domain.Dataset) domain.TimeStats {
	var (
		st       domain.TimeStats
		months   = make([]int, 0, ds.Len())
		weekdays = make([]int, 0, ds.Len())
		hours    = make([]int, 0, ds.Len())
	)
	ds.Each(func(r domain.TripRecord) {
		h := r.StartTime.Hour()
		months = append(months, r.StartMonth)
		weekdays = append(weekdays, r.StartWeekday)
		hours = append(hours, h)
		st.MonthCounts[r.StartMonth-1]++
		st.WeekdayCounts[r.StartWeekday]++
		st.HourCounts[h]++
	})

	for _, m := range Mode(months) {
		st.MostCommonMonths = append(st.MostCommonMonths, domain.MonthName(m))
	}
	for _, d := range Mode(weekdays) {
		st.MostCommonWeekdays = append(st.MostCommonWeekdays, domain.WeekdayName(d))
	}
	st.MostCommonHours = Mode(hours)
	return st
}
