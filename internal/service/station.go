package service

import "github.com/fjaeril/pdsnd-github/internal/domain"

// StationStats computes the most common start station, end station and
// start/end route of ds.
func StationStats(ds domain.Dataset) domain.StationStats {
	starts := make([]string, 0, ds.Len())
	ends := make([]string, 0, ds.Len())
	routes := make([]string, 0, ds.Len())
	ds.Each(func(r domain.TripRecord) {
		starts = append(starts, r.StartStation)
		ends = append(ends, r.EndStation)
		routes = append(routes, r.Route())
	})
	return domain.StationStats{
		MostCommonStartStations: Mode(starts),
		MostCommonEndStations:   Mode(ends),
		MostCommonRoutes:        Mode(routes),
	}
}
