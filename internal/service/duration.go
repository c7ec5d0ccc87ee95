package service

import (
	"fmt"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// DurationStats computes the total and mean trip duration of ds.
// ds must not be empty; callers skip statistics for empty datasets.
func DurationStats(ds domain.Dataset) domain.DurationStats {
	var total float64
	ds.Each(func(r domain.TripRecord) {
		total += r.TripDuration
	})
	mean := total / float64(ds.Len())
	return domain.DurationStats{
		TotalSeconds: total,
		MeanSeconds:  mean,
		Total:        FormatDuration(total),
		Mean:         FormatDuration(mean),
	}
}

// FormatDuration renders seconds as H:MM:SS, prefixed with "N day(s), " for
// spans of a day or more. Fractional seconds are truncated.
func FormatDuration(seconds float64) string {
	s := int64(seconds)
	sign := ""
	if s < 0 {
		sign, s = "-", -s
	}
	days := s / 86400
	s %= 86400
	hms := fmt.Sprintf("%d:%02d:%02d", s/3600, s%3600/60, s%60)
	switch days {
	case 0:
		return sign + hms
	case 1:
		return sign + "1 day, " + hms
	default:
		return fmt.Sprintf("%s%d days, %s", sign, days, hms)
	}
}
