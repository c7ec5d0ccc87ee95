// Package domain contains the core data types for the bikeshare statistics tool.
// Apart from the standard library this package has no dependencies and is
// imported by every other internal package (repo, service, session, handler).
package domain

import "time"

// StartTimeLayout is the timestamp format used by the city CSV files.
const StartTimeLayout = "2006-01-02 15:04:05"

// TripRecord is one ride observation from a city dataset.
//
// UserType and Gender are empty when the row has no value; BirthYear is nil.
// Whether the column exists at all is a dataset-level fact, see ColumnSet.
type TripRecord struct {
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	StartStation string     `json:"start_station"`
	EndStation   string     `json:"end_station"`
	TripDuration float64    `json:"trip_duration"` // seconds
	UserType     string     `json:"user_type,omitempty"`
	Gender       string     `json:"gender,omitempty"`
	BirthYear    *int       `json:"birth_year,omitempty"`

	// Derived from StartTime when the record enters a Dataset.
	StartMonth   int `json:"start_month"`   // 1..12
	StartWeekday int `json:"start_weekday"` // Monday=0 .. Sunday=6
}

// Route returns the "start --> end" station pair used for route popularity.
func (r TripRecord) Route() string {
	return r.StartStation + RouteSeparator + r.EndStation
}

// RouteSeparator joins start and end station names in a route.
const RouteSeparator = " --> "

// WeekdayIndex converts a time.Weekday (Sunday=0) to the Monday=0 convention.
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// derive fills StartMonth and StartWeekday from StartTime.
func (r *TripRecord) derive() {
	r.StartMonth = int(r.StartTime.Month())
	r.StartWeekday = WeekdayIndex(r.StartTime.Weekday())
}
