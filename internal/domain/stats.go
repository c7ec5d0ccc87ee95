package domain

import (
	"fmt"
	"time"
)

// ValueCount is the number of records carrying Value.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// TimeStats holds the most frequent times of travel. Each Most* field lists
// every value that reaches the maximum frequency.
type TimeStats struct {
	MostCommonMonths   []string `json:"most_common_months"`
	MostCommonWeekdays []string `json:"most_common_weekdays"`
	MostCommonHours    []int    `json:"most_common_hours"`

	// Trips per month (index 0 = January), weekday (index 0 = Monday) and start hour.
	MonthCounts   [12]int `json:"month_counts"`
	WeekdayCounts [7]int  `json:"weekday_counts"`
	HourCounts    [24]int `json:"hour_counts"`

	Took time.Duration `json:"-"`
}

// StationStats holds the most popular stations and routes.
type StationStats struct {
	MostCommonStartStations []string `json:"most_common_start_stations"`
	MostCommonEndStations   []string `json:"most_common_end_stations"`
	MostCommonRoutes        []string `json:"most_common_routes"`

	Took time.Duration `json:"-"`
}

// DurationStats holds total and mean trip duration.
type DurationStats struct {
	TotalSeconds float64 `json:"total_seconds"`
	MeanSeconds  float64 `json:"mean_seconds"`
	Total        string  `json:"total"` // H:MM:SS
	Mean         string  `json:"mean"`  // H:MM:SS

	Took time.Duration `json:"-"`
}

// Breakdown is the value count of one categorical column. Available is false
// when the dataset has no such column; Counts is then empty.
type Breakdown struct {
	Column    Column       `json:"column"`
	Available bool         `json:"available"`
	Counts    []ValueCount `json:"counts,omitempty"`
}

// Err returns ErrColumnUnavailable, naming the column, when b is not available.
func (b Breakdown) Err() error {
	if b.Available {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrColumnUnavailable, b.Column)
}

// BirthYearStats summarizes the Birth Year column. Available is false when
// the dataset has no Birth Year column or no row carries a value.
type BirthYearStats struct {
	Available  bool  `json:"available"`
	Earliest   int   `json:"earliest,omitempty"`
	MostRecent int   `json:"most_recent,omitempty"`
	MostCommon []int `json:"most_common,omitempty"`
}

// Err returns ErrColumnUnavailable when no birth year could be read.
func (b BirthYearStats) Err() error {
	if b.Available {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrColumnUnavailable, ColBirthYear)
}

// UserStats holds rider demographics. Each part is gated on its own column.
type UserStats struct {
	UserTypes  Breakdown      `json:"user_types"`
	Genders    Breakdown      `json:"genders"`
	BirthYears BirthYearStats `json:"birth_years"`

	Took time.Duration `json:"-"`
}

// Summary groups the four statistics computed over one filtered dataset.
type Summary struct {
	Filter    FilterSpec    `json:"filter"`
	Records   int           `json:"records"`
	Time      TimeStats     `json:"time"`
	Stations  StationStats  `json:"stations"`
	Durations DurationStats `json:"durations"`
	Users     UserStats     `json:"users"`
}
