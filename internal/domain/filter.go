package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// FilterSpec selects which records of which city to analyze.
// Month is 0 (all months) or 1..12. Weekday is 0 (all days) or 1..7 with
// 1 = Monday, one higher than the StartWeekday convention of TripRecord.
type FilterSpec struct {
	City    string `json:"city"`
	Month   int    `json:"month"`
	Weekday int    `json:"weekday"`
}

// Validate checks the month and weekday ranges. The city is checked against
// the configured city table by whoever resolves it.
func (f FilterSpec) Validate() error {
	if f.Month < 0 || f.Month > 12 {
		return fmt.Errorf("%w: month must be between 0 and 12, got %d", ErrValidation, f.Month)
	}
	if f.Weekday < 0 || f.Weekday > 7 {
		return fmt.Errorf("%w: weekday must be between 0 and 7, got %d", ErrValidation, f.Weekday)
	}
	return nil
}

// WeekdayIndex returns the Monday=0 weekday to filter on, or -1 for no filter.
func (f FilterSpec) WeekdayIndex() int {
	return f.Weekday - 1
}

// MonthLabel returns the month name, or "All" when no month filter is set.
func (f FilterSpec) MonthLabel() string {
	if f.Month == 0 {
		return "All"
	}
	return MonthName(f.Month)
}

// WeekdayLabel returns the weekday name, or "All" when no weekday filter is set.
func (f FilterSpec) WeekdayLabel() string {
	if f.Weekday == 0 {
		return "All"
	}
	return WeekdayName(f.WeekdayIndex())
}

// MonthName returns the English name of month m (1..12).
func MonthName(m int) string {
	return time.Month(m).String()
}

// WeekdayName returns the English name of a Monday=0 weekday index.
func WeekdayName(i int) string {
	return time.Weekday((i + 1) % 7).String()
}

// CitySource maps a city name to the file holding its trip records.
type CitySource struct {
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
}

// CityTable is the closed, ordered set of cities that can be analyzed.
type CityTable []CitySource

// DefaultCities is the reference deployment's city table.
func DefaultCities() CityTable {
	return CityTable{
		{Name: "chicago", File: "chicago.csv"},
		{Name: "new york city", File: "new_york_city.csv"},
		{Name: "washington", File: "washington.csv"},
	}
}

// Lookup finds a city by name, ignoring case and surrounding whitespace.
func (t CityTable) Lookup(name string) (CitySource, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, c := range t {
		if strings.ToLower(c.Name) == key {
			return c, true
		}
	}
	return CitySource{}, false
}

// Names returns the city names in table order.
func (t CityTable) Names() []string {
	out := make([]string, len(t))
	for i, c := range t {
		out[i] = c.Name
	}
	return out
}

// Title capitalizes each word of a city name for display ("new york city" -> "New York City").
func Title(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
