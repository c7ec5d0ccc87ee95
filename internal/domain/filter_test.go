package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

func TestFilterSpec_Validate(t *testing.T) {
	ok := []domain.FilterSpec{
		{City: "chicago"},
		{City: "chicago", Month: 12, Weekday: 7},
		{City: "chicago", Month: 1, Weekday: 1},
	}
	for _, f := range ok {
		assert.NoError(t, f.Validate(), "%+v", f)
	}

	bad := []domain.FilterSpec{
		{Month: -1},
		{Month: 13},
		{Weekday: -1},
		{Weekday: 8},
	}
	for _, f := range bad {
		assert.ErrorIs(t, f.Validate(), domain.ErrValidation, "%+v", f)
	}
}

func TestFilterSpec_WeekdayIndex(t *testing.T) {
	assert.Equal(t, -1, domain.FilterSpec{Weekday: 0}.WeekdayIndex())
	assert.Equal(t, 0, domain.FilterSpec{Weekday: 1}.WeekdayIndex())
	assert.Equal(t, 6, domain.FilterSpec{Weekday: 7}.WeekdayIndex())
}

func TestFilterSpec_Labels(t *testing.T) {
	assert.Equal(t, "All", domain.FilterSpec{}.MonthLabel())
	assert.Equal(t, "All", domain.FilterSpec{}.WeekdayLabel())
	assert.Equal(t, "March", domain.FilterSpec{Month: 3}.MonthLabel())
	assert.Equal(t, "Monday", domain.FilterSpec{Weekday: 1}.WeekdayLabel())
	assert.Equal(t, "Sunday", domain.FilterSpec{Weekday: 7}.WeekdayLabel())
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Monday", domain.WeekdayName(0))
	assert.Equal(t, "Sunday", domain.WeekdayName(6))
}

func TestCityTable_Lookup(t *testing.T) {
	cities := domain.DefaultCities()

	c, ok := cities.Lookup("  New York City ")
	assert.True(t, ok)
	assert.Equal(t, "new_york_city.csv", c.File)

	_, ok = cities.Lookup("boston")
	assert.False(t, ok)

	assert.Equal(t, []string{"chicago", "new york city", "washington"}, cities.Names())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "New York City", domain.Title("new york city"))
	assert.Equal(t, "Chicago", domain.Title("CHICAGO"))
	assert.Equal(t, "São Paulo", domain.Title("são paulo"))
	assert.Equal(t, "Östersund", domain.Title("östersund"))
	assert.Equal(t, "Évry", domain.Title("ÉVRY"))
}
