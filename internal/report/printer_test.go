package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjaeril/pdsnd-github/internal/domain"
	"github.com/fjaeril/pdsnd-github/internal/report"
)

func summaryFixture() domain.Summary {
	return domain.Summary{
		Filter:  domain.FilterSpec{City: "new york city", Month: 6},
		Records: 3,
		Time: domain.TimeStats{
			MostCommonMonths:   []string{"June"},
			MostCommonWeekdays: []string{"Friday", "Saturday"},
			MostCommonHours:    []int{8, 17},
			Took:               250 * time.Millisecond,
		},
		Stations: domain.StationStats{
			MostCommonStartStations: []string{"Pershing Square North"},
			MostCommonEndStations:   []string{"W 21 St & 6 Ave"},
			MostCommonRoutes:        []string{"Pershing Square North --> W 21 St & 6 Ave"},
		},
		Durations: domain.DurationStats{Total: "1 day, 2:03:04", Mean: "0:15:00"},
		Users: domain.UserStats{
			UserTypes: domain.Breakdown{
				Column:    domain.ColUserType,
				Available: true,
				Counts:    []domain.ValueCount{{Value: "Subscriber", Count: 2}, {Value: "Customer", Count: 1}},
			},
			Genders:    domain.Breakdown{Column: domain.ColGender},
			BirthYears: domain.BirthYearStats{},
		},
	}
}

func TestPrinter_Summary(t *testing.T) {
	var buf bytes.Buffer

	report.NewPrinter(&buf).Summary(summaryFixture())

	out := buf.String()
	assert.Contains(t, out, "Most common month(s): June\n")
	assert.Contains(t, out, "Most common weekday(s): Friday, Saturday\n")
	assert.Contains(t, out, "Most common start hour(s): 8, 17\n")
	assert.Contains(t, out, "Most common Start - End station combination(s): Pershing Square North --> W 21 St & 6 Ave\n")
	assert.Contains(t, out, "Total travel time: 1 day, 2:03:04\n")
	assert.Contains(t, out, "     Subscriber: 2\n")
	assert.Contains(t, out, "This took 0.25 seconds.")
	assert.Contains(t, out, "Gender data assessment not possible for this data set. Column 'Gender' was not found.")
	assert.Contains(t, out, "Birth Year data assessment not possible for this data set. Column 'Birth Year' was not found.")
	assert.Equal(t, 4, strings.Count(out, "This took"))
}

func TestPrinter_SummaryWithBirthYears(t *testing.T) {
	s := summaryFixture()
	s.Users.BirthYears = domain.BirthYearStats{Available: true, Earliest: 1899, MostRecent: 2001, MostCommon: []int{1989}}
	var buf bytes.Buffer

	report.NewPrinter(&buf).Summary(s)

	assert.Contains(t, buf.String(), "Earliest Birth Year: 1899")
	assert.Contains(t, buf.String(), "Most recent Birth Year: 2001")
	assert.Contains(t, buf.String(), "Most common Birth Year(s): 1989")
}

func TestPrinter_Messages(t *testing.T) {
	spec := domain.FilterSpec{City: "chicago", Weekday: 7}
	var buf bytes.Buffer
	p := report.NewPrinter(&buf)

	p.Selection(spec)
	p.NoRecords(spec)
	p.Failure(spec, errors.New("disk on fire"))

	out := buf.String()
	assert.Contains(t, out, "Your selection: City = Chicago, Month = All, Weekday = Sunday")
	assert.Contains(t, out, "no trips made in Chicago")
	assert.Contains(t, out, "ERROR: Data for Chicago could not be loaded: disk on fire")
}

func TestPrinter_Page(t *testing.T) {
	start := time.Date(2017, 6, 23, 15, 9, 32, 0, time.UTC)
	year := 1992
	page := domain.Page{
		Number: 2,
		Offset: 5,
		Records: []domain.TripRecord{
			{StartTime: start, StartStation: "A", EndStation: "B", TripDuration: 321, UserType: "Subscriber", BirthYear: &year},
		},
	}
	cols := domain.NewColumnSet(domain.ColStartTime, domain.ColEndTime, domain.ColStartStation,
		domain.ColEndStation, domain.ColTripDuration, domain.ColUserType, domain.ColBirthYear)
	var buf bytes.Buffer

	report.NewPrinter(&buf).Page(page, cols)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "User Type")
	assert.Contains(t, lines[0], "Birth Year")
	assert.NotContains(t, lines[0], "Gender")
	assert.True(t, strings.HasPrefix(lines[1], "5 "))
	assert.Contains(t, lines[1], "2017-06-23 15:09:32")
	assert.Contains(t, lines[1], "Subscriber")
	assert.Contains(t, lines[1], "1992")
}
