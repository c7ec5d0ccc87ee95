// Package report renders statistics and raw records for the console, and
// trip-count charts as HTML.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

const rule = "----------------------------------------"

// Printer writes human-readable reports to w.
type Printer struct {
	w io.Writer
}

// NewPrinter constructs a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Selection echoes the chosen filters before loading starts.
func (p *Printer) Selection(spec domain.FilterSpec) {
	fmt.Fprintf(p.w, "Your selection: City = %s, Month = %s, Weekday = %s\n",
		domain.Title(spec.City), spec.MonthLabel(), spec.WeekdayLabel())
	fmt.Fprintln(p.w, "Loading data...")
}

// NoRecords tells the user that the filters matched nothing.
func (p *Printer) NoRecords(spec domain.FilterSpec) {
	fmt.Fprintf(p.w, "Your filter did not yield any records. Seems like there were no trips made in %s "+
		"for this selection: Month = %s, Weekday = %s\n",
		domain.Title(spec.City), spec.MonthLabel(), spec.WeekdayLabel())
}

// Failure reports an error that ended the current cycle.
func (p *Printer) Failure(spec domain.FilterSpec, err error) {
	fmt.Fprintf(p.w, "ERROR: Data for %s could not be loaded: %v\n", domain.Title(spec.City), err)
}

// Summary prints the four statistics sections.
func (p *Printer) Summary(s domain.Summary) {
	p.section("CALCULATING MOST FREQUENT TIMES OF TRAVEL FOR BIKE RENTALS...", s.Time.Took, func() {
		fmt.Fprintf(p.w, "Most common month(s): %s\n", strings.Join(s.Time.MostCommonMonths, ", "))
		fmt.Fprintf(p.w, "Most common weekday(s): %s\n", strings.Join(s.Time.MostCommonWeekdays, ", "))
		fmt.Fprintf(p.w, "Most common start hour(s): %s\n", joinInts(s.Time.MostCommonHours))
	})

	p.section("CALCULATING THE MOST POPULAR STATIONS AND TRIP...", s.Stations.Took, func() {
		fmt.Fprintf(p.w, "Most common Start Station(s): %s\n", strings.Join(s.Stations.MostCommonStartStations, ", "))
		fmt.Fprintf(p.w, "Most common End Station(s): %s\n", strings.Join(s.Stations.MostCommonEndStations, ", "))
		fmt.Fprintf(p.w, "Most common Start - End station combination(s): %s\n", strings.Join(s.Stations.MostCommonRoutes, ", "))
	})

	p.section("CALCULATING TRIP DURATIONS...", s.Durations.Took, func() {
		fmt.Fprintf(p.w, "Total travel time: %s\n", s.Durations.Total)
		fmt.Fprintf(p.w, "Mean travel time: %s\n", s.Durations.Mean)
	})

	p.section("CALCULATING USER STATS...", s.Users.Took, func() {
		p.breakdown("User Type", s.Users.UserTypes)
		p.breakdown("Gender", s.Users.Genders)

		fmt.Fprintln(p.w, "Birth Year statistics:")
		by := s.Users.BirthYears
		if by.Err() != nil {
			p.unavailable("Birth Year", domain.ColBirthYear)
			return
		}
		fmt.Fprintf(p.w, "     Earliest Birth Year: %d\n", by.Earliest)
		fmt.Fprintf(p.w, "     Most recent Birth Year: %d\n", by.MostRecent)
		fmt.Fprintf(p.w, "     Most common Birth Year(s): %s\n", joinInts(by.MostCommon))
	})
}

// Page prints one page of raw records as an aligned table. Optional columns
// are shown only when cols has them.
func (p *Printer) Page(page domain.Page, cols domain.ColumnSet) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	header := []string{"#", string(domain.ColStartTime), string(domain.ColEndTime), string(domain.ColStartStation),
		string(domain.ColEndStation), string(domain.ColTripDuration)}
	optional := []domain.Column{domain.ColUserType, domain.ColGender, domain.ColBirthYear}
	for _, c := range optional {
		if cols.Has(c) {
			header = append(header, string(c))
		}
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, r := range page.Records {
		row := []string{
			strconv.Itoa(page.Offset + i),
			r.StartTime.Format(domain.StartTimeLayout),
			formatOptionalTime(r.EndTime),
			r.StartStation,
			r.EndStation,
			strconv.FormatFloat(r.TripDuration, 'f', -1, 64),
		}
		if cols.Has(domain.ColUserType) {
			row = append(row, r.UserType)
		}
		if cols.Has(domain.ColGender) {
			row = append(row, r.Gender)
		}
		if cols.Has(domain.ColBirthYear) {
			row = append(row, formatOptionalInt(r.BirthYear))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func (p *Printer) section(title string, took time.Duration, body func()) {
	fmt.Fprintf(p.w, "\n%s\n\n", title)
	body()
	fmt.Fprintf(p.w, "\nThis took %s seconds.\n", strconv.FormatFloat(took.Seconds(), 'f', -1, 64))
	fmt.Fprintln(p.w, rule)
}

func (p *Printer) breakdown(label string, b domain.Breakdown) {
	fmt.Fprintf(p.w, "Counts per %s:\n", label)
	if b.Err() != nil {
		p.unavailable(label, b.Column)
		return
	}
	for _, vc := range b.Counts {
		fmt.Fprintf(p.w, "     %s: %d\n", vc.Value, vc.Count)
	}
}

func (p *Printer) unavailable(label string, col domain.Column) {
	fmt.Fprintf(p.w, "     %s data assessment not possible for this data set. Column '%s' was not found.\n", label, col)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.StartTimeLayout)
}

func formatOptionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
