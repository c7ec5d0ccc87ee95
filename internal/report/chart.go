package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// WriteChart renders an HTML page with bar charts of trips per month,
// weekday and start hour for the dataset summarized in s.
func WriteChart(w io.Writer, s domain.Summary) error {
	subtitle := fmt.Sprintf("%s, month: %s, weekday: %s, %d trips",
		domain.Title(s.Filter.City), s.Filter.MonthLabel(), s.Filter.WeekdayLabel(), s.Records)

	months := make([]string, 12)
	for i := range months {
		months[i] = domain.MonthName(i + 1)
	}
	weekdays := make([]string, 7)
	for i := range weekdays {
		weekdays[i] = domain.WeekdayName(i)
	}
	hours := make([]string, 24)
	for i := range hours {
		hours[i] = strconv.Itoa(i)
	}

	page := components.NewPage()
	page.AddCharts(
		barChart("Trips per month", subtitle, months, s.Time.MonthCounts[:]),
		barChart("Trips per weekday", subtitle, weekdays, s.Time.WeekdayCounts[:]),
		barChart("Trips per start hour", subtitle, hours, s.Time.HourCounts[:]),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report.WriteChart: %w", err)
	}
	return nil
}

func barChart(title, subtitle string, labels []string, counts []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bikeshare trips",
			Width:     "900px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
	)

	data := make([]opts.BarData, len(counts))
	for i, n := range counts {
		data[i] = opts.BarData{Value: n}
	}
	bar.SetXAxis(labels).AddSeries("Trips", data)
	return bar
}
