package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjaeril/pdsnd-github/internal/report"
)

func TestWriteChart(t *testing.T) {
	s := summaryFixture()
	s.Time.MonthCounts[5] = 3
	s.Time.HourCounts[17] = 2
	var buf bytes.Buffer

	err := report.WriteChart(&buf, s)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Trips per month")
	assert.Contains(t, out, "Trips per weekday")
	assert.Contains(t, out, "Trips per start hour")
	assert.Contains(t, out, "New York City")
}
