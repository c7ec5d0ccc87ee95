package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// GetExport handles GET /cities/{city}/export.
// It returns the filtered records as CSV, using the same column names as the
// source files. Optional columns are included only when the dataset has them.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	spec, err := s.filterFromRequest(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	ds, err := s.loader.Load(r.Context(), spec)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	body := buildCSV(ds)
	name := strings.ReplaceAll(spec.City, " ", "_") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = body.WriteTo(w)
}

// exportColumns lists the columns written for ds in output order.
func exportColumns(ds domain.Dataset) []domain.Column {
	cols := []domain.Column{domain.ColStartTime, domain.ColEndTime, domain.ColStartStation,
		domain.ColEndStation, domain.ColTripDuration}
	for _, c := range []domain.Column{domain.ColUserType, domain.ColGender, domain.ColBirthYear} {
		if ds.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// buildCSV encodes every record of ds, header first.
func buildCSV(ds domain.Dataset) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	cols := exportColumns(ds)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = string(c)
	}
	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(header)
	ds.Each(func(r domain.TripRecord) {
		//nolint:errcheck
		w.Write(recordToCSV(r, cols))
	})
	w.Flush()
	return &buf
}

// recordToCSV encodes a record as a flat string slice in cols order.
// Nil optional values are encoded as empty strings.
func recordToCSV(r domain.TripRecord, cols []domain.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		switch c {
		case domain.ColStartTime:
			out[i] = r.StartTime.Format(domain.StartTimeLayout)
		case domain.ColEndTime:
			out[i] = formatOptionalTime(r.EndTime)
		case domain.ColStartStation:
			out[i] = r.StartStation
		case domain.ColEndStation:
			out[i] = r.EndStation
		case domain.ColTripDuration:
			out[i] = strconv.FormatFloat(r.TripDuration, 'f', -1, 64)
		case domain.ColUserType:
			out[i] = r.UserType
		case domain.ColGender:
			out[i] = r.Gender
		case domain.ColBirthYear:
			if r.BirthYear != nil {
				out[i] = strconv.Itoa(*r.BirthYear)
			}
		}
	}
	return out
}

// formatOptionalTime returns t in the source timestamp layout, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(domain.StartTimeLayout)
}
