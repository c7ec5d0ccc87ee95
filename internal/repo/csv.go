package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/fjaeril/pdsnd-github/internal/domain"
)

// csvRepo reads one CSV file per city from a data directory. Each file is
// parsed once; the resulting Dataset is immutable and shared by later loads.
type csvRepo struct {
	dir    string
	cities domain.CityTable

	mu    sync.Mutex
	cache map[string]domain.Dataset
	group singleflight.Group
}

// NewCSVRepo constructs a DatasetRepo reading the files named in cities,
// relative to dir.
func NewCSVRepo(dir string, cities domain.CityTable) DatasetRepo {
	return &csvRepo{dir: dir, cities: cities, cache: make(map[string]domain.Dataset)}
}

// Load returns the city's dataset, parsing its file on first use.
// Concurrent first loads of the same city share one parse. Failed loads are
// not remembered, so a file that appears later is picked up.
func (r *csvRepo) Load(ctx context.Context, city string) (domain.Dataset, error) {
	src, ok := r.cities.Lookup(city)
	if !ok {
		return domain.Dataset{}, fmt.Errorf("repo.CSVRepo.Load: city %q: %w", city, domain.ErrNotFound)
	}

	r.mu.Lock()
	ds, hit := r.cache[src.Name]
	r.mu.Unlock()
	if hit {
		return ds, nil
	}

	v, err, _ := r.group.Do(src.Name, func() (any, error) {
		ds, err := r.read(ctx, src)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.cache[src.Name] = ds
		r.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return domain.Dataset{}, err
	}
	return v.(domain.Dataset), nil
}

// read opens the city's file and parses every row.
func (r *csvRepo) read(ctx context.Context, src domain.CitySource) (domain.Dataset, error) {
	path := src.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.CSVRepo.Load: %w: %v", domain.ErrDataUnavailable, err)
	}
	defer f.Close()

	ds, err := ReadCSV(ctx, src.Name, f)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("repo.CSVRepo.Load: %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses trip records from rd. The first row is the header; columns
// are located by name, so their order does not matter and unknown columns
// (such as a leading unnamed index) are ignored. Missing required columns or
// malformed values yield domain.ErrDataUnavailable.
func ReadCSV(ctx context.Context, city string, rd io.Reader) (domain.Dataset, error) {
	cr := csv.NewReader(rd)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("%w: read header: %v", domain.ErrDataUnavailable, err)
	}
	idx := make(map[domain.Column]int, len(header))
	cols := domain.NewColumnSet()
	for i, name := range header {
		c := domain.Column(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		idx[c] = i
		cols[c] = true
	}
	if missing := cols.Missing(); len(missing) > 0 {
		return domain.Dataset{}, fmt.Errorf("%w: missing required columns %v", domain.ErrDataUnavailable, missing)
	}

	var records []domain.TripRecord
	for line := 2; ; line++ {
		if line%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return domain.Dataset{}, err
			}
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: %v", domain.ErrDataUnavailable, err)
		}
		rec, err := parseRow(row, idx, cols)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%w: line %d: %v", domain.ErrDataUnavailable, line, err)
		}
		records = append(records, rec)
	}
	return domain.NewDataset(city, cols, records), nil
}

// parseRow maps one CSV row to a TripRecord. Optional fields are left at
// their zero value when the column is absent or the cell is blank.
func parseRow(row []string, idx map[domain.Column]int, cols domain.ColumnSet) (domain.TripRecord, error) {
	field := func(c domain.Column) string {
		i, ok := idx[c]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec domain.TripRecord
	start, err := parseTimestamp(field(domain.ColStartTime))
	if err != nil {
		return rec, fmt.Errorf("%s: %w", domain.ColStartTime, err)
	}
	rec.StartTime = start

	// End Time is informational only; an unreadable cell is left empty.
	if v := field(domain.ColEndTime); v != "" {
		if end, err := parseTimestamp(v); err == nil {
			rec.EndTime = &end
		}
	}

	rec.StartStation = field(domain.ColStartStation)
	rec.EndStation = field(domain.ColEndStation)

	dur, err := parseFinite(field(domain.ColTripDuration))
	if err != nil {
		return rec, fmt.Errorf("%s: %w", domain.ColTripDuration, err)
	}
	if dur < 0 {
		return rec, fmt.Errorf("%s: negative duration %v", domain.ColTripDuration, dur)
	}
	rec.TripDuration = dur

	if cols.Has(domain.ColUserType) {
		rec.UserType = field(domain.ColUserType)
	}
	if cols.Has(domain.ColGender) {
		rec.Gender = field(domain.ColGender)
	}
	if v := field(domain.ColBirthYear); v != "" {
		y, err := parseFinite(v)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", domain.ColBirthYear, err)
		}
		year := int(y)
		rec.BirthYear = &year
	}
	return rec, nil
}

// parseFinite parses s as a float, refusing NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}

// timestampLayouts are tried in order; the first is what the city files use.
var timestampLayouts = []string{
	domain.StartTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

func parseTimestamp(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
