package domain

// Column is the header name of a dataset column.
type Column string

// Columns present in city CSV files. The first five are required.
const (
	ColStartTime    Column = "Start Time"
	ColEndTime      Column = "End Time"
	ColStartStation Column = "Start Station"
	ColEndStation   Column = "End Station"
	ColTripDuration Column = "Trip Duration"
	ColUserType     Column = "User Type"
	ColGender       Column = "Gender"
	ColBirthYear    Column = "Birth Year"
)

// RequiredColumns must be present in every dataset.
var RequiredColumns = []Column{ColStartTime, ColStartStation, ColEndStation, ColTripDuration}

// ColumnSet records which columns a dataset carries. The zero value has none.
type ColumnSet map[Column]bool

// NewColumnSet returns a ColumnSet containing cols.
func NewColumnSet(cols ...Column) ColumnSet {
	s := make(ColumnSet, len(cols))
	for _, c := range cols {
		s[c] = true
	}
	return s
}

// Has reports whether c is present.
func (s ColumnSet) Has(c Column) bool {
	return s[c]
}

// Missing returns the required columns absent from s, in RequiredColumns order.
func (s ColumnSet) Missing() []Column {
	var out []Column
	for _, c := range RequiredColumns {
		if !s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Dataset is an ordered, immutable collection of trip records for one city.
// Records carry their derived StartMonth and StartWeekday. Operations that
// narrow a dataset return a new Dataset and leave the receiver untouched.
type Dataset struct {
	city    string
	columns ColumnSet
	records []TripRecord
}

// NewDataset copies records, derives calendar fields from each StartTime,
// and returns the resulting Dataset.
func NewDataset(city string, columns ColumnSet, records []TripRecord) Dataset {
	out := make([]TripRecord, len(records))
	copy(out, records)
	for i := range out {
		out[i].derive()
	}
	cols := make(ColumnSet, len(columns))
	for c, ok := range columns {
		cols[c] = ok
	}
	return Dataset{city: city, columns: cols, records: out}
}

// City returns the name of the city the records belong to.
func (d Dataset) City() string { return d.city }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// IsEmpty reports whether the dataset has no records.
func (d Dataset) IsEmpty() bool { return len(d.records) == 0 }

// HasColumn reports whether the dataset's schema includes c.
func (d Dataset) HasColumn(c Column) bool { return d.columns.Has(c) }

// Columns returns a copy of the dataset's column set.
func (d Dataset) Columns() ColumnSet {
	cols := make(ColumnSet, len(d.columns))
	for c, ok := range d.columns {
		cols[c] = ok
	}
	return cols
}

// At returns the i-th record.
func (d Dataset) At(i int) TripRecord { return d.records[i] }

// Each calls fn for every record in order.
func (d Dataset) Each(fn func(TripRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Records returns a copy of all records in order.
func (d Dataset) Records() []TripRecord {
	return d.Slice(0, len(d.records))
}

// Slice returns a copy of records [lo, hi), clamped to the dataset bounds.
func (d Dataset) Slice(lo, hi int) []TripRecord {
	lo = max(0, min(lo, len(d.records)))
	hi = max(lo, min(hi, len(d.records)))
	out := make([]TripRecord, hi-lo)
	copy(out, d.records[lo:hi])
	return out
}

// Where returns a new Dataset holding the records for which keep returns
// true, in their original order. Derived fields are carried over unchanged.
func (d Dataset) Where(keep func(TripRecord) bool) Dataset {
	out := make([]TripRecord, 0, len(d.records))
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Dataset{city: d.city, columns: d.columns, records: out}
}
