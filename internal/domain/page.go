package domain

// PaginationParams carries page/limit values from the HTTP layer to the dataset.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of records to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 to keep responses bounded.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based record offset of the first record on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one contiguous window of a dataset.
type Page struct {
	// Number is 1 for the first page.
	Number int
	// Offset is the index of the first record in the dataset.
	Offset  int
	Records []TripRecord
}

// Cursor walks a dataset in fixed-size pages, first page at offset 0.
// Pages are produced only when Next is called, and a Cursor cannot be
// rewound: construct a new one to traverse the dataset again.
type Cursor struct {
	ds     Dataset
	size   int
	offset int
	number int
}

// NewCursor returns a Cursor over ds yielding pages of size records.
// A size below 1 is treated as 1.
func NewCursor(ds Dataset, size int) *Cursor {
	if size < 1 {
		size = 1
	}
	return &Cursor{ds: ds, size: size}
}

// Next returns the next page and true, or a zero Page and false once the
// dataset is exhausted. The final page may hold fewer than size records.
func (c *Cursor) Next() (Page, bool) {
	if c.offset >= c.ds.Len() {
		return Page{}, false
	}
	c.number++
	p := Page{
		Number:  c.number,
		Offset:  c.offset,
		Records: c.ds.Slice(c.offset, c.offset+c.size),
	}
	c.offset += len(p.Records)
	return p, true
}
