package domain

import "errors"

// ErrNotFound is returned when a requested city is not part of the configured
// city table. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a filter value is out of range
// (month outside 0..12, weekday outside 0..7, page size below 1).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrCancelled is returned by filter acquisition when the user declines to
// retry an invalid entry or types the cancel keyword. It is a normal outcome
// that ends the current analysis cycle, not a failure.
var ErrCancelled = errors.New("cancelled")

// ErrDataUnavailable is returned by dataset sources when the backing data for
// a city cannot be located, read, or parsed.
// Handlers should map this to HTTP 503.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrColumnUnavailable marks a statistic that cannot be computed because the
// dataset has no such column.
var ErrColumnUnavailable = errors.New("column unavailable")
