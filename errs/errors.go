// Package errs defines the sentinel errors shared across rowscan packages.
//
// All errors are plain sentinels intended for errors.Is matching. Packages
// wrap them with fmt.Errorf("%w: ...") to attach position information, so
// callers can both match the kind and read the detail:
//
//	result, err := scan.Aggregate(f, []byte("110"))
//	if errors.Is(err, errs.ErrValueParse) {
//	    // matched row carried a non-numeric value field
//	}
package errs

import "errors"

var (
	// ErrLineTooLong indicates a record exceeded the scanner's chunk
	// capacity with no terminator in sight. The scanner's memory bound is
	// fixed, so by default this is fatal; see scan.WithBufferGrowth for
	// the opt-in growth policy.
	ErrLineTooLong = errors.New("line exceeds chunk capacity")

	// ErrMalformedRow indicates a row matched the filter key but did not
	// carry enough fields to reach the value field. Such rows are never
	// skipped: dropping them would silently corrupt the aggregate.
	ErrMalformedRow = errors.New("malformed row: missing value field")

	// ErrValueParse indicates a filter-matched row's value field is not a
	// valid numeric literal.
	ErrValueParse = errors.New("value field is not a valid number")

	// ErrInvalidConfig indicates an option carried an out-of-range value,
	// e.g. a non-positive chunk capacity or a negative field index.
	ErrInvalidConfig = errors.New("invalid scanner configuration")

	// ErrUnknownCodec indicates source.NewReader was asked for a
	// compression codec it does not implement.
	ErrUnknownCodec = errors.New("unknown compression codec")
)
