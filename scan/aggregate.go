package scan

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rowscan/rowscan/errs"
)

// Result is the outcome of one aggregation pass: the sum of all matched
// value fields and the number of matched records.
type Result struct {
	Sum   float64
	Count int64
}

// Average returns Sum/Count, or NaN when no record matched.
func (r Result) Average() float64 {
	if r.Count == 0 {
		return math.NaN()
	}

	return r.Sum / float64(r.Count)
}

// RowError reports a record-level failure together with the position of
// the offending record, so corrupt input can be located. It wraps one of
// the errs sentinels for errors.Is matching.
type RowError struct {
	Line   int64 // 1-based record number
	Offset int64 // source byte offset of the record's first byte
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("record %d (byte offset %d): %v", e.Line, e.Offset, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Aggregate performs one streaming pass over r, summing the value field of
// every record whose filter field equals target byte-for-byte.
//
// The filter comparison runs before any numeric work: records whose filter
// field differs from target are skipped without parsing. Records too short
// to carry a filter field cannot match and are likewise skipped, which is
// also what naturally happens to a header line whose filter column is a
// column name. Callers whose header could collide with target should skip
// the first line themselves.
//
// A record that matches the filter but is missing its value field fails
// the scan with errs.ErrMalformedRow, and a matched value field that is
// not a valid numeric literal fails it with errs.ErrValueParse; both are
// wrapped in a RowError carrying the record's position. Silently skipping
// either would make the aggregate wrong without any sign of trouble.
//
// On any error the returned Result is zero: a partial aggregate over
// corrupt or unfinished input is not meaningful.
func Aggregate(r io.Reader, target []byte, opts ...Option) (Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Result{}, err
	}

	s := NewScannerWithConfig(r, cfg)
	defer s.Release()

	var res Result
	for line := range s.Lines() {
		key, ok := FieldAt(line, cfg.delimiter, cfg.filterField)
		if !ok || !bytes.Equal(key, target) {
			continue
		}

		value, ok := FieldAt(line, cfg.delimiter, cfg.valueField)
		if !ok {
			return Result{}, &RowError{Line: s.Line(), Offset: s.Offset(), Err: errs.ErrMalformedRow}
		}

		// The only copy in the pipeline: ParseFloat needs a string, and
		// the span dies at the next refill anyway.
		v, perr := strconv.ParseFloat(string(value), 64)
		if perr != nil {
			return Result{}, &RowError{
				Line:   s.Line(),
				Offset: s.Offset(),
				Err:    fmt.Errorf("%w: %q", errs.ErrValueParse, value),
			}
		}

		res.Sum += v
		res.Count++
	}
	if err := s.Err(); err != nil {
		return Result{}, err
	}

	return res, nil
}
