package group

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/rowscan/rowscan/errs"
	"github.com/rowscan/rowscan/scan"
)

// Stats holds the running statistics for one key.
type Stats struct {
	Min   float64
	Max   float64
	Sum   float64
	Count int64
}

// Average returns Sum/Count, or NaN when the key matched no record.
func (s Stats) Average() float64 {
	if s.Count == 0 {
		return math.NaN()
	}

	return s.Sum / float64(s.Count)
}

// Aggregate performs one streaming pass over r and returns per-key
// statistics for every distinct value of the filter column.
//
// It accepts the same options as scan.Aggregate; WithFilterField selects
// the key column and WithValueField the numeric column. Records too short
// to carry a key column are skipped, while a record whose value column is
// missing or unparseable fails the scan with a scan.RowError, exactly as
// in the single-key case. On error the returned map is nil.
func Aggregate(r io.Reader, opts ...scan.Option) (map[string]Stats, error) {
	cfg, err := scan.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	s := scan.NewScannerWithConfig(r, cfg)
	defer s.Release()

	var (
		in    = newInterner()
		stats []Stats
		delim = cfg.Delimiter()
	)

	for line := range s.Lines() {
		// Blank lines carry no key at all; skip them rather than grouping
		// them under the empty string.
		if len(line) == 0 {
			continue
		}
		key, ok := scan.FieldAt(line, delim, cfg.FilterField())
		if !ok {
			continue
		}

		value, ok := scan.FieldAt(line, delim, cfg.ValueField())
		if !ok {
			return nil, &scan.RowError{Line: s.Line(), Offset: s.Offset(), Err: errs.ErrMalformedRow}
		}
		v, perr := strconv.ParseFloat(string(value), 64)
		if perr != nil {
			return nil, &scan.RowError{
				Line:   s.Line(),
				Offset: s.Offset(),
				Err:    fmt.Errorf("%w: %q", errs.ErrValueParse, value),
			}
		}

		id := in.intern(key)
		if int(id) == len(stats) {
			stats = append(stats, Stats{Min: v, Max: v, Sum: v, Count: 1})
			continue
		}

		st := &stats[id]
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
		st.Sum += v
		st.Count++
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	out := make(map[string]Stats, len(stats))
	for id, st := range stats {
		out[in.keys[id]] = st
	}

	return out, nil
}
