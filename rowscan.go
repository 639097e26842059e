// Package rowscan computes aggregates over one numeric column of very
// large delimited text files, in a single streaming pass with bounded,
// constant memory.
//
// The core is a chunked scanner that yields each record as a zero-copy
// span over a fixed-capacity buffer, a zero-allocation field tokenizer,
// and a filter/fold step that sums a value column for records whose filter
// column equals a target key byte-for-byte. Files far larger than memory
// scan in one pass; only the chunk buffer (1 MiB by default) is held.
//
// # Basic Usage
//
// Average the 3rd column over rows whose 2nd column equals "110":
//
//	import "github.com/rowscan/rowscan"
//
//	avg, err := rowscan.AverageFile("trades.csv", "110")
//
// With explicit configuration:
//
//	result, err := rowscan.ScanFile("trades.csv", "110",
//	    scan.WithFilterField(1),
//	    scan.WithValueField(2),
//	    scan.WithChunkCapacity(4<<20),
//	)
//	fmt.Println(result.Sum, result.Count, result.Average())
//
// Per-key statistics over every distinct key (1BRC style):
//
//	stats, err := rowscan.GroupFile("measurements.csv")
//
// Compressed inputs (.zst, .gz, .s2, .lz4) are decompressed on the fly.
//
// # Package Structure
//
// This package provides convenient wrappers around the scan, group and
// source packages. Use those directly for io.Reader inputs or
// finer-grained control.
package rowscan

import (
	"github.com/rowscan/rowscan/group"
	"github.com/rowscan/rowscan/scan"
	"github.com/rowscan/rowscan/source"
)

// ScanFile opens the file at path (decompressing by extension) and returns
// the sum and count of the value field over records whose filter field
// equals target.
func ScanFile(path string, target string, opts ...scan.Option) (scan.Result, error) {
	rc, err := source.Open(path)
	if err != nil {
		return scan.Result{}, err
	}
	defer rc.Close()

	return scan.Aggregate(rc, []byte(target), opts...)
}

// AverageFile is ScanFile reduced to the average of the matched values.
// It returns NaN (and a nil error) when no record matches.
func AverageFile(path string, target string, opts ...scan.Option) (float64, error) {
	result, err := ScanFile(path, target, opts...)
	if err != nil {
		return 0, err
	}

	return result.Average(), nil
}

// GroupFile opens the file at path (decompressing by extension) and
// returns min/max/sum/count statistics per distinct filter-field key.
func GroupFile(path string, opts ...scan.Option) (map[string]group.Stats, error) {
	rc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return group.Aggregate(rc, opts...)
}
