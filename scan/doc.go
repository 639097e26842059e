// Package scan implements streaming, allocation-minimizing scanning of
// newline-terminated, delimiter-separated records.
//
// The package is built around three pieces:
//
//   - Scanner: owns a fixed-capacity chunk buffer, refills it from an
//     io.Reader, and yields each record as a zero-copy byte span. Records
//     split across refills are preserved by compacting the unterminated
//     tail to the front of the buffer, so memory stays bounded by the
//     chunk capacity no matter how large the input is.
//   - Field tokenizer: NextField and FieldAt slice delimiter-separated
//     fields out of a record span without allocating.
//   - Aggregate: folds one numeric column into a running sum/count for
//     records whose filter column equals a target key, byte for byte.
//
// # Basic Usage
//
//	f, _ := os.Open("trades.csv")
//	defer f.Close()
//
//	result, err := scan.Aggregate(f, []byte("110"))
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("sum=%v count=%d avg=%v\n", result.Sum, result.Count, result.Average())
//
// # Span Lifetime
//
// Byte slices produced by Scanner.Lines, NextField and FieldAt alias the
// scanner's internal buffer. They are valid only until the next iteration
// step; callers that need to retain a field past that point must copy it.
//
// # Limitations
//
// The record format is deliberately minimal: one record per '\n'-terminated
// line, fields separated by a single delimiter byte. There is no support
// for quoting, escaping, or embedded delimiters; use encoding/csv when the
// input requires full CSV semantics.
package scan
