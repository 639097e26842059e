// Package group aggregates per-key statistics over delimited records.
//
// Where scan.Aggregate folds one column for a single fixed key, this
// package produces min/max/sum/count for every distinct key in the filter
// column, in one streaming pass with the same bounded-memory scanner.
// Keys are identified by xxHash64 through an interner that allocates one
// string per distinct key rather than one per record; hash collisions are
// resolved by byte comparison, never by trusting the hash alone.
package group
