package hash

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 of a key's raw bytes. The group interner uses
// it to bucket distinct filter-field values without allocating a string
// per row.
func Key(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// KeyString computes the xxHash64 of a key given as a string. It produces
// the same value as Key over the equivalent bytes.
func KeyString(data string) uint64 {
	return xxhash.Sum64String(data)
}
