package group

import "github.com/rowscan/rowscan/internal/hash"

// interner assigns a compact id to each distinct key, looked up by
// xxHash64 with collisions resolved by comparing the stored bytes.
// A key's string is allocated once, when it is first seen; later rows
// with the same key resolve without allocating.
//
// The scan is single-threaded, so the interner carries no locking.
type interner struct {
	ids  map[uint64][]int32 // hash -> candidate ids
	keys []string           // id -> key, insertion order
}

func newInterner() *interner {
	return &interner{ids: make(map[uint64][]int32, 256)}
}

// intern returns the id for key, creating one if it is new.
func (in *interner) intern(key []byte) int32 {
	return in.internHashed(hash.Key(key), key)
}

// internHashed is the hash-explicit form of intern; tests use it to force
// collisions.
func (in *interner) internHashed(h uint64, key []byte) int32 {
	candidates := in.ids[h]
	for _, id := range candidates {
		// string(key) in a comparison does not allocate.
		if in.keys[id] == string(key) {
			return id
		}
	}

	id := int32(len(in.keys))
	in.keys = append(in.keys, string(key))
	in.ids[h] = append(candidates, id)

	return id
}

// size returns the number of distinct keys seen so far.
func (in *interner) size() int { return len(in.keys) }
