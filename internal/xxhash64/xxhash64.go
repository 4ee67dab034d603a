// Package xxhash64 wraps github.com/cespare/xxhash/v2 for the one place
// the codec needs a fast string hash: DictUtf8's insertion-order dictionary
// scratch, which maps each distinct column value to its dictionary index.
package xxhash64

import "github.com/cespare/xxhash/v2"

// Sum64String hashes s. Callers building a dictionary scratch must still
// confirm equality on collision; this hash is a lookup accelerator, not a
// substitute for byte comparison.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Sum64 hashes b.
func Sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}
