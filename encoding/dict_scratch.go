package encoding

import (
	"github.com/mathldbt/mathldbt/internal/pool"
	"github.com/mathldbt/mathldbt/internal/xxhash64"
)

type dictRange struct {
	start, end uint32
	index      uint32
}

// DictScratch is the reusable insertion-ordered dictionary builder behind
// DictUtf8 encoding. It is held by EncodeWorkspace and reset at the start
// of each column's encoding rather than reallocated: interned values
// live as byte ranges into a single pooled buffer instead of separate
// string allocations, so a column with many repeated values costs one
// growing buffer rather than one allocation per distinct value.
type DictScratch struct {
	buf     *pool.ByteBuffer
	ranges  []dictRange
	buckets map[uint64][]int
}

// NewDictScratch returns an empty DictScratch ready for use.
func NewDictScratch() *DictScratch {
	return &DictScratch{buf: pool.GetDictBuffer(), buckets: make(map[uint64][]int)}
}

// Release returns d's pooled byte buffer. Callers that keep a workspace
// for the lifetime of a process generally don't call this.
func (d *DictScratch) Release() {
	pool.PutDictBuffer(d.buf)
	d.buf = nil
}

// Reset clears d for reuse, retaining its backing buffer and map capacity.
func (d *DictScratch) Reset() {
	d.buf.Reset()
	d.ranges = d.ranges[:0]

	for k := range d.buckets {
		delete(d.buckets, k)
	}
}

// Intern returns the dictionary index for value, inserting it at the next
// index (equal to first-occurrence insertion order) if not already
// present. Hash collisions are resolved by byte comparison: the hash is
// an accelerator, never a substitute for equality.
func (d *DictScratch) Intern(value string) uint32 {
	h := xxhash64.Sum64String(value)

	for _, ri := range d.buckets[h] {
		r := d.ranges[ri]
		if string(d.buf.B[r.start:r.end]) == value {
			return r.index
		}
	}

	start := uint32(len(d.buf.B))
	d.buf.MustWrite([]byte(value))
	end := uint32(len(d.buf.B))

	idx := uint32(len(d.ranges))
	d.ranges = append(d.ranges, dictRange{start: start, end: end, index: idx})
	d.buckets[h] = append(d.buckets[h], len(d.ranges)-1)

	return idx
}

// Len returns the number of distinct values interned since the last Reset.
func (d *DictScratch) Len() int {
	return len(d.ranges)
}

// Value returns the i'th interned value in insertion order, aliasing d's
// internal buffer. The slice is only valid until the next Reset or
// Intern call.
func (d *DictScratch) Value(i int) []byte {
	r := d.ranges[i]

	return d.buf.B[r.start:r.end]
}
