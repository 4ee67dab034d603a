package pool

import "sync"

// A typed slice pool for efficient reuse of encode- and decode-time scratch buffers.
// This pool helps reduce allocations for the uint32 index and offset
// arrays DictUtf8 encoding/decoding builds and discards internally on
// every call.
var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves and resizes a uint32 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Used for the DictUtf8 row index array (n entries) and dictionary offset
// table (dict_len+1 entries) during both encode and decode. The plain
// varlen offset table does not come from this pool.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []uint32: A slice with length equal to size
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	offsets, cleanup := pool.GetUint32Slice(n + 1)
//	defer cleanup()
//	// Use offsets slice...
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}
