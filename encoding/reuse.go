package encoding

// reuseBytes returns buf truncated/extended to length n if it already has
// enough capacity, or a fresh slice otherwise. Every byte in the returned
// slice is overwritten by the caller before use.
func reuseBytes(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]byte, n)
}

// reuseUint32 is reuseBytes for []uint32.
func reuseUint32(buf []uint32, n int) []uint32 {
	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]uint32, n)
}
