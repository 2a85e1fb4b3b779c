// Package sizing provides safe size arithmetic and conversions to prevent overflow.
package sizing

import (
	"io"
	"math"
)

// MaxChunkLength is the largest payload length a PNG chunk may declare (2^31-1).
const MaxChunkLength = math.MaxInt32

// ToUint32 converts a length to uint32, returning overflowErr if it exceeds limit.
func ToUint32(n int, limit uint32, overflowErr error) (uint32, error) {
	if n < 0 || uint64(n) > uint64(limit) {
		return 0, overflowErr
	}
	return uint32(n), nil //nolint:gosec // checked above
}

// RecordEnd returns offset+overhead+length, or false if the sum overflows int
// or passes size.
func RecordEnd(offset, overhead int, length uint32, size int) (int, bool) {
	if offset < 0 || overhead < 0 || offset > size {
		return 0, false
	}
	// Compare in uint64 so a hostile length cannot wrap on 32-bit platforms.
	end := uint64(offset) + uint64(overhead) + uint64(length)
	if end > uint64(size) {
		return 0, false
	}
	return int(end), true //nolint:gosec // end <= size
}

// ReadAllWithLimit reads up to maxSize bytes from r.
// Returns overflowErr if more than maxSize bytes are available.
// A maxSize of zero disables the limit.
func ReadAllWithLimit(r io.Reader, maxSize uint64, overflowErr error) ([]byte, error) {
	if maxSize == 0 {
		return io.ReadAll(r)
	}
	if maxSize > uint64(math.MaxInt-1) {
		return nil, overflowErr
	}
	limit := int64(maxSize) + 1 //nolint:gosec // checked above
	lr := &io.LimitedReader{R: r, N: limit}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > maxSize {
		return nil, overflowErr
	}
	return data, nil
}
