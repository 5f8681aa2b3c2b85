package crypto

import (
	"bytes"
	"fmt"
)

// pad appends PKCS#7 padding. The pad length is always in [1, BlockSize];
// input that is already block-aligned gets a full block of padding.
func pad(data []byte) []byte {
	n := BlockSize - len(data)%BlockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

// unpad strips PKCS#7 padding. It never reads outside data and never
// clamps a bad pad length.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidPadding)
	}

	n := int(data[len(data)-1])
	if n == 0 || n > BlockSize {
		return nil, fmt.Errorf("%w: pad length %d out of range", ErrInvalidPadding, n)
	}
	if n > len(data) {
		return nil, fmt.Errorf("%w: pad length %d exceeds buffer of %d", ErrInvalidPadding, n, len(data))
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrInvalidPadding)
		}
	}

	return data[:len(data)-n], nil
}
