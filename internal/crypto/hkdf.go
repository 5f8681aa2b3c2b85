package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Fingerprint derives a FingerprintSize-byte identifier for key using
// HKDF-SHA-512 with an empty salt and FingerprintContext as info. It depends
// on the key alone, so both sides of a pair compute the same value.
func Fingerprint(key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	fp := make([]byte, FingerprintSize)
	r := hkdf.New(sha512.New, key, nil, []byte(FingerprintContext))
	if _, err := io.ReadFull(r, fp); err != nil {
		return nil, fmt.Errorf("derive fingerprint: %w", err)
	}
	return fp, nil
}
