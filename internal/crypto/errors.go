package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedCiphertext is returned when the cipher output is shorter
	// than an IV plus one block, or is not a multiple of the block size.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrInvalidPadding is returned when the decrypted PKCS#7 padding is
	// out of range or inconsistent. This usually means the wrong key was used
	// or the ciphertext was corrupted.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrRandomSource is returned when the IV cannot be read from the random source.
	ErrRandomSource = errors.New("random source failure")
)
