package crypto

import "io"

// SetIVSourceForTesting replaces the reader EncryptCBC draws IVs from and
// returns a func that puts crypto/rand back. Tests that call it must not run
// in parallel with other encrypting tests.
func SetIVSourceForTesting(r io.Reader) (restore func()) {
	prev := ivSource
	ivSource = r
	return func() { ivSource = prev }
}
