package crypto

import "crypto/sha256"

// DeriveKey returns the first KeySize bytes of the SHA-256 digest of moves.
// Any input, including an empty slice, is valid.
func DeriveKey(moves []byte) []byte {
	sum := sha256.Sum256(moves)
	key := make([]byte, KeySize)
	copy(key, sum[:KeySize])
	return key
}
