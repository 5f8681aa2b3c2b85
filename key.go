package cbess

import (
	"encoding/hex"

	"github.com/prajithravisankar/cbess/internal/crypto"
)

// KeySize is the size of a derived key in bytes.
const KeySize = crypto.KeySize

// Key is an AES-256 key derived from a move source.
// It is a fixed-size byte array, never text.
type Key [KeySize]byte

// DeriveKey hashes the UTF-8 bytes of moves into a key. The same moves always
// give the same key; the empty string is valid input.
func DeriveKey(moves string) Key {
	var k Key
	copy(k[:], crypto.DeriveKey([]byte(moves)))
	return k
}

// Fingerprint returns a short hex identifier for the key. It is safe to show
// or compare in the open; it does not reveal the key.
func (k Key) Fingerprint() string {
	// The key size is fixed, so this cannot fail.
	fp, _ := crypto.Fingerprint(k[:])
	return hex.EncodeToString(fp)
}

// String implements fmt.Stringer without exposing key bytes.
func (k Key) String() string {
	return "cbess.Key(" + k.Fingerprint() + ")"
}
