package cbess

import "github.com/prajithravisankar/cbess/internal/crypto"

// Cipher sizes in bytes.
const (
	BlockSize = crypto.BlockSize
	IVSize    = crypto.IVSize
)

// Cipher encrypts and decrypts with AES-256-CBC and PKCS#7 padding under a
// fixed key. It is immutable and safe for concurrent use.
type Cipher struct {
	key Key
}

// NewCipher returns a Cipher bound to key.
func NewCipher(key Key) *Cipher {
	return &Cipher{key: key}
}

// Encrypt returns IV || ciphertext. Every call uses a fresh random IV, so
// encrypting the same plaintext twice gives different output.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	return crypto.EncryptCBC(c.key[:], plaintext)
}

// Decrypt reverses Encrypt. It returns ErrMalformedCiphertext for input that
// is not IV plus whole blocks, and ErrInvalidPadding when the padding does
// not check out. A wrong key is not always detected.
func (c *Cipher) Decrypt(data []byte) ([]byte, error) {
	return crypto.DecryptCBC(c.key[:], data)
}

// CiphertextSize returns the length of Encrypt's output for n plaintext bytes.
func CiphertextSize(n int) int {
	return IVSize + (n/BlockSize+1)*BlockSize
}
