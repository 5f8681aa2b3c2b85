package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// ivSource is the random source used for IV generation.
// It is always crypto/rand outside of tests.
var ivSource io.Reader = rand.Reader

// EncryptCBC pads plaintext, encrypts it with AES-256-CBC under a fresh
// random IV and returns IV (16 bytes) || ciphertext.
func EncryptCBC(key, plaintext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	padded := pad(plaintext)
	out := make([]byte, IVSize+len(padded))

	iv := out[:IVSize]
	if _, err := io.ReadFull(ivSource, iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[IVSize:], padded)
	return out, nil
}

// DecryptCBC reverses EncryptCBC. The input must be IV || ciphertext with at
// least one ciphertext block and a length that is a multiple of BlockSize.
// A wrong key is not detected reliably; it yields garbage or ErrInvalidPadding.
func DecryptCBC(key, data []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(data) < MinCiphertextSize || len(data)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not IV plus a positive multiple of %d",
			ErrMalformedCiphertext, len(data), BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := data[:IVSize]
	ciphertext := data[IVSize:]

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return unpad(plaintext)
}
