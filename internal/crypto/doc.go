// Package crypto provides the cryptographic primitives for CBESS.
// The algorithm suite is fixed and never negotiated.
//
// # Algorithm Suite
//
//   - SHA-256 (FIPS 180-4): derives the 32-byte key from the UTF-8 bytes of a
//     move string. There is no salt and no stretching; the same moves always
//     produce the same key.
//
//   - AES-256-CBC (FIPS 197, SP 800-38A) with PKCS#7 padding: encrypts the
//     message. Cipher output is IV (16 bytes) || ciphertext.
//
//   - HKDF-SHA-512 (RFC 5869): derives a short, non-secret fingerprint of a
//     key so two parties can compare keys without revealing them.
//
// # Security Model
//
// The scheme provides confidentiality only. There is no MAC: decrypting with
// the wrong key yields garbage or [ErrInvalidPadding], never a reliable
// authentication failure. Anyone holding the key image can derive the key.
//
// IVs MUST be unique per encryption. [EncryptCBC] reads a fresh IV from
// crypto/rand on every call and callers cannot supply their own.
package crypto
