package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// BlockSize is the AES block size in bytes. It is also the IV size
	// and the largest PKCS#7 padding run.
	BlockSize = 16
	// IVSize is the size of the CBC initialization vector in bytes.
	IVSize = BlockSize

	// MinCiphertextSize is the smallest well-formed cipher output:
	// one IV followed by one ciphertext block.
	MinCiphertextSize = IVSize + BlockSize

	// FingerprintContext is the HKDF info string used when deriving a key
	// fingerprint, for domain separation from the key itself.
	FingerprintContext = "cbess:fingerprint:v1"
	// FingerprintSize is the size of a key fingerprint in bytes.
	FingerprintSize = 8

	// Ciphersuite names the fixed algorithm suite: key derivation, cipher
	// and padding.
	Ciphersuite = "SHA-256:AES-256-CBC:PKCS7"
)
