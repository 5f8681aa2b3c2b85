package cbess

import (
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/prajithravisankar/cbess/internal/stego"
)

// Sealed is the result of Seal: two carriers that together carry a message.
type Sealed struct {
	// CipherImage carries IV || ciphertext.
	CipherImage *image.NRGBA
	// KeyImage carries the move source the key was derived from.
	KeyImage *image.NRGBA
	// Moves is the move source as embedded, after any normalisation.
	Moves string
	// KeyMoves is the part of Moves the key was derived from. It equals
	// Moves unless WithHalfMoveKey was given.
	KeyMoves string
	// Fingerprint identifies the derived key without revealing it.
	Fingerprint string
}

// Opened is the result of Open.
type Opened struct {
	// Moves is the move source recovered from the key image.
	Moves string
	// KeyMoves is the part of Moves the key was re-derived from.
	KeyMoves string
	// Plaintext is the decrypted message.
	Plaintext []byte
	// Fingerprint identifies the re-derived key.
	Fingerprint string
}

// Text returns the plaintext as a string.
func (o *Opened) Text() string {
	return string(o.Plaintext)
}

// Seal derives a key from moves, encrypts plaintext, and hides the cipher
// output in cipherCarrier and the moves in keyCarrier. Both carriers are
// copied; the inputs are never modified. If either payload does not fit,
// no image is returned.
func Seal(moves string, plaintext []byte, cipherCarrier, keyCarrier image.Image, opts ...Option) (*Sealed, error) {
	cfg := newPairConfig(opts)

	if !cfg.rawMoves {
		moves = NormalizeMoves(moves)
	}
	if strings.TrimSpace(moves) == "" {
		return nil, stageErr(StageMoves, ErrEmptyMoves)
	}
	if !utf8.ValidString(moves) {
		return nil, stageErr(StageMoves, ErrInvalidMoves)
	}

	source := cfg.keySource(moves)
	if strings.TrimSpace(source) == "" {
		return nil, stageErr(StageMoves, fmt.Errorf("%w: a half-move key needs at least two moves", ErrEmptyMoves))
	}

	if err := checkFits(cipherCarrier, CiphertextSize(len(plaintext))); err != nil {
		return nil, stageErr(StageCipherImage, err)
	}
	if err := checkFits(keyCarrier, len(moves)); err != nil {
		return nil, stageErr(StageKeyImage, err)
	}

	key := DeriveKey(source)

	out, err := NewCipher(key).Encrypt(plaintext)
	if err != nil {
		return nil, stageErr(StageEncrypt, err)
	}

	cipherImg, err := Embed(cipherCarrier, out)
	if err != nil {
		return nil, stageErr(StageCipherImage, err)
	}

	keyImg, err := Embed(keyCarrier, []byte(moves))
	if err != nil {
		return nil, stageErr(StageKeyImage, err)
	}

	return &Sealed{
		CipherImage: cipherImg,
		KeyImage:    keyImg,
		Moves:       moves,
		KeyMoves:    source,
		Fingerprint: key.Fingerprint(),
	}, nil
}

// Open recovers the move source from keyImage, re-derives the key, and
// decrypts the cipher output hidden in cipherImage.
//
// Without WithHalfMoveKey the key is derived from the extracted moves
// verbatim, so no normalisation option is needed to open a pair.
//
// Open cannot reliably tell a wrong key image from a right one: a mismatched
// pair yields ErrInvalidPadding or garbage plaintext.
func Open(cipherImage, keyImage image.Image, opts ...Option) (*Opened, error) {
	cfg := newPairConfig(opts)

	moves, err := Extract(keyImage)
	if err != nil {
		return nil, stageErr(StageKeyImage, err)
	}
	if !utf8.Valid(moves) {
		return nil, stageErr(StageKeyImage, ErrInvalidMoves)
	}

	source := cfg.keySource(string(moves))
	key := DeriveKey(source)

	data, err := Extract(cipherImage)
	if err != nil {
		return nil, stageErr(StageCipherImage, err)
	}

	plaintext, err := NewCipher(key).Decrypt(data)
	if err != nil {
		return nil, stageErr(StageDecrypt, err)
	}

	return &Opened{
		Moves:       string(moves),
		KeyMoves:    source,
		Plaintext:   plaintext,
		Fingerprint: key.Fingerprint(),
	}, nil
}

func checkFits(carrier image.Image, n int) error {
	need := stego.RequiredBits(int64(n))
	if have := Capacity(carrier); need > have {
		return &CapacityError{Need: need, Have: have}
	}
	return nil
}

// PairCapacity reports the largest message Seal can hide in cipherCarrier.
// It returns -1 if the cipher output for even an empty message does not fit.
func PairCapacity(cipherCarrier image.Image) int {
	maxOut := MaxPayload(cipherCarrier)
	if maxOut < int64(CiphertextSize(0)) {
		return -1
	}
	// Largest whole-block output, minus the IV and at least one pad byte.
	blocks := (maxOut - IVSize) / BlockSize
	return int(blocks*BlockSize - 1)
}
