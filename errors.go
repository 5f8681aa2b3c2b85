package cbess

import (
	"errors"
	"fmt"

	"github.com/prajithravisankar/cbess/internal/crypto"
	"github.com/prajithravisankar/cbess/internal/imageio"
	"github.com/prajithravisankar/cbess/internal/stego"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrCapacityExceeded is returned when a payload does not fit in a carrier
	// image. The carrier is never modified when this is returned.
	ErrCapacityExceeded = stego.ErrCapacityExceeded

	// ErrTruncatedPayload is returned when a carrier declares a payload longer
	// than it can hold, or is too small to hold the length prefix.
	ErrTruncatedPayload = stego.ErrTruncatedPayload

	// ErrMalformedCiphertext is returned when cipher output is not an IV
	// followed by a positive number of whole blocks.
	ErrMalformedCiphertext = crypto.ErrMalformedCiphertext

	// ErrInvalidPadding is returned when decrypted padding is out of range or
	// inconsistent, usually because the wrong key was used.
	ErrInvalidPadding = crypto.ErrInvalidPadding

	// ErrUnsupportedFormat is returned when an image is not a PNG.
	ErrUnsupportedFormat = imageio.ErrUnsupportedFormat

	// ErrEmptyMoves is returned when sealing with a move source that has no moves.
	ErrEmptyMoves = errors.New("move source is empty")

	// ErrInvalidMoves is returned when a move source is not valid UTF-8.
	// When opening, this usually means the cipher and key images were swapped.
	ErrInvalidMoves = errors.New("move source is not valid UTF-8")
)

// CapacityError reports the bits an embed needed and the bits the carrier has.
// It matches ErrCapacityExceeded with errors.Is.
type CapacityError = stego.CapacityError

// TruncatedError reports a declared payload length the carrier cannot back.
// It matches ErrTruncatedPayload with errors.Is.
type TruncatedError = stego.TruncatedError

// Stages reported by StageError.
const (
	StageMoves       = "moves"
	StageEncrypt     = "encrypt"
	StageCipherImage = "cipher-image"
	StageKeyImage    = "key-image"
	StageDecrypt     = "decrypt"
)

// CBESSError is the marker interface implemented by the typed errors
// returned from this package.
type CBESSError interface {
	error
	CBESSError()
}

// StageError records which step of Seal or Open failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// CBESSError implements the CBESSError interface.
func (e *StageError) CBESSError() {}

func stageErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
