package stego

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is returned when a payload does not fit in a carrier.
	ErrCapacityExceeded = errors.New("payload exceeds carrier capacity")

	// ErrTruncatedPayload is returned when a carrier's length prefix declares
	// more data than the carrier can hold.
	ErrTruncatedPayload = errors.New("truncated payload")
)

// CapacityError reports how many bits an embed needed and how many the carrier has.
type CapacityError struct {
	Need int64
	Have int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: need %d bits, carrier holds %d", ErrCapacityExceeded, e.Need, e.Have)
}

// Is implements errors.Is for sentinel error matching.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// CBESSError marks CapacityError as one of the library's typed errors.
func (e *CapacityError) CBESSError() {}

// TruncatedError reports a declared payload length that the carrier cannot back.
type TruncatedError struct {
	// Declared is the payload length in bytes read from the prefix.
	// It is zero when the carrier is too small to hold the prefix itself.
	Declared  int64
	Available int64
}

func (e *TruncatedError) Error() string {
	if e.Available < LengthPrefixBits {
		return fmt.Sprintf("%v: carrier holds %d bits, fewer than the %d-bit length prefix",
			ErrTruncatedPayload, e.Available, LengthPrefixBits)
	}
	return fmt.Sprintf("%v: prefix declares %d bytes, carrier holds %d payload bits",
		ErrTruncatedPayload, e.Declared, e.Available-LengthPrefixBits)
}

// Is implements errors.Is for sentinel error matching.
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncatedPayload
}

// CBESSError marks TruncatedError as one of the library's typed errors.
func (e *TruncatedError) CBESSError() {}
