package codec

import (
	"errors"
	"fmt"
)

// ErrDecode matches every *DecodeError via errors.Is.
var ErrDecode = errors.New("decode failed")

// Structural failures wrapped by DecodeError.
var (
	errOddLength      = errors.New("odd number of hex digits")
	errNotByteAligned = errors.New("bit count is not a multiple of 8")
	errInvalidUTF8    = errors.New("decoded bytes are not valid UTF-8")
)

// DecodeError reports input that violates the grammar of Format.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s input: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func decodeError(f Format, err error) error {
	return &DecodeError{Format: f, Err: err}
}
