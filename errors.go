package lefloat

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is matched (via errors.Is) by every length failure
// returned from this package.
var ErrBufferTooSmall = errors.New("lefloat: buffer too small")

// BufferError describes a buffer that cannot hold the requested value(s).
type BufferError struct {
	Op   string // e.g. "ReadFloat64LE"
	Need int
	Have int
}

func (e *BufferError) Error() string {
	return fmt.Sprintf("lefloat: %s: need %d bytes, have %d", e.Op, e.Need, e.Have)
}

func (e *BufferError) Unwrap() error { return ErrBufferTooSmall }

func short(op string, need, have int) error {
	return &BufferError{Op: op, Need: need, Have: have}
}
