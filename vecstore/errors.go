package vecstore

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is returned when a vector is longer than Options.MaxDim.
	ErrDimension = errors.New("vecstore: vector exceeds max dimension")
	// ErrEmptyKey is returned when writing under the empty key, which a
	// batch blob cannot carry.
	ErrEmptyKey = errors.New("vecstore: empty key")
	// ErrKind is returned by Import when a batch item's element type does
	// not match the store's.
	ErrKind = errors.New("vecstore: element kind mismatch")
)

// KeyError attaches the offending key to an error from a multi-key call.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("vecstore: key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
