package codec

import "errors"

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// ErrLength is returned when a payload length does not fit the fixed-width
// layout a codec expects.
var ErrLength = errors.New("codec: invalid payload length")
