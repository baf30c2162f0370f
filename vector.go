package lefloat

import (
	"math"

	"github.com/unkn0wn-root/lefloat/internal/hostorder"
)

// ReadFloat64sLE fills dst from the packed little-endian doubles in b.
// b must hold at least len(dst)*8 bytes; extra bytes are ignored.
func ReadFloat64sLE(dst []float64, b []byte) error {
	need := len(dst) * Size64
	if len(b) < need {
		return short("ReadFloat64sLE", need, len(b))
	}
	for i := range dst {
		dst[i] = math.Float64frombits(hostorder.Uint64(b[i*Size64:]))
	}
	return nil
}

// ReadFloat32sLE fills dst from the packed little-endian singles in b.
func ReadFloat32sLE(dst []float32, b []byte) error {
	need := len(dst) * Size32
	if len(b) < need {
		return short("ReadFloat32sLE", need, len(b))
	}
	for i := range dst {
		dst[i] = math.Float32frombits(hostorder.Uint32(b[i*Size32:]))
	}
	return nil
}

// WriteFloat64sLE packs src into dst[:len(src)*8]. Nothing is written when
// dst is too short.
func WriteFloat64sLE(dst []byte, src []float64) error {
	need := len(src) * Size64
	if len(dst) < need {
		return short("WriteFloat64sLE", need, len(dst))
	}
	for i, v := range src {
		hostorder.PutUint64(dst[i*Size64:], math.Float64bits(v))
	}
	return nil
}

// WriteFloat32sLE packs src into dst[:len(src)*4].
func WriteFloat32sLE(dst []byte, src []float32) error {
	need := len(src) * Size32
	if len(dst) < need {
		return short("WriteFloat32sLE", need, len(dst))
	}
	for i, v := range src {
		hostorder.PutUint32(dst[i*Size32:], math.Float32bits(v))
	}
	return nil
}
