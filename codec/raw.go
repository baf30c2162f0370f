package codec

import (
	"fmt"

	"github.com/unkn0wn-root/lefloat"
)

// Float64 encodes a single float64 as exactly 8 little-endian bytes.
// The zero value is ready to use.
type Float64 struct{}

// Float32 encodes a single float32 as exactly 4 little-endian bytes.
type Float32 struct{}

var (
	_ Codec[float64] = Float64{}
	_ Codec[float32] = Float32{}
)

func (Float64) Encode(v float64) ([]byte, error) {
	return lefloat.AppendFloat64LE(make([]byte, 0, lefloat.Size64), v), nil
}

func (Float64) Decode(b []byte) (float64, error) {
	if len(b) != lefloat.Size64 {
		return 0, fmt.Errorf("float64: %d bytes: %w", len(b), ErrLength)
	}
	return lefloat.ReadFloat64LE(b)
}

func (Float32) Encode(v float32) ([]byte, error) {
	return lefloat.AppendFloat32LE(make([]byte, 0, lefloat.Size32), v), nil
}

func (Float32) Decode(b []byte) (float32, error) {
	if len(b) != lefloat.Size32 {
		return 0, fmt.Errorf("float32: %d bytes: %w", len(b), ErrLength)
	}
	return lefloat.ReadFloat32LE(b)
}

// Float64s packs a []float64 as consecutive little-endian doubles with no
// header. Decode allocates a fresh slice and never aliases b.
type Float64s struct{}

// Float32s is the float32 counterpart of Float64s.
type Float32s struct{}

var (
	_ Codec[[]float64] = Float64s{}
	_ Codec[[]float32] = Float32s{}
)

func (Float64s) Encode(v []float64) ([]byte, error) {
	b := make([]byte, len(v)*lefloat.Size64)
	if err := lefloat.WriteFloat64sLE(b, v); err != nil {
		return nil, err
	}
	return b, nil
}

func (Float64s) Decode(b []byte) ([]float64, error) {
	if len(b)%lefloat.Size64 != 0 {
		return nil, fmt.Errorf("float64 vector: %d bytes: %w", len(b), ErrLength)
	}
	v := make([]float64, len(b)/lefloat.Size64)
	if err := lefloat.ReadFloat64sLE(v, b); err != nil {
		return nil, err
	}
	return v, nil
}

func (Float32s) Encode(v []float32) ([]byte, error) {
	b := make([]byte, len(v)*lefloat.Size32)
	if err := lefloat.WriteFloat32sLE(b, v); err != nil {
		return nil, err
	}
	return b, nil
}

func (Float32s) Decode(b []byte) ([]float32, error) {
	if len(b)%lefloat.Size32 != 0 {
		return nil, fmt.Errorf("float32 vector: %d bytes: %w", len(b), ErrLength)
	}
	v := make([]float32, len(b)/lefloat.Size32)
	if err := lefloat.ReadFloat32sLE(v, b); err != nil {
		return nil, err
	}
	return v, nil
}
