package lefloat

import (
	"math"

	"github.com/unkn0wn-root/lefloat/internal/hostorder"
)

const (
	Size64 = 8 // encoded float64 width
	Size32 = 4 // encoded float32 width
)

// ReadFloat64LE interprets b[:8] as a little-endian IEEE-754 double.
func ReadFloat64LE(b []byte) (float64, error) {
	if len(b) < Size64 {
		return 0, short("ReadFloat64LE", Size64, len(b))
	}
	return math.Float64frombits(hostorder.Uint64(b)), nil
}

// ReadFloat32LE interprets b[:4] as a little-endian IEEE-754 single.
func ReadFloat32LE(b []byte) (float32, error) {
	if len(b) < Size32 {
		return 0, short("ReadFloat32LE", Size32, len(b))
	}
	return math.Float32frombits(hostorder.Uint32(b)), nil
}

// WriteFloat64LE stores v into dst[:8]. dst[8:] is left untouched.
func WriteFloat64LE(dst []byte, v float64) error {
	if len(dst) < Size64 {
		return short("WriteFloat64LE", Size64, len(dst))
	}
	hostorder.PutUint64(dst, math.Float64bits(v))
	return nil
}

// WriteFloat32LE stores v into dst[:4]. dst[4:] is left untouched.
func WriteFloat32LE(dst []byte, v float32) error {
	if len(dst) < Size32 {
		return short("WriteFloat32LE", Size32, len(dst))
	}
	hostorder.PutUint32(dst, math.Float32bits(v))
	return nil
}

// AppendFloat64LE appends the 8-byte encoding of v to b.
func AppendFloat64LE(b []byte, v float64) []byte {
	var tmp [Size64]byte
	hostorder.PutUint64(tmp[:], math.Float64bits(v))
	return append(b, tmp[:]...)
}

// AppendFloat32LE appends the 4-byte encoding of v to b.
func AppendFloat32LE(b []byte, v float32) []byte {
	var tmp [Size32]byte
	hostorder.PutUint32(tmp[:], math.Float32bits(v))
	return append(b, tmp[:]...)
}
