// Package hostorder loads and stores little-endian words using the cheapest
// path available for the host's byte order.
//
// Little-endian hosts with cheap unaligned access read and write the word in
// place; strict-alignment ones (arm, mipsle, mips64le, riscv64) assemble it
// byte by byte, since frame payloads sit at unaligned offsets. Big-endian hosts read
// the word in host order, reverse its bytes and hand back the result, which
// keeps every bit pattern (including NaN payloads) intact once reinterpreted
// as a float.
package hostorder

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Native returns the host byte order.
func Native() binary.ByteOrder {
	if IsLittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Detect reports whether the running host stores the least-significant byte
// first, by inspecting the memory layout of a known word.
func Detect() bool {
	w := uint16(0x0102)
	return *(*byte)(unsafe.Pointer(&w)) == 0x02
}

// SwappedUint64 is the big-endian host path: b[:8] is read as a host-order
// (big-endian) word and byte-reversed into its little-endian value.
func SwappedUint64(b []byte) uint64 {
	return bits.ReverseBytes64(binary.BigEndian.Uint64(b))
}

func SwappedUint32(b []byte) uint32 {
	return bits.ReverseBytes32(binary.BigEndian.Uint32(b))
}

// PutSwappedUint64 is the inverse of SwappedUint64.
func PutSwappedUint64(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, bits.ReverseBytes64(v))
}

func PutSwappedUint32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, bits.ReverseBytes32(v))
}
