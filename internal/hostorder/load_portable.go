//go:build !amd64 && !386 && !arm64 && !loong64 && !ppc64le && !wasm

package hostorder

import "encoding/binary"

// Strict-alignment little-endian GOARCHes (arm, mipsle, mips64le, riscv64)
// assemble words byte by byte. Big-endian and unknown architectures go
// through the reinterpretation path.

func Uint64(b []byte) uint64 {
	if IsLittleEndian {
		return binary.LittleEndian.Uint64(b)
	}
	return SwappedUint64(b)
}

func Uint32(b []byte) uint32 {
	if IsLittleEndian {
		return binary.LittleEndian.Uint32(b)
	}
	return SwappedUint32(b)
}

func PutUint64(b []byte, v uint64) {
	if IsLittleEndian {
		binary.LittleEndian.PutUint64(b, v)
		return
	}
	PutSwappedUint64(b, v)
}

func PutUint32(b []byte, v uint32) {
	if IsLittleEndian {
		binary.LittleEndian.PutUint32(b, v)
		return
	}
	PutSwappedUint32(b, v)
}
