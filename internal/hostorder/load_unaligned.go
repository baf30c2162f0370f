//go:build amd64 || 386 || arm64 || loong64 || ppc64le || wasm

package hostorder

import "unsafe"

// Little-endian architectures with cheap unaligned access: the in-memory word
// already is the wire layout, so use direct pointer casts. Frame payloads
// start at odd offsets, which these GOARCHes load without a fault.

//go:nosplit
func Uint64(b []byte) uint64 {
	_ = b[7]
	return *(*uint64)(unsafe.Pointer(&b[0]))
}

//go:nosplit
func Uint32(b []byte) uint32 {
	_ = b[3]
	return *(*uint32)(unsafe.Pointer(&b[0]))
}

//go:nosplit
func PutUint64(b []byte, v uint64) {
	_ = b[7]
	*(*uint64)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func PutUint32(b []byte, v uint32) {
	_ = b[3]
	*(*uint32)(unsafe.Pointer(&b[0])) = v
}
