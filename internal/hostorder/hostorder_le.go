//go:build amd64 || 386 || arm64 || arm || riscv64 || loong64 || mips64le || mipsle || ppc64le || wasm

package hostorder

// IsLittleEndian is fixed at build time from GOARCH.
const IsLittleEndian = true
