// Package lefloat reads and writes IEEE-754 float64/float32 values in
// little-endian byte order.
//
// Every function is stateless and never retains the caller's buffer.
// Reads consume the first 8 (or 4) bytes of the source and ignore the rest.
// Writes check the destination length before touching it: on error nothing
// is written, on success only the first 8 (or 4) bytes change.
//
// Values round-trip bit for bit, including -0, ±Inf and NaN payloads
// (quiet or signalling):
//
//	var buf [lefloat.Size64]byte
//	_ = lefloat.WriteFloat64LE(buf[:], 1.0) // 00 00 00 00 00 00 f0 3f
//	v, _ := lefloat.ReadFloat64LE(buf[:])   // 1.0
//
// Little-endian hosts copy the word as is. Other hosts reinterpret the float
// as an unsigned integer, reverse its bytes and reinterpret back; floats are
// never shuffled byte by byte.
//
// Sub-packages:
//   - codec: Codec[V] implementations for scalars, packed vectors, CBOR,
//     msgpack and protobuf.
//   - vecstore: provider-backed store for named float vectors.
//   - provider: byte store interface plus ristretto, bigcache and redis adapters.
package lefloat
