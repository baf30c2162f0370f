// Package wire frames packed float vectors for storage in a byte provider.
//
// Integers in the frame header are little-endian, matching the payload.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	version   byte = 1
	kindBatch byte = 3
)

// Kind identifies the element type of a vector frame.
type Kind byte

const (
	KindF32 Kind = 1
	KindF64 Kind = 2
)

// Width returns the encoded element size, or 0 for an unknown kind.
func (k Kind) Width() int {
	switch k {
	case KindF32:
		return 4
	case KindF64:
		return 8
	}
	return 0
}

var (
	ErrCorrupt = errors.New("lefloat: corrupt vector frame")
	magic4     = [...]byte{'L', 'E', 'F', 'V'}
)

const (
	hdrLen  = 4 + 1 + 1 + 4
	maxKey  = 0xFFFF
	maxElem = 0xFFFFFFFF
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Vector: magic(4) | ver(1) | kind(1) | n(u32 le) | payload(n*width)
//
// payload must already hold the packed little-endian elements.
func EncodeVector(kind Kind, payload []byte) ([]byte, error) {
	n, err := count(kind, payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(byte(kind))

	var u4 [4]byte
	binary.LittleEndian.PutUint32(u4[:], n)
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes(), nil
}

// DecodeVector validates a vector frame. The returned payload aliases b.
func DecodeVector(b []byte) (kind Kind, payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	kind = Kind(b[5])
	w := kind.Width()
	if w == 0 {
		return 0, nil, ErrCorrupt
	}
	n := uint64(binary.LittleEndian.Uint32(b[6:10]))
	// exact length, trailing bytes are corruption
	if n*uint64(w) != uint64(len(b)-hdrLen) {
		return 0, nil, ErrCorrupt
	}
	return kind, b[hdrLen:], nil
}

func count(kind Kind, payload []byte) (uint32, error) {
	w := kind.Width()
	if w == 0 {
		return 0, fmt.Errorf("wire: unknown kind %d", kind)
	}
	if len(payload)%w != 0 {
		return 0, fmt.Errorf("wire: payload length %d is not a multiple of %d", len(payload), w)
	}
	n := len(payload) / w
	if uint64(n) > maxElem {
		return 0, fmt.Errorf("wire: %d elements exceed frame limit", n)
	}
	return uint32(n), nil
}

// Batch:
//
//	magic(4) | ver(1) | kind(3=batch) | n(u32 le)
//	keyLen(u16 le) | key(keyLen) | kind(1) | count(u32 le) | payload(count*width) * n
type BatchItem struct {
	Key     string
	Kind    Kind
	Payload []byte
}

func EncodeBatch(items []BatchItem) ([]byte, error) {
	total := hdrLen
	for _, it := range items {
		total += 2 + len(it.Key) + 1 + 4 + len(it.Payload)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBatch)

	var u4 [4]byte
	var u2 [2]byte

	binary.LittleEndian.PutUint32(u4[:], uint32(len(items)))
	buf.Write(u4[:])

	for _, it := range items {
		if l := len(it.Key); l == 0 || l > maxKey {
			return nil, fmt.Errorf("wire: invalid key length %d in batch", l)
		}
		n, err := count(it.Kind, it.Payload)
		if err != nil {
			return nil, fmt.Errorf("wire: batch key %q: %w", it.Key, err)
		}
		binary.LittleEndian.PutUint16(u2[:], uint16(len(it.Key)))
		buf.Write(u2[:])
		buf.WriteString(it.Key)

		buf.WriteByte(byte(it.Kind))
		binary.LittleEndian.PutUint32(u4[:], n)
		buf.Write(u4[:])
		buf.Write(it.Payload)
	}

	return buf.Bytes(), nil
}

// DecodeBatch validates a batch frame. Item payloads alias b.
func DecodeBatch(b []byte) ([]BatchItem, error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != kindBatch {
		return nil, ErrCorrupt
	}

	off := 6

	// n
	n := int(binary.LittleEndian.Uint32(b[off : off+4]))
	off += 4
	// every item needs at least 2+1+1+4 bytes
	if n < 0 || n > (len(b)-off)/8 {
		return nil, ErrCorrupt
	}

	items := make([]BatchItem, 0, n)
	for i := 0; i < n; i++ {
		// keyLen
		if off+2 > len(b) {
			return nil, ErrCorrupt
		}
		klen := int(binary.LittleEndian.Uint16(b[off : off+2]))
		off += 2
		if klen <= 0 || klen > len(b)-off {
			return nil, ErrCorrupt
		}
		keyBytes := b[off : off+klen]
		off += klen

		// kind + count
		if off+5 > len(b) {
			return nil, ErrCorrupt
		}
		kind := Kind(b[off])
		w := kind.Width()
		if w == 0 {
			return nil, ErrCorrupt
		}
		off++
		cnt := uint64(binary.LittleEndian.Uint32(b[off : off+4]))
		off += 4
		plen := cnt * uint64(w)
		if plen > uint64(len(b)-off) {
			return nil, ErrCorrupt
		}

		items = append(items, BatchItem{
			Key:     string(keyBytes),
			Kind:    kind,
			Payload: b[off : off+int(plen)],
		})
		off += int(plen)
	}
	if off != len(b) {
		return nil, ErrCorrupt
	}

	return items, nil
}
