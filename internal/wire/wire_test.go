package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func mustDecodeVector(t *testing.T, b []byte) (Kind, []byte) {
	t.Helper()
	k, p, err := DecodeVector(b)
	if err != nil {
		t.Fatalf("DecodeVector error: %v", err)
	}
	return k, p
}

func mustDecodeBatch(t *testing.T, b []byte) []BatchItem {
	t.Helper()
	it, err := DecodeBatch(b)
	if err != nil {
		t.Fatalf("DecodeBatch error: %v", err)
	}
	return it
}

func TestVectorRoundTrip(t *testing.T) {
	cases := []struct {
		kind    Kind
		payload []byte
	}{
		{KindF64, nil},
		{KindF64, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}},
		{KindF32, []byte{0, 0, 0x80, 0x3F, 0, 0, 0, 0x40}},
	}
	for _, tc := range cases {
		enc, err := EncodeVector(tc.kind, tc.payload)
		if err != nil {
			t.Fatalf("EncodeVector: %v", err)
		}
		k, p := mustDecodeVector(t, enc)
		if k != tc.kind {
			t.Fatalf("kind mismatch: got %d want %d", k, tc.kind)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestVectorHeaderLayout(t *testing.T) {
	enc, err := EncodeVector(KindF32, []byte{0, 0, 0x80, 0x3F})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'L', 'E', 'F', 'V', version, byte(KindF32), 1, 0, 0, 0, 0, 0, 0x80, 0x3F}
	if !bytes.Equal(enc, want) {
		t.Fatalf("frame = % x want % x", enc, want)
	}
}

func TestEncodeVectorRejectsBadInput(t *testing.T) {
	if _, err := EncodeVector(KindF64, make([]byte, 12)); err == nil {
		t.Fatalf("expected error on ragged payload")
	}
	if _, err := EncodeVector(Kind(9), make([]byte, 8)); err == nil {
		t.Fatalf("expected error on unknown kind")
	}
}

func TestVectorRejectsTrailingBytes(t *testing.T) {
	enc, _ := EncodeVector(KindF32, make([]byte, 4))
	enc = append(enc, 0xDE, 0xAD) // add junk
	if _, _, err := DecodeVector(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestVectorCorruptHeadersAndLengths(t *testing.T) {
	enc, _ := EncodeVector(KindF64, make([]byte, 16))

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := DecodeVector(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := DecodeVector(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// unknown kind
	badKind := append([]byte(nil), enc...)
	badKind[5] = kindBatch
	if _, _, err := DecodeVector(badKind); err == nil {
		t.Fatalf("expected error on batch kind in vector frame")
	}

	// kind flipped to f32 makes the count disagree with the payload
	flipped := append([]byte(nil), enc...)
	flipped[5] = byte(KindF32)
	if _, _, err := DecodeVector(flipped); err == nil {
		t.Fatalf("expected error on kind/length mismatch")
	}

	// count too large (announce more than available)
	tooLong := append([]byte(nil), enc...)
	binary.LittleEndian.PutUint32(tooLong[6:10], 3)
	if _, _, err := DecodeVector(tooLong); err == nil {
		t.Fatalf("expected error on count beyond buffer")
	}

	// huge count must not overflow the length check
	huge := append([]byte(nil), enc...)
	binary.LittleEndian.PutUint32(huge[6:10], ^uint32(0))
	if _, _, err := DecodeVector(huge); err == nil {
		t.Fatalf("expected error on bogus count")
	}

	// truncated buffer
	if _, _, err := DecodeVector(enc[:len(enc)-1]); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}
	if _, _, err := DecodeVector(enc[:5]); err == nil {
		t.Fatalf("expected error on truncated header")
	}
}

func TestVectorZeroCopyPayload(t *testing.T) {
	enc, _ := EncodeVector(KindF32, []byte{1, 2, 3, 4})
	_, p := mustDecodeVector(t, enc)
	// mutate payload slice. should mutate underlying enc bytes (zero-copy)
	p[0] = 'Q'
	_, p2 := mustDecodeVector(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}

func TestBatchRoundTrip(t *testing.T) {
	cases := [][]BatchItem{
		nil, // n=0
		{{Key: "a", Kind: KindF64, Payload: make([]byte, 8)}},
		{
			{Key: "a", Kind: KindF32, Payload: []byte{0, 0, 0x80, 0x3F}},
			{Key: "b", Kind: KindF64, Payload: nil}, // empty vector
			{Key: "c", Kind: KindF64, Payload: bytes.Repeat([]byte{7}, 24)},
		},
		// duplicates allowed. decoder preserves both
		{
			{Key: "dup", Kind: KindF32, Payload: []byte{1, 1, 1, 1}},
			{Key: "dup", Kind: KindF32, Payload: []byte{2, 2, 2, 2}},
		},
	}
	for _, items := range cases {
		enc, err := EncodeBatch(items)
		if err != nil {
			t.Fatalf("EncodeBatch error: %v", err)
		}
		got := mustDecodeBatch(t, enc)
		if len(got) != len(items) {
			t.Fatalf("len mismatch: got %d want %d", len(got), len(items))
		}
		for i := range items {
			if got[i].Key != items[i].Key || got[i].Kind != items[i].Kind || !bytes.Equal(got[i].Payload, items[i].Payload) {
				t.Fatalf("item %d mismatch: got=%+v want=%+v", i, got[i], items[i])
			}
		}
	}
}

func TestBatchRejectsTrailingBytes(t *testing.T) {
	enc, err := EncodeBatch([]BatchItem{{Key: "k", Kind: KindF32, Payload: make([]byte, 4)}})
	if err != nil {
		t.Fatalf("EncodeBatch: %v", err)
	}
	enc = append(enc, 0xBE, 0xEF)
	if _, err := DecodeBatch(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestBatchWrongCountAndTruncation(t *testing.T) {
	// Wrong n (very large) with no items -> must error, not panic.
	var buf bytes.Buffer
	buf.Write([]byte{'L', 'E', 'F', 'V'})
	buf.WriteByte(version)
	buf.WriteByte(kindBatch)
	var u4 [4]byte
	binary.LittleEndian.PutUint32(u4[:], ^uint32(0))
	buf.Write(u4[:])
	if _, err := DecodeBatch(buf.Bytes()); err == nil {
		t.Fatalf("expected error on bogus n with insufficient bytes")
	}

	// Declare n=1 but provide no item body -> error
	buf.Reset()
	buf.Write([]byte{'L', 'E', 'F', 'V'})
	buf.WriteByte(version)
	buf.WriteByte(kindBatch)
	binary.LittleEndian.PutUint32(u4[:], 1)
	buf.Write(u4[:])
	if _, err := DecodeBatch(buf.Bytes()); err == nil {
		t.Fatalf("expected error on truncated item list")
	}
}

func TestBatchKeyAndPayloadValidation(t *testing.T) {
	// empty key -> error
	if _, err := EncodeBatch([]BatchItem{{Key: "", Kind: KindF32}}); err == nil {
		t.Fatalf("expected error on empty key")
	}
	// too long key (65536) -> error
	if _, err := EncodeBatch([]BatchItem{{Key: strings.Repeat("a", 0x10000), Kind: KindF32}}); err == nil {
		t.Fatalf("expected error on key length > 0xFFFF")
	}
	// boundary (65535) -> ok
	if _, err := EncodeBatch([]BatchItem{{Key: strings.Repeat("b", 0xFFFF), Kind: KindF32}}); err != nil {
		t.Fatalf("boundary key length should succeed: %v", err)
	}
	// ragged payload -> error
	if _, err := EncodeBatch([]BatchItem{{Key: "k", Kind: KindF64, Payload: make([]byte, 5)}}); err == nil {
		t.Fatalf("expected error on ragged payload")
	}
}

func TestBatchCorruptHeadersAndLengths(t *testing.T) {
	enc, err := EncodeBatch([]BatchItem{
		{Key: "k", Kind: KindF32, Payload: make([]byte, 8)},
	})
	if err != nil {
		t.Fatalf("EncodeBatch: %v", err)
	}

	// wrong kind in header
	badKind := append([]byte(nil), enc...)
	badKind[5] = byte(KindF64)
	if _, err := DecodeBatch(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// header: 10 bytes; item: 2 klen + klen + 1 kind + 4 count + payload
	klen := 1
	kindOff := 10 + 2 + klen
	badItemKind := append([]byte(nil), enc...)
	badItemKind[kindOff] = 0
	if _, err := DecodeBatch(badItemKind); err == nil {
		t.Fatalf("expected error on unknown item kind")
	}

	badCount := append([]byte(nil), enc...)
	binary.LittleEndian.PutUint32(badCount[kindOff+1:kindOff+5], 3)
	if _, err := DecodeBatch(badCount); err == nil {
		t.Fatalf("expected error on count beyond buffer")
	}

	// klen too large (announce more than available)
	badKlen := append([]byte(nil), enc...)
	binary.LittleEndian.PutUint16(badKlen[10:12], uint16(500))
	if _, err := DecodeBatch(badKlen); err == nil {
		t.Fatalf("expected error on klen beyond buffer")
	}
}

func TestKindWidth(t *testing.T) {
	if KindF32.Width() != 4 || KindF64.Width() != 8 || Kind(0).Width() != 0 {
		t.Fatalf("unexpected widths")
	}
}
