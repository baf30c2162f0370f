package codec

import (
	"encoding/binary"
	"math"

	"github.com/fxamacker/cbor/v2"
	"github.com/x448/float16"
)

// CBOR is a Codec that serializes values using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
//
// Floats are always encoded without loss: NaN payloads and -0 are kept
// (NaNConvertPreserveSignal). With Compact set, each float
// shrinks to the shortest IEEE width (float16/float32/float64) that still
// round-trips exactly; otherwise floats keep their Go width.
//
// float32 and []float32 are written and read as raw float items rather than
// through float64, which would set the quiet bit of a signalling NaN.
type CBOR[V any] struct {
	enc     cbor.EncMode
	dec     cbor.DecMode
	compact bool
}

var _ Codec[[]float64] = CBOR[[]float64]{}

// CBOROptions configures NewCBOR.
type CBOROptions struct {
	// Deterministic selects CoreDetEncOptions (RFC 8949) for byte-for-byte
	// stable output. Otherwise PreferredUnsortedEncOptions are used.
	Deterministic bool
	// Compact enables lossless shortest-float encoding.
	Compact bool
}

// NewCBOR constructs a CBOR codec.
func NewCBOR[V any](o CBOROptions) (CBOR[V], error) {
	var eo cbor.EncOptions
	if o.Deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.NaNConvert = cbor.NaNConvertPreserveSignal
	if o.Compact {
		eo.ShortestFloat = cbor.ShortestFloat16
		eo.InfConvert = cbor.InfConvertFloat16
	} else {
		eo.ShortestFloat = cbor.ShortestFloatNone
		eo.InfConvert = cbor.InfConvertNone
	}

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm, compact: o.Compact}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Should not use for prod just handy for package-level variables in tests/examples.
func MustCBOR[V any](o CBOROptions) CBOR[V] {
	c, err := NewCBOR[V](o)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode encodes v as CBOR using the configured EncMode.
func (c CBOR[V]) Encode(v V) ([]byte, error) {
	switch x := any(v).(type) {
	case float32:
		return c.float32Raw(x), nil
	case []float32:
		if x == nil {
			break
		}
		items := make([]cbor.RawMessage, len(x))
		for i, f := range x {
			items[i] = c.float32Raw(f)
		}
		return c.enc.Marshal(items)
	}
	return c.enc.Marshal(v)
}

// float32Raw emits a single precision item, or a half precision one in
// compact mode when that keeps every bit.
func (c CBOR[V]) float32Raw(f float32) cbor.RawMessage {
	u := math.Float32bits(f)
	if c.compact {
		if h, ok := exactFloat16(f, u); ok {
			return cbor.RawMessage{0xF9, byte(h >> 8), byte(h)}
		}
	}
	return cbor.RawMessage{0xFA, byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)}
}

func exactFloat16(f float32, u uint32) (uint16, bool) {
	if f != f { // NaN: keep sign, signal bit and payload
		if u&0x1FFF != 0 {
			return 0, false
		}
		return uint16(u>>16)&0x8000 | 0x7C00 | uint16(u>>13)&0x3FF, true
	}
	if float16.PrecisionFromfloat32(f) != float16.PrecisionExact {
		return 0, false
	}
	return float16.Fromfloat32(f).Bits(), true
}

// Decode decodes b into a V using the configured DecMode.
func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	switch p := any(&v).(type) {
	case *float32:
		f, err := c.float32Item(b)
		*p = f
		return v, err
	case *[]float32:
		var items []cbor.RawMessage
		if err := c.dec.Unmarshal(b, &items); err != nil {
			return v, err
		}
		if items == nil {
			return v, nil
		}
		out := make([]float32, len(items))
		for i, it := range items {
			f, err := c.float32Item(it)
			if err != nil {
				return v, err
			}
			out[i] = f
		}
		*p = out
		return v, nil
	}
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

// float32Item reads half and single precision items bit for bit (major type
// 7, big-endian payload). Anything else goes through the DecMode.
func (c CBOR[V]) float32Item(raw []byte) (float32, error) {
	switch {
	case len(raw) == 3 && raw[0] == 0xF9:
		return float16.Frombits(binary.BigEndian.Uint16(raw[1:])).Float32(), nil
	case len(raw) == 5 && raw[0] == 0xFA:
		return math.Float32frombits(binary.BigEndian.Uint32(raw[1:])), nil
	}
	var f float32
	err := c.dec.Unmarshal(raw, &f)
	return f, err
}
