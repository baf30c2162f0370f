package codec

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// float32 and float64 map to msgpack's fixed-width float types, so a
// []float32 round-trips without widening. float32 values are written and
// read as raw float 32 items, keeping signalling NaNs intact.
type Msgpack[V any] struct{}

var _ Codec[[]float32] = Msgpack[[]float32]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	switch x := any(v).(type) {
	case float32:
		return msgpackPutFloat32(nil, x), nil
	case []float32:
		if x == nil {
			break
		}
		var buf bytes.Buffer
		if err := msgpack.NewEncoder(&buf).EncodeArrayLen(len(x)); err != nil {
			return nil, err
		}
		b := buf.Bytes()
		for _, f := range x {
			b = msgpackPutFloat32(b, f)
		}
		return b, nil
	}
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	switch p := any(&v).(type) {
	case *float32:
		f, err := msgpackFloat32(msgpack.NewDecoder(bytes.NewReader(b)))
		*p = f
		return v, err
	case *[]float32:
		out, err := msgpackFloat32s(msgpack.NewDecoder(bytes.NewReader(b)))
		*p = out
		return v, err
	}
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

// msgpackPutFloat32 appends a float 32 item. The encoder's reflection path
// widens to float64 first, which quiets signalling NaNs.
func msgpackPutFloat32(b []byte, f float32) []byte {
	b = append(b, msgpcode.Float)
	return binary.BigEndian.AppendUint32(b, math.Float32bits(f))
}

func msgpackFloat32s(d *msgpack.Decoder) ([]float32, error) {
	n, err := d.DecodeArrayLen()
	if err != nil || n < 0 {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		if out[i], err = msgpackFloat32(d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// msgpackFloat32 takes float 32 items (0xca, big-endian payload) verbatim.
func msgpackFloat32(d *msgpack.Decoder) (float32, error) {
	raw, err := d.DecodeRaw()
	if err != nil {
		return 0, err
	}
	if len(raw) == 5 && raw[0] == msgpcode.Float {
		return math.Float32frombits(binary.BigEndian.Uint32(raw[1:])), nil
	}
	var f float32
	err = msgpack.Unmarshal(raw, &f)
	return f, err
}
