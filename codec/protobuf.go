package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Protobuf is a Codec for any generated message type.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *wrapperspb.DoubleValue { return &wrapperspb.DoubleValue{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// ProtoFloat64 carries a float64 as google.protobuf.DoubleValue. The field is
// a fixed64 on the wire, itself little-endian, so bits survive unchanged.
type ProtoFloat64 struct{}

// ProtoFloat32 carries a float32 as google.protobuf.FloatValue.
type ProtoFloat32 struct{}

// ProtoFloat64s carries a []float64 as a google.protobuf.ListValue of numbers.
type ProtoFloat64s struct{}

var (
	_ Codec[float64]   = ProtoFloat64{}
	_ Codec[float32]   = ProtoFloat32{}
	_ Codec[[]float64] = ProtoFloat64s{}
)

var (
	doubleMsg = NewProtobuf(func() *wrapperspb.DoubleValue { return &wrapperspb.DoubleValue{} })
	floatMsg  = NewProtobuf(func() *wrapperspb.FloatValue { return &wrapperspb.FloatValue{} })
	listMsg   = NewProtobuf(func() *structpb.ListValue { return &structpb.ListValue{} })
)

func (ProtoFloat64) Encode(v float64) ([]byte, error) { return doubleMsg.Encode(wrapperspb.Double(v)) }
func (ProtoFloat64) Decode(b []byte) (float64, error) {
	m, err := doubleMsg.Decode(b)
	if err != nil {
		return 0, err
	}
	return m.GetValue(), nil
}

func (ProtoFloat32) Encode(v float32) ([]byte, error) { return floatMsg.Encode(wrapperspb.Float(v)) }
func (ProtoFloat32) Decode(b []byte) (float32, error) {
	m, err := floatMsg.Decode(b)
	if err != nil {
		return 0, err
	}
	return m.GetValue(), nil
}

func (ProtoFloat64s) Encode(v []float64) ([]byte, error) {
	lv := &structpb.ListValue{Values: make([]*structpb.Value, len(v))}
	for i, f := range v {
		lv.Values[i] = structpb.NewNumberValue(f)
	}
	return listMsg.Encode(lv)
}

func (ProtoFloat64s) Decode(b []byte) ([]float64, error) {
	lv, err := listMsg.Decode(b)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(lv.GetValues()))
	for i, val := range lv.GetValues() {
		nv, ok := val.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return nil, fmt.Errorf("float64 list: element %d is %T, not a number", i, val.GetKind())
		}
		out[i] = nv.NumberValue
	}
	return out, nil
}
