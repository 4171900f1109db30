package serialization

import (
	"fmt"

	"github.com/eigerco/prefixvarint/pkg/serialization/codec"
)

// Serializer provides methods to encode and decode using a specified codec.
type Serializer struct {
	codec codec.Codec
}

// NewSerializer initializes a new Serializer with the given codec.
func NewSerializer(c codec.Codec) *Serializer {
	return &Serializer{codec: c}
}

// EncodeUvarint serializes a single unsigned value.
func (s *Serializer) EncodeUvarint(v uint64) ([]byte, error) {
	return s.codec.MarshalUvarint(v)
}

// EncodeVarint serializes a single signed value.
func (s *Serializer) EncodeVarint(v int64) ([]byte, error) {
	return s.codec.MarshalVarint(v)
}

// DecodeUvarint deserializes data holding exactly one unsigned value.
func (s *Serializer) DecodeUvarint(data []byte, v *uint64) error {
	return s.codec.UnmarshalUvarint(data, v)
}

// DecodeVarint deserializes data holding exactly one signed value.
func (s *Serializer) DecodeVarint(data []byte, v *int64) error {
	return s.codec.UnmarshalVarint(data, v)
}

// EncodeUvarints concatenates the encodings of vs.
func (s *Serializer) EncodeUvarints(vs []uint64) ([]byte, error) {
	var out []byte
	for i, v := range vs {
		b, err := s.codec.MarshalUvarint(v)
		if err != nil {
			return nil, fmt.Errorf("encoding value %d: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeUvarints decodes back-to-back values until data is used up.
func (s *Serializer) DecodeUvarints(data []byte) ([]uint64, error) {
	var out []uint64
	for len(data) > 0 {
		v, n, err := s.codec.DecodeUvarint(data)
		if err != nil {
			return out, fmt.Errorf("decoding value %d: %w", len(out), err)
		}
		out = append(out, v)
		data = data[n:]
	}
	return out, nil
}
