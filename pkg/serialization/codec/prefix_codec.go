package codec

import (
	"github.com/eigerco/prefixvarint/pkg/varint"
)

// PrefixCodec implements the Codec interface for the prefix varint encoding.
type PrefixCodec struct {
	strict bool
}

// NewPrefixCodec initializes a prefix codec that accepts any well-formed
// encoding, including ones longer than necessary.
func NewPrefixCodec() *PrefixCodec {
	return &PrefixCodec{}
}

// NewStrictPrefixCodec initializes a prefix codec that rejects encodings which
// are not the shortest form of their value.
func NewStrictPrefixCodec() *PrefixCodec {
	return &PrefixCodec{strict: true}
}

func (p *PrefixCodec) MarshalUvarint(x uint64) ([]byte, error) {
	return varint.AppendUvarint(make([]byte, 0, varint.EncodedLen(x)), x), nil
}

func (p *PrefixCodec) MarshalVarint(x int64) ([]byte, error) {
	return p.MarshalUvarint(varint.ZigzagEncode(x))
}

func (p *PrefixCodec) DecodeUvarint(data []byte) (uint64, int, error) {
	v, n := varint.Uvarint(data)
	if n == 0 {
		return 0, 0, ErrTruncated
	}
	if p.strict && varint.EncodedLen(v) != n {
		return 0, 0, ErrNonCanonical
	}
	return v, n, nil
}

func (p *PrefixCodec) UnmarshalUvarint(data []byte, v *uint64) error {
	x, n, err := p.DecodeUvarint(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return ErrTrailingBytes
	}
	*v = x
	return nil
}

func (p *PrefixCodec) UnmarshalVarint(data []byte, v *int64) error {
	var u uint64
	if err := p.UnmarshalUvarint(data, &u); err != nil {
		return err
	}
	*v = varint.ZigzagDecode(u)
	return nil
}
