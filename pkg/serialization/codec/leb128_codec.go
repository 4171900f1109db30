package codec

import (
	"encoding/binary"

	"github.com/eigerco/prefixvarint/pkg/varint"
)

// LEB128Codec implements the Codec interface for the little-endian base 128
// encoding used by protobuf and encoding/binary. Signed values use the same
// zigzag mapping as PrefixCodec so both produce comparable sizes.
type LEB128Codec struct{}

func (l *LEB128Codec) MarshalUvarint(x uint64) ([]byte, error) {
	return binary.AppendUvarint(nil, x), nil
}

func (l *LEB128Codec) MarshalVarint(x int64) ([]byte, error) {
	return l.MarshalUvarint(varint.ZigzagEncode(x))
}

func (l *LEB128Codec) DecodeUvarint(data []byte) (uint64, int, error) {
	v, n := binary.Uvarint(data)
	switch {
	case n == 0:
		return 0, 0, ErrTruncated
	case n < 0:
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

func (l *LEB128Codec) UnmarshalUvarint(data []byte, v *uint64) error {
	x, n, err := l.DecodeUvarint(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return ErrTrailingBytes
	}
	*v = x
	return nil
}

func (l *LEB128Codec) UnmarshalVarint(data []byte, v *int64) error {
	var u uint64
	if err := l.UnmarshalUvarint(data, &u); err != nil {
		return err
	}
	*v = varint.ZigzagDecode(u)
	return nil
}
