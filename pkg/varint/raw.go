package varint

import (
	"encoding/binary"
	"math/bits"
)

// extraBytes is the number of bytes following the tag byte.
func extraBytes(tag byte) int {
	return bits.LeadingZeros8(^tag)
}

// EncodeUvarint writes v to p and returns the number of bytes used.
//
// p must hold at least MaxLen bytes: up to MaxLen bytes may be overwritten
// even when the encoding is shorter, and a shorter p panics.
func EncodeUvarint(p []byte, v uint64) int {
	if v <= maxValue[1] {
		p[0] = byte(v)
		return 1
	}
	return encodeUvarintSlow(p, v)
}

func encodeUvarintSlow(p []byte, v uint64) int {
	_ = p[MaxLen-1]
	switch {
	case v <= maxValue[2]:
		binary.BigEndian.PutUint16(p, uint16(v|tagPrefix[2]))
		return 2
	case v <= maxValue[3]:
		binary.BigEndian.PutUint32(p, uint32((v|tagPrefix[3])<<8))
		return 3
	case v <= maxValue[4]:
		binary.BigEndian.PutUint32(p, uint32(v|tagPrefix[4]))
		return 4
	case v <= maxValue[5]:
		binary.BigEndian.PutUint64(p, (v|tagPrefix[5])<<24)
		return 5
	case v <= maxValue[6]:
		binary.BigEndian.PutUint64(p, (v|tagPrefix[6])<<16)
		return 6
	case v <= maxValue[7]:
		binary.BigEndian.PutUint64(p, (v|tagPrefix[7])<<8)
		return 7
	case v <= maxValue[8]:
		binary.BigEndian.PutUint64(p, v|tagPrefix[8])
		return 8
	default:
		p[0] = 0xff
		binary.BigEndian.PutUint64(p[1:], v)
		return 9
	}
}

// EncodeVarint zigzag-encodes v and writes it to p, returning the number of
// bytes used. The same MaxLen precondition as EncodeUvarint applies.
func EncodeVarint(p []byte, v int64) int {
	return EncodeUvarint(p, ZigzagEncode(v))
}

// DecodeUvarint decodes a value from p and returns it with the number of
// bytes consumed.
//
// p must hold at least MaxLen bytes. Up to MaxLen bytes are read regardless of
// the encoded length, and a shorter p panics. Never call it on untrusted input
// without checking the length first; GetUvarint and Uvarint do that.
func DecodeUvarint(p []byte) (uint64, int) {
	tag := p[0]
	if tag <= max1ByteTag {
		return uint64(tag), 1
	}
	return decodeUvarintSlow(tag, p)
}

func decodeUvarintSlow(tag byte, p []byte) (uint64, int) {
	_ = p[MaxLen-1]
	switch extraBytes(tag) {
	// zero is handled by DecodeUvarint
	case 1:
		return uint64(binary.BigEndian.Uint16(p)) & maxValue[2], 2
	case 2:
		return uint64(binary.BigEndian.Uint32(p)>>8) & maxValue[3], 3
	case 3:
		return uint64(binary.BigEndian.Uint32(p)) & maxValue[4], 4
	case 4:
		return (binary.BigEndian.Uint64(p) >> 24) & maxValue[5], 5
	case 5:
		return (binary.BigEndian.Uint64(p) >> 16) & maxValue[6], 6
	case 6:
		return (binary.BigEndian.Uint64(p) >> 8) & maxValue[7], 7
	case 7:
		return binary.BigEndian.Uint64(p) & maxValue[8], 8
	default:
		return binary.BigEndian.Uint64(p[1:]), 9
	}
}

// DecodeVarint decodes a zigzag-encoded value from p. The same MaxLen
// precondition as DecodeUvarint applies.
func DecodeVarint(p []byte) (int64, int) {
	v, n := DecodeUvarint(p)
	return ZigzagDecode(v), n
}
