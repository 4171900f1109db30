package varint

// MaxLen is the maximum number of bytes a single encoded uvarint occupies.
const MaxLen = 9

// maxValue holds the largest value representable in n bytes, indexed by n.
var maxValue = [MaxLen + 1]uint64{
	0x0,
	0x7f,
	0x3fff,
	0x1fffff,
	0xfffffff,
	0x7ffffffff,
	0x3ffffffffff,
	0x1ffffffffffff,
	0xffffffffffffff,
	0xffffffffffffffff,
}

// tagPrefix is ORed into an n-byte value to set its unary length tag.
// Length 9 has no entry: its tag is a whole 0xff byte written separately.
var tagPrefix = [MaxLen]uint64{
	0x0,
	0x0,
	0x8000,
	0xc00000,
	0xe0000000,
	0xf000000000,
	0xf80000000000,
	0xfc000000000000,
	0xfe00000000000000,
}

const max1ByteTag = byte(0x7f)

// EncodedLen returns the minimal number of bytes needed to encode v.
func EncodedLen(v uint64) int {
	for n := 1; n < MaxLen; n++ {
		if v <= maxValue[n] {
			return n
		}
	}
	return MaxLen
}

// DecodedLen returns the total encoded length declared by the tag byte.
//
// The result is always in [1, 9].
func DecodedLen(tag byte) int {
	return extraBytes(tag) + 1
}

// MaxValue returns the largest value that encodes into n bytes. It returns 0
// when n is outside [1, MaxLen].
func MaxValue(n int) uint64 {
	if n < 1 || n > MaxLen {
		return 0
	}
	return maxValue[n]
}
