package varint

// AppendUvarint appends the encoding of v to dst and returns the extended
// slice.
func AppendUvarint(dst []byte, v uint64) []byte {
	var scratch [MaxLen]byte
	n := EncodeUvarint(scratch[:], v)
	return append(dst, scratch[:n]...)
}

// AppendVarint appends the zigzag encoding of v to dst.
func AppendVarint(dst []byte, v int64) []byte {
	return AppendUvarint(dst, ZigzagEncode(v))
}

// Uvarint decodes a value from the start of b and returns it with the number
// of bytes read. n is 0 when b is empty or shorter than the tag declares.
func Uvarint(b []byte) (v uint64, n int) {
	if len(b) >= MaxLen {
		return DecodeUvarint(b)
	}
	if len(b) == 0 {
		return 0, 0
	}
	if n = DecodedLen(b[0]); len(b) < n {
		return 0, 0
	}
	var scratch [MaxLen]byte
	copy(scratch[:], b[:n])
	return DecodeUvarint(scratch[:])
}

// Varint decodes a zigzag-encoded value from the start of b. n is 0 when b
// is empty or truncated.
func Varint(b []byte) (int64, int) {
	v, n := Uvarint(b)
	if n == 0 {
		return 0, 0
	}
	return ZigzagDecode(v), n
}
