package varint

// ZigzagEncode maps signed values onto unsigned ones so that values near zero
// stay small: 0, -1, 1, -2, 2 become 0, 1, 2, 3, 4.
func ZigzagEncode(v int64) uint64 {
	return uint64((v >> 63) ^ (v << 1))
}

// ZigzagDecode inverts ZigzagEncode.
func ZigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
