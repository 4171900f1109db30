// Package varint implements a prefix variable length integer encoding.
//
// The first byte of an encoded value starts with a unary tag: a run of k
// one-bits followed by a zero (absent when k is 8) declares k bytes after the
// first. The value is packed big-endian into the bits below the tag and the
// following bytes, so a value takes 1 to 9 bytes and a decoder learns the full
// length from the first byte alone.
//
//	0xxxxxxx                      7 bits
//	10xxxxxx xxxxxxxx             14 bits
//	110xxxxx xxxxxxxx xxxxxxxx    21 bits
//	...
//	11111110 + 7 bytes            56 bits
//	11111111 + 8 bytes            64 bits
//
// Signed values are zigzag encoded first so that small negative numbers stay
// short. Unsigned encodings compare bytewise in numeric order.
//
// Encode/Decode operate directly on a slice that must hold MaxLen bytes.
// PutUvarint/GetUvarint work against a Sink or Cursor and check bounds,
// taking the direct route only when a large enough contiguous region is
// available.
package varint
