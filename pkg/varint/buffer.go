package varint

import "encoding/binary"

// Sink is an append-only, growable byte destination.
type Sink interface {
	// Writable returns the contiguous writable region at the write position.
	// It may be shorter than MaxLen, or empty.
	Writable() []byte
	// Commit marks the first n bytes of the region returned by Writable as
	// written.
	Commit(n int)
	// Put appends p, growing the sink or moving to a new chunk as needed.
	Put(p []byte)
}

// Cursor is a sequential byte source, possibly spanning several chunks.
type Cursor interface {
	// Chunk returns the contiguous readable region at the read position. It
	// may be shorter than Remaining but is never empty while Remaining is
	// non-zero.
	Chunk() []byte
	// Remaining is the total number of unread bytes across all chunks.
	Remaining() int
	// Advance skips n bytes. n must not exceed Remaining.
	Advance(n int)
}

// PutUvarint appends v to s using 1 to MaxLen bytes.
func PutUvarint(s Sink, v uint64) {
	if buf := s.Writable(); len(buf) >= MaxLen {
		s.Commit(EncodeUvarint(buf, v))
		return
	}
	putUvarintSlow(s, v)
}

// PutVarint appends the zigzag encoding of v to s.
func PutVarint(s Sink, v int64) {
	PutUvarint(s, ZigzagEncode(v))
}

func putUvarintSlow(s Sink, v uint64) {
	var scratch [MaxLen]byte
	n := EncodedLen(v)
	switch n {
	case 1:
		scratch[0] = byte(v)
	case MaxLen:
		scratch[0] = 0xff
		binary.BigEndian.PutUint64(scratch[1:], v)
	default:
		putUint(scratch[:n], v|tagPrefix[n])
	}
	s.Put(scratch[:n])
}

// putUint writes the low len(p) bytes of v into p in big-endian order.
func putUint(p []byte, v uint64) {
	for i := len(p) - 1; i >= 0; i-- {
		p[i] = byte(v)
		v >>= 8
	}
}

// GetUvarint reads one value from c.
//
// It returns false when c is empty. When c holds fewer bytes than the tag
// declares, c is advanced to its end and false is returned: the partial value
// is dropped rather than left for a later read.
func GetUvarint(c Cursor) (uint64, bool) {
	if buf := c.Chunk(); len(buf) >= MaxLen {
		v, n := DecodeUvarint(buf)
		c.Advance(n)
		return v, true
	}
	if c.Remaining() == 0 {
		return 0, false
	}
	tag := getByte(c)
	if tag <= max1ByteTag {
		return uint64(tag), true
	}
	return getUvarintSlow(c, tag)
}

// GetVarint reads one zigzag-encoded value from c, with the same truncation
// behaviour as GetUvarint.
func GetVarint(c Cursor) (int64, bool) {
	v, ok := GetUvarint(c)
	if !ok {
		return 0, false
	}
	return ZigzagDecode(v), true
}

func getUvarintSlow(c Cursor, tag byte) (uint64, bool) {
	k := extraBytes(tag)
	if c.Remaining() < k {
		c.Advance(c.Remaining())
		return 0, false
	}

	var scratch [8]byte
	copyFrom(c, scratch[8-k:])
	raw := binary.BigEndian.Uint64(scratch[:])
	if k == 8 {
		return raw, true
	}
	return (uint64(tag)<<(8*k) | raw) & maxValue[k+1], true
}

func getByte(c Cursor) byte {
	b := c.Chunk()[0]
	c.Advance(1)
	return b
}

// copyFrom fills dst from c, crossing chunk boundaries. The caller checks
// Remaining first.
func copyFrom(c Cursor, dst []byte) {
	for len(dst) > 0 {
		n := copy(dst, c.Chunk())
		c.Advance(n)
		dst = dst[n:]
	}
}
