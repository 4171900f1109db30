package bytebuf

// Reader is a varint.Cursor over a single byte slice.
type Reader struct {
	b   []byte
	off int
}

func NewReader(b []byte) *Reader {
	return &Reader{b: b}
}

func (r *Reader) Chunk() []byte {
	return r.b[r.off:]
}

func (r *Reader) Remaining() int {
	return len(r.b) - r.off
}

func (r *Reader) Advance(n int) {
	if n < 0 || n > r.Remaining() {
		panic(ErrAdvanceOutOfRange)
	}
	r.off += n
}

// Chain is a varint.Cursor reading several chunks back to back.
type Chain struct {
	chunks    [][]byte
	remaining int
}

// NewChain returns a cursor over chunks. Empty chunks are skipped.
func NewChain(chunks ...[]byte) *Chain {
	c := &Chain{}
	for _, chunk := range chunks {
		if len(chunk) == 0 {
			continue
		}
		c.chunks = append(c.chunks, chunk)
		c.remaining += len(chunk)
	}
	return c
}

func (c *Chain) Chunk() []byte {
	if len(c.chunks) == 0 {
		return nil
	}
	return c.chunks[0]
}

func (c *Chain) Remaining() int {
	return c.remaining
}

func (c *Chain) Advance(n int) {
	if n < 0 || n > c.remaining {
		panic(ErrAdvanceOutOfRange)
	}
	c.remaining -= n
	for n > 0 {
		if n < len(c.chunks[0]) {
			c.chunks[0] = c.chunks[0][n:]
			return
		}
		n -= len(c.chunks[0])
		c.chunks = c.chunks[1:]
	}
}
