package bytebuf

const minGrow = 64

// Buffer is a growable byte slice usable as a varint.Sink.
type Buffer struct {
	buf []byte
}

// NewBuffer returns an empty Buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Writable returns the spare capacity after the written bytes, growing the
// buffer first when it is full.
func (b *Buffer) Writable() []byte {
	if len(b.buf) == cap(b.buf) {
		b.grow(minGrow)
	}
	return b.buf[len(b.buf):cap(b.buf)]
}

func (b *Buffer) Commit(n int) {
	if n < 0 || len(b.buf)+n > cap(b.buf) {
		panic(ErrCommitOutOfRange)
	}
	b.buf = b.buf[:len(b.buf)+n]
}

func (b *Buffer) Put(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *Buffer) grow(n int) {
	if n < cap(b.buf) {
		n = cap(b.buf)
	}
	grown := make([]byte, len(b.buf), cap(b.buf)+n)
	copy(grown, b.buf)
	b.buf = grown
}

// Bytes returns the written bytes. The slice aliases the buffer until the next
// write.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}
