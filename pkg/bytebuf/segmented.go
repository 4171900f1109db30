package bytebuf

// SegmentedBuffer is a sink that writes into fixed-size segments, starting a
// new one whenever the current segment fills up. A value may straddle two
// segments.
type SegmentedBuffer struct {
	size     int
	segments [][]byte
}

// NewSegmentedBuffer returns a SegmentedBuffer whose segments hold size bytes.
func NewSegmentedBuffer(size int) (*SegmentedBuffer, error) {
	if size <= 0 {
		return nil, ErrSegmentSize
	}
	return &SegmentedBuffer{size: size}, nil
}

func (s *SegmentedBuffer) current() []byte {
	if len(s.segments) == 0 || len(s.segments[len(s.segments)-1]) == s.size {
		s.segments = append(s.segments, make([]byte, 0, s.size))
	}
	return s.segments[len(s.segments)-1]
}

// Writable returns the free tail of the current segment. It is never longer
// than the segment size.
func (s *SegmentedBuffer) Writable() []byte {
	seg := s.current()
	return seg[len(seg):cap(seg)]
}

func (s *SegmentedBuffer) Commit(n int) {
	seg := s.current()
	if n < 0 || len(seg)+n > cap(seg) {
		panic(ErrCommitOutOfRange)
	}
	s.segments[len(s.segments)-1] = seg[:len(seg)+n]
}

func (s *SegmentedBuffer) Put(p []byte) {
	for len(p) > 0 {
		seg := s.current()
		n := copy(seg[len(seg):cap(seg)], p)
		s.segments[len(s.segments)-1] = seg[:len(seg)+n]
		p = p[n:]
	}
}

// Segments returns the written segments in order. The last one may be
// partially filled.
func (s *SegmentedBuffer) Segments() [][]byte {
	return s.segments
}

func (s *SegmentedBuffer) Len() int {
	n := 0
	for _, seg := range s.segments {
		n += len(seg)
	}
	return n
}

// Bytes returns a copy of all written bytes as one slice.
func (s *SegmentedBuffer) Bytes() []byte {
	out := make([]byte, 0, s.Len())
	for _, seg := range s.segments {
		out = append(out, seg...)
	}
	return out
}
