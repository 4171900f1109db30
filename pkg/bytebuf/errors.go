package bytebuf

import "errors"

var (
	ErrAdvanceOutOfRange = errors.New("bytebuf: advance past end of buffer")
	ErrCommitOutOfRange  = errors.New("bytebuf: commit exceeds writable region")
	ErrSegmentSize       = errors.New("bytebuf: segment size must be positive")
)
