package codec

import "errors"

var (
	// ErrTruncated is returned when the input ends before the length its tag declares
	ErrTruncated = errors.New("codec: truncated varint")
	// ErrTrailingBytes is returned when a single-value unmarshal finds bytes after the value
	ErrTrailingBytes = errors.New("codec: trailing bytes after varint")
	// ErrNonCanonical is returned in strict mode for an encoding longer than necessary
	ErrNonCanonical = errors.New("codec: varint is not minimally encoded")
	ErrOverflow     = errors.New("codec: varint overflows uint64")

	ErrReadingBytes = "error reading bytes: %w"
	ErrReadingByte  = "error reading byte: %w"
	ErrWritingBytes = "error writing bytes: %w"
)
