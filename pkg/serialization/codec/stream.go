package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/eigerco/prefixvarint/pkg/varint"
)

// Encoder writes prefix varints to an io.Writer.
type Encoder struct {
	w       io.Writer
	scratch [varint.MaxLen]byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) EncodeUvarint(v uint64) error {
	n := varint.EncodeUvarint(e.scratch[:], v)
	if _, err := e.w.Write(e.scratch[:n]); err != nil {
		return fmt.Errorf(ErrWritingBytes, err)
	}
	return nil
}

func (e *Encoder) EncodeVarint(v int64) error {
	return e.EncodeUvarint(varint.ZigzagEncode(v))
}

// Decoder reads prefix varints from an io.Reader.
type Decoder struct {
	r       io.ByteReader
	scratch [varint.MaxLen]byte
}

// NewDecoder returns a Decoder reading from r. If r does not implement
// io.ByteReader it is wrapped in a bufio.Reader, which may read ahead.
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// DecodeUvarint reads the next value. It returns io.EOF when the input ends
// cleanly before a value and an error wrapping io.ErrUnexpectedEOF when it
// ends inside one.
func (d *Decoder) DecodeUvarint() (uint64, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf(ErrReadingByte, err)
	}

	n := varint.DecodedLen(tag)
	d.scratch[0] = tag
	for i := 1; i < n; i++ {
		if d.scratch[i], err = d.r.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return 0, fmt.Errorf(ErrReadingBytes, err)
		}
	}

	v, _ := varint.DecodeUvarint(d.scratch[:])
	return v, nil
}

func (d *Decoder) DecodeVarint() (int64, error) {
	v, err := d.DecodeUvarint()
	if err != nil {
		return 0, err
	}
	return varint.ZigzagDecode(v), nil
}
