package codec

// Codec encodes and decodes single integers to and from byte slices.
type Codec interface {
	MarshalUvarint(x uint64) ([]byte, error)
	MarshalVarint(x int64) ([]byte, error)
	// UnmarshalUvarint decodes data, which must hold exactly one value.
	UnmarshalUvarint(data []byte, v *uint64) error
	UnmarshalVarint(data []byte, v *int64) error
	// DecodeUvarint decodes the value at the start of data and reports how
	// many bytes it used.
	DecodeUvarint(data []byte) (uint64, int, error)
}
