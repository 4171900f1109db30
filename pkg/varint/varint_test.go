package varint

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/prefixvarint/pkg/bytebuf"
)

func TestEncodeDecodeUvarint(t *testing.T) {
	testCases := []struct {
		input uint64
		size  int
	}{
		{0x0, 1},
		{0x7f, 1},
		{0x80, 2},
		{0x3fff, 2},
		{0x4000, 3},
		{0x1fffff, 3},
		{0x200000, 4},
		{0xfffffff, 4},
		{0x10000000, 5},
		{0x7ffffffff, 5},
		{0x800000000, 6},
		{0x3ffffffffff, 6},
		{0x40000000000, 7},
		{0x1ffffffffffff, 7},
		{0x2000000000000, 8},
		{0xffffffffffffff, 8},
		{0x100000000000000, 9},
		{math.MaxUint64, 9},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("uint64(%#x)", tc.input), func(t *testing.T) {
			buf := bytebuf.NewBuffer(0)
			PutUvarint(buf, tc.input)
			require.Equal(t, tc.size, buf.Len())
			assert.Equal(t, tc.size, EncodedLen(tc.input))
			assert.Equal(t, tc.size, DecodedLen(buf.Bytes()[0]))

			r := bytebuf.NewReader(buf.Bytes())
			v, ok := GetUvarint(r)
			require.True(t, ok)
			assert.Equal(t, tc.input, v)
			assert.Zero(t, r.Remaining())
		})
	}
}

func TestRawEncoding(t *testing.T) {
	testCases := []struct {
		input    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x80}},
		{0x3fff, []byte{0xbf, 0xff}},
		{0x4000, []byte{0xc0, 0x40, 0x00}},
		{0x1fffff, []byte{0xdf, 0xff, 0xff}},
		{0x200000, []byte{0xe0, 0x20, 0x00, 0x00}},
		{0x10000000, []byte{0xf0, 0x10, 0x00, 0x00, 0x00}},
		{0x800000000, []byte{0xf8, 0x08, 0x00, 0x00, 0x00, 0x00}},
		{0x40000000000, []byte{0xfc, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0x2000000000000, []byte{0xfe, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0xffffffffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000000000, []byte{0xff, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("uint64(%#x)", tc.input), func(t *testing.T) {
			p := make([]byte, MaxLen)
			n := EncodeUvarint(p, tc.input)
			assert.Equal(t, tc.expected, p[:n], "encoded output mismatch for %#x", tc.input)

			v, m := DecodeUvarint(p)
			assert.Equal(t, tc.input, v)
			assert.Equal(t, n, m)

			// the same bytes written through the slow path
			assert.Equal(t, tc.expected, AppendUvarint(nil, tc.input))
			seg, err := bytebuf.NewSegmentedBuffer(1)
			require.NoError(t, err)
			PutUvarint(seg, tc.input)
			assert.Equal(t, tc.expected, seg.Bytes())
		})
	}
}

func TestEncodeDecodeSequence(t *testing.T) {
	testCases := []struct {
		name   string
		values []uint64
	}{
		{
			name: "ascending",
			values: []uint64{
				0x7f, 0x3ff, 0x1fffff, 0xfffffff, 0x7ffffffff, 0x3ffffffffff,
				0x1ffffffffffff, 0xffffffffffffff, 0xffffffffffffffff,
			},
		},
		{
			name: "descending",
			values: []uint64{
				0xffffffffffffffff, 0xffffffffffffff, 0x1ffffffffffff, 0x3ffffffffff,
				0x7ffffffff, 0xfffffff, 0x1fffff, 0x3ff, 0x7f,
			},
		},
		{
			name:   "mixed",
			values: []uint64{0, math.MaxUint64, 1, 0x4000, 0x7f, 0x80, 0x100000000000000},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytebuf.NewBuffer(0)
			for _, v := range tc.values {
				PutUvarint(buf, v)
			}

			r := bytebuf.NewReader(buf.Bytes())
			var actual []uint64
			for {
				v, ok := GetUvarint(r)
				if !ok {
					break
				}
				actual = append(actual, v)
			}
			assert.Equal(t, tc.values, actual)
			assert.Zero(t, r.Remaining())
		})
	}
}

func TestEndToEndExample(t *testing.T) {
	values := []uint64{0x7f, 0x3ff, 0x1fffff}

	buf := bytebuf.NewBuffer(0)
	for _, v := range values {
		PutUvarint(buf, v)
	}
	require.Len(t, buf.Bytes(), 6)

	r := bytebuf.NewReader(buf.Bytes())
	for _, expected := range values {
		v, ok := GetUvarint(r)
		require.True(t, ok)
		assert.Equal(t, expected, v)
	}
	assert.Zero(t, r.Remaining())
}

const randomTestLen = 128

func TestRandomEncodeDecodeUvarint(t *testing.T) {
	for n := 1; n <= MaxLen; n++ {
		t.Run(fmt.Sprintf("uvarint_%dbyte", n), func(t *testing.T) {
			rng := rand.New(rand.NewSource(0xab))
			limit := maxValue[n]
			input := make([]uint64, randomTestLen)
			for i := range input {
				if limit == math.MaxUint64 {
					input[i] = rng.Uint64()
				} else {
					input[i] = rng.Uint64() % (limit + 1)
				}
			}

			buf := bytebuf.NewBuffer(0)
			for _, v := range input {
				PutUvarint(buf, v)
			}

			r := bytebuf.NewReader(buf.Bytes())
			output := make([]uint64, 0, randomTestLen)
			for range input {
				v, ok := GetUvarint(r)
				require.True(t, ok)
				output = append(output, v)
			}
			assert.Equal(t, input, output)
			assert.Zero(t, r.Remaining())
		})
	}
}

func TestRandomEncodeDecodeVarint(t *testing.T) {
	for n := 1; n <= MaxLen; n++ {
		t.Run(fmt.Sprintf("varint_%dbyte", n), func(t *testing.T) {
			rng := rand.New(rand.NewSource(0xab))
			payloadBits := 7 * n
			if n == MaxLen {
				payloadBits = 64
			}
			input := make([]int64, randomTestLen)
			for i := range input {
				// arithmetic shift keeps the value within a payloadBits-bit signed range
				input[i] = int64(rng.Uint64()) >> (64 - payloadBits)
				require.LessOrEqual(t, EncodedLen(ZigzagEncode(input[i])), n)
			}

			buf := bytebuf.NewBuffer(0)
			for _, v := range input {
				PutVarint(buf, v)
			}

			r := bytebuf.NewReader(buf.Bytes())
			output := make([]int64, 0, randomTestLen)
			for range input {
				v, ok := GetVarint(r)
				require.True(t, ok)
				output = append(output, v)
			}
			assert.Equal(t, input, output)
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, ok := GetUvarint(bytebuf.NewReader(nil))
	assert.False(t, ok)

	_, ok = GetVarint(bytebuf.NewChain())
	assert.False(t, ok)

	_, n := Uvarint(nil)
	assert.Zero(t, n)
}

func TestDecodeTagOnly(t *testing.T) {
	for tag := byte(math.MaxUint8); tag != 0; tag <<= 1 {
		r := bytebuf.NewReader([]byte{tag})
		_, ok := GetUvarint(r)
		assert.False(t, ok, "%#b", tag)
		assert.Zero(t, r.Remaining(), "%#b", tag)
	}
}

func TestDecodeTruncated(t *testing.T) {
	for n := 1; n <= MaxLen; n++ {
		v := maxValue[n]
		t.Run(fmt.Sprintf("uint64(%#x)", v), func(t *testing.T) {
			encoded := AppendUvarint(nil, v)
			trunc := encoded[:len(encoded)-1]

			r := bytebuf.NewReader(trunc)
			_, ok := GetUvarint(r)
			assert.False(t, ok)
			assert.Zero(t, r.Remaining(), "cursor must be exhausted")

			c := bytebuf.NewChain(splitEvery(trunc, 1)...)
			_, ok = GetUvarint(c)
			assert.False(t, ok)
			assert.Zero(t, c.Remaining())

			_, m := Uvarint(trunc)
			assert.Zero(t, m)
			_, m = Varint(trunc)
			assert.Zero(t, m)
		})
	}
}

func TestTruncatedTailAfterValues(t *testing.T) {
	encoded := AppendUvarint(nil, 0x3fff)
	encoded = AppendUvarint(encoded, 5)
	encoded = append(encoded, 0xfe, 0x01, 0x02)

	r := bytebuf.NewReader(encoded)
	v, ok := GetUvarint(r)
	require.True(t, ok)
	assert.Equal(t, uint64(0x3fff), v)
	v, ok = GetUvarint(r)
	require.True(t, ok)
	assert.Equal(t, uint64(5), v)

	_, ok = GetUvarint(r)
	assert.False(t, ok)
	assert.Zero(t, r.Remaining())
}

func TestSegmentedSinkMatchesContiguous(t *testing.T) {
	values := []uint64{
		0, 0x7f, 0x80, 0x3fff, 0x4000, 0x1fffff, 0x200000, 0xfffffff, 0x10000000,
		0x7ffffffff, 0x800000000, 0x3ffffffffff, 0x40000000000, 0x1ffffffffffff,
		0x2000000000000, 0xffffffffffffff, 0x100000000000000, math.MaxUint64,
	}
	contiguous := bytebuf.NewBuffer(0)
	for _, v := range values {
		PutUvarint(contiguous, v)
	}

	for size := 1; size <= 2*MaxLen; size++ {
		t.Run(fmt.Sprintf("segment_%d", size), func(t *testing.T) {
			seg, err := bytebuf.NewSegmentedBuffer(size)
			require.NoError(t, err)
			for _, v := range values {
				PutUvarint(seg, v)
			}
			assert.Equal(t, contiguous.Bytes(), seg.Bytes())

			c := bytebuf.NewChain(seg.Segments()...)
			for _, expected := range values {
				v, ok := GetUvarint(c)
				require.True(t, ok)
				assert.Equal(t, expected, v)
			}
			assert.Zero(t, c.Remaining())
		})
	}
}

func TestOrderPreserving(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []uint64{0, 0x7f, 0x80, 0x3fff, 0x4000, 0xffffffffffffff, 0x100000000000000, math.MaxUint64}
	for i := 0; i < 256; i++ {
		values = append(values, rng.Uint64()>>uint(rng.Intn(64)))
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	for i := 1; i < len(values); i++ {
		a, b := AppendUvarint(nil, values[i-1]), AppendUvarint(nil, values[i])
		if values[i-1] == values[i] {
			assert.Equal(t, a, b)
			continue
		}
		assert.Equal(t, -1, bytes.Compare(a, b), "%#x should sort before %#x", values[i-1], values[i])
	}
}

func TestUncheckedPrecondition(t *testing.T) {
	assert.Panics(t, func() { DecodeUvarint([]byte{0x80, 0x01}) })
	assert.Panics(t, func() { EncodeUvarint(make([]byte, 4), 0x4000) })
	assert.Panics(t, func() { DecodeUvarint(nil) })

	// a one-byte value needs only one byte
	v, n := DecodeUvarint([]byte{0x05})
	assert.Equal(t, uint64(5), v)
	assert.Equal(t, 1, n)
}

func TestMaxValue(t *testing.T) {
	assert.Zero(t, MaxValue(0))
	assert.Zero(t, MaxValue(MaxLen+1))
	for n := 1; n < MaxLen; n++ {
		assert.Equal(t, uint64(1)<<(7*n)-1, MaxValue(n))
		assert.Equal(t, n, EncodedLen(MaxValue(n)))
		assert.Equal(t, n+1, EncodedLen(MaxValue(n)+1))
	}
	assert.Equal(t, uint64(math.MaxUint64), MaxValue(MaxLen))
}

func splitEvery(b []byte, n int) [][]byte {
	var chunks [][]byte
	for len(b) > n {
		chunks = append(chunks, b[:n])
		b = b[n:]
	}
	return append(chunks, b)
}
