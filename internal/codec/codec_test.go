// internal/codec/codec_test.go
package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutInt32_RoundTrip(t *testing.T) {
	values := []int32{math.MinInt32, -1, 0, 1, 2048, math.MaxInt32}

	for _, v := range values {
		buf := PutInt32(v)
		require.Len(t, buf, Int32Size)

		// generic native-endian reader
		assert.Equal(t, v, int32(binary.NativeEndian.Uint32(buf)), "v=%d", v)

		got, err := Int32(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestInt32_WrongLength(t *testing.T) {
	_, err := Int32([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = Int32(nil)
	assert.Error(t, err)
}

func TestDecimal(t *testing.T) {
	cases := map[int32]string{
		0:             "0",
		7:             "7",
		2048:          "2048",
		-1:            "-1",
		math.MaxInt32: "2147483647",
		math.MinInt32: "-2147483648",
	}

	for v, want := range cases {
		assert.Equal(t, want, string(Decimal(v)))
	}
	assert.Len(t, Decimal(math.MinInt32), MaxDecimalLen)
}

func TestParseInt32(t *testing.T) {
	v, err := ParseInt32("-42")
	require.NoError(t, err)
	assert.Equal(t, int32(-42), v)

	_, err = ParseInt32("2147483648")
	assert.Error(t, err)

	_, err = ParseInt32("abc")
	assert.Error(t, err)

	_, err = ParseInt32("")
	assert.Error(t, err)
}
