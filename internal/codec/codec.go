// internal/codec/codec.go
package codec

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Int32Size is the payload width of one driver word.
const Int32Size = 4

// MaxDecimalLen is the longest text Decimal can produce ("-2147483648").
const MaxDecimalLen = 11

// PutInt32 encodes v as the native-endian 4-byte buffer a WriteToDevice request points at.
func PutInt32(v int32) []byte {
	buf := make([]byte, Int32Size)
	binary.NativeEndian.PutUint32(buf, uint32(v))
	return buf
}

// Int32 decodes a buffer produced by PutInt32.
func Int32(b []byte) (int32, error) {
	if len(b) != Int32Size {
		return 0, fmt.Errorf("codec: int32 payload must be %d bytes, got %d", Int32Size, len(b))
	}
	return int32(binary.NativeEndian.Uint32(b)), nil
}

// Decimal renders v the way the driver's text write parser expects it.
// No padding, no terminator.
func Decimal(v int32) []byte {
	return strconv.AppendInt(make([]byte, 0, MaxDecimalLen), int64(v), 10)
}

// ParseInt32 parses a command-line argument into a driver word.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
