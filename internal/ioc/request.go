// internal/ioc/request.go
package ioc

import "fmt"

// Direction is the transfer direction stored in the top bits of a request.
type Direction uint8

const (
	// NoTransfer requests carry no payload; size MUST be zero.
	NoTransfer Direction = 0

	// WriteToDevice requests copy a payload from the caller into the driver.
	WriteToDevice Direction = 1
)

func (d Direction) String() string {
	switch d {
	case NoTransfer:
		return "none"
	case WriteToDevice:
		return "write"
	default:
		return fmt.Sprintf("dir(%d)", uint8(d))
	}
}

// Request is an encoded device-control request word.
//
// Layout:
//
//	31..30  direction (bit 30 = write)
//	29..16  payload size in bytes
//	15..8   driver magic
//	7..0    opcode
type Request uint32

// Encode packs the four fields into a request word.
// Pure: no IO, no failure mode. Size is truncated to SizeBits.
func Encode(dir Direction, magic byte, nr uint8, size uint16) Request {
	return Request(
		(uint32(dir)&dirMask)<<DirShift |
			(uint32(size)&sizeMask)<<SizeShift |
			(uint32(magic)&magicMask)<<MagicShift |
			(uint32(nr)&nrMask)<<NrShift,
	)
}

// IO is the request for a command without payload.
func IO(magic byte, nr uint8) Request {
	return Encode(NoTransfer, magic, nr, 0)
}

// IOW is the request for a command that writes size bytes to the driver.
func IOW(magic byte, nr uint8, size uint16) Request {
	return Encode(WriteToDevice, magic, nr, size)
}

func (r Request) Dir() Direction {
	return Direction((uint32(r) >> DirShift) & dirMask)
}

func (r Request) Size() uint16 {
	return uint16((uint32(r) >> SizeShift) & sizeMask)
}

func (r Request) Magic() byte {
	return byte((uint32(r) >> MagicShift) & magicMask)
}

func (r Request) Nr() uint8 {
	return uint8((uint32(r) >> NrShift) & nrMask)
}

func (r Request) String() string {
	return fmt.Sprintf(
		"0x%08x (dir=%s size=%d magic=%q nr=%d)",
		uint32(r),
		r.Dir(),
		r.Size(),
		rune(r.Magic()),
		r.Nr(),
	)
}
