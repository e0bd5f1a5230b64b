// internal/ioc/constants.go
package ioc

// Request word layout constants.
// These values mirror the kernel's asm-generic ioctl encoding and MUST NOT be configurable.

// ---- FIELD WIDTHS ----

// NrBits is the width of the opcode field.
const NrBits = 8

// MagicBits is the width of the driver magic field.
const MagicBits = 8

// SizeBits is the width of the payload size field.
const SizeBits = 14

// DirBits is the width of the direction field.
const DirBits = 2

// ---- FIELD SHIFTS ----

const NrShift = 0
const MagicShift = NrShift + NrBits
const SizeShift = MagicShift + MagicBits
const DirShift = SizeShift + SizeBits

// ---- FIELD MASKS ----

const nrMask = 1<<NrBits - 1
const magicMask = 1<<MagicBits - 1
const sizeMask = 1<<SizeBits - 1
const dirMask = 1<<DirBits - 1

// MaxSize is the largest payload size the size field can carry.
const MaxSize = sizeMask
