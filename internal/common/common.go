package common

import (
	"encoding/binary"
)

// Message buffer layout shared by every package that touches raw buffers.
const (
	BufferSize  = 1280
	WideSize    = 640
	HeaderSize  = 11
	ContentSize = BufferSize - HeaderSize

	End  byte = 0xBF
	Pipe byte = '|'

	NoValue uint16 = 0xFFFF
	NoIcon  byte   = 0xFE
)

// Header field offsets (from the start of the buffer).
const (
	OffTextBoxType      = 0
	OffTextBoxYPos      = 1
	OffDisplayIcon      = 2
	OffNextMessageID    = 3
	OffFirstItemRupees  = 5
	OffSecondItemRupees = 7
	OffPadding          = 9
)

// Order is the host byte order for multi-byte header fields and %w arguments.
var Order = binary.BigEndian

// U16 reads an unaligned u16 at off.
func U16(b []byte, off int) uint16 {
	return Order.Uint16(b[off:])
}

// PutU16 writes an unaligned u16 at off.
func PutU16(b []byte, off int, v uint16) {
	Order.PutUint16(b[off:], v)
}

// Bound clamps n to the content region size.
func Bound(n int) int {
	if n > ContentSize {
		return ContentSize
	}
	if n < 0 {
		return 0
	}
	return n
}

// IndexEnd returns the offset of the first End byte in b[:limit], or limit
// when none is present.
func IndexEnd(b []byte, limit int) int {
	if limit > len(b) {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if b[i] == End {
			return i
		}
	}
	return limit
}
