// Package scontent implements bounded string operations over message content:
// byte strings terminated by End (0xBF) instead of NUL.
//
// Every operation is bounded by min(len(slice), ContentSize). Running off the
// end of a slice counts as reaching the terminator, so a plain Go byte slice
// without an End byte is a valid content string.
package scontent

import (
	"github.com/rawbytedev/eztr/internal/common"
)

const (
	// End terminates message content.
	End = common.End
	// MaxLen is the size of a buffer's content region.
	MaxLen = common.ContentSize
)

// SetEmpty writes End at offset 0. No other bytes are touched.
func SetEmpty(cont []byte) {
	if len(cont) > 0 {
		cont[0] = End
	}
}

// Len returns the number of bytes before the first End, never scanning past
// MaxLen bytes.
func Len(cont []byte) int {
	return common.IndexEnd(cont, MaxLen)
}

// NCopy copies src into dst up to n bytes. Copying stops after the terminator
// is written, when n bytes were copied, or when dst is full; only the first
// case leaves dst terminated. The returned count includes the terminator.
func NCopy(dst, src []byte, n int) int {
	limit := common.Bound(min(n, len(dst)))
	i := 0
	for ; i < limit; i++ {
		if i >= len(src) || src[i] == End {
			dst[i] = End
			return i + 1
		}
		dst[i] = src[i]
	}
	return i
}

// Copy copies src into dst until its terminator or the content capacity.
func Copy(dst, src []byte) int {
	return NCopy(dst, src, MaxLen)
}

// NCat appends at most n bytes of src to the end of dst and terminates the
// result when room is left. The capacity is absolute: the appended string
// never grows dst past MaxLen, whatever its current length.
func NCat(dst, src []byte, n int) []byte {
	limit := common.Bound(len(dst))
	pos := common.IndexEnd(dst, limit)
	for i := 0; i < n && pos < limit; i++ {
		if i >= len(src) || src[i] == End {
			break
		}
		dst[pos] = src[i]
		pos++
	}
	if pos < limit {
		dst[pos] = End
	}
	return dst
}

// Cat appends src to the end of dst.
func Cat(dst, src []byte) []byte {
	return NCat(dst, src, MaxLen)
}

// NCmp compares at most n bytes of two content strings and returns -1, 0 or 1.
//
// A string whose terminator is reached while the other still has bytes is
// the lesser one, whatever the byte value on the other side: End is not the
// smallest byte, so ordinary byte ordering would get prefixes wrong.
func NCmp(str1, str2 []byte, n int) int {
	for i := 0; i < n; i++ {
		a, b := at(str1, i), at(str2, i)
		switch {
		case a == End && b == End:
			return 0
		case a == End:
			return -1
		case b == End:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Cmp compares two content strings over at most MaxLen bytes.
func Cmp(str1, str2 []byte) int {
	return NCmp(str1, str2, MaxLen)
}

func at(s []byte, i int) byte {
	if i >= len(s) || i >= MaxLen {
		return End
	}
	return s[i]
}
