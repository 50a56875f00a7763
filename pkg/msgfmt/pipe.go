package msgfmt

import (
	"strconv"

	"github.com/rawbytedev/eztr/internal/common"
)

// Pipe escapes embed raw bytes in readable text: "A|191|B" is the bytes
// 0x41 0xBF 0x42. The rules, applied left to right:
//
//   - '|' followed by decimal digits and a closing '|' emits one byte; both
//     pipes are consumed.
//   - '|' followed by digits that run into whitespace or the end of input
//     emits one byte; the whitespace is kept.
//   - values above 255 clamp to 255.
//   - anything else is malformed and passes through verbatim: the '|' is
//     emitted as-is and scanning resumes right after it.

// unescapeInto feeds the pipe-decoded bytes of s to put.
func unescapeInto(s string, put func(byte)) {
	for i := 0; i < len(s); {
		c := s[i]
		if c != common.Pipe {
			put(c)
			i++
			continue
		}
		v, next, ok := scanPipe(s, i)
		if !ok {
			put(c)
			i++
			continue
		}
		put(v)
		i = next
	}
}

// scanPipe parses an escape starting at s[i] == '|'. It returns the byte,
// the index to resume at and whether the escape was well formed.
func scanPipe(s string, i int) (byte, int, bool) {
	j := i + 1
	v := 0
	for j < len(s) && isDigit(s[j]) {
		if v <= 255 {
			v = v*10 + int(s[j]-'0')
		}
		j++
	}
	if j == i+1 {
		return 0, 0, false
	}
	if v > 255 {
		v = 255
	}
	switch {
	case j == len(s), isSpace(s[j]):
		return byte(v), j, true
	case s[j] == common.Pipe:
		return byte(v), j + 1, true
	default:
		return 0, 0, false
	}
}

// Unescape returns the pipe-decoded bytes of s.
func Unescape(s string) []byte {
	out := make([]byte, 0, len(s))
	unescapeInto(s, func(c byte) { out = append(out, c) })
	return out
}

// Escape renders b in pipe-escaped form: printable ASCII stays as-is, every
// other byte (and '|' itself) becomes |N|. Unescape(Escape(b)) == b.
func Escape(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c >= 0x20 && c < 0x7F && c != common.Pipe {
			out = append(out, c)
			continue
		}
		out = append(out, common.Pipe)
		out = strconv.AppendUint(out, uint64(c), 10)
		out = append(out, common.Pipe)
	}
	return string(out)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
