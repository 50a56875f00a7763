package msgfmt

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rawbytedev/eztr/internal/common"
)

// Mode selects how the literal text of a format string is treated.
type Mode uint8

const (
	// PipeMode decodes pipe escapes in the format string itself.
	PipeMode Mode = iota
	// NoPipeMode prints format text as-is; only %m arguments are decoded.
	NoPipeMode
)

const (
	// maxWidth bounds field widths and precisions.
	maxWidth = 1 << 30
	// maxPrec bounds the precision of numeric verbs handed to fmt.
	maxPrec = 1 << 16
)

// sink counts every byte produced but only hands the first max to put.
type sink struct {
	put func(idx int, c byte)
	idx int
	max int
}

func (s *sink) byte(c byte) {
	if s.idx < s.max {
		s.put(s.idx, c)
	}
	s.idx++
}

func (s *sink) string(str string) {
	for i := 0; i < len(str); i++ {
		s.byte(str[i])
	}
}

// pad emits n copies of c. Fill past max is only counted.
func (s *sink) pad(n int, c byte) {
	for ; n > 0 && s.idx < s.max; n-- {
		s.byte(c)
	}
	if n > 0 {
		s.idx += n
	}
}

type directive struct {
	flags    []byte
	width    int
	hasWidth bool
	prec     int
	hasPrec  bool
	minus    bool
	verb     byte
}

// verbFormat rebuilds the directive in fmt syntax for the given verb.
func (d *directive) verbFormat(verb byte) string {
	b := make([]byte, 0, 16)
	b = append(b, '%')
	b = append(b, d.flags...)
	if d.hasWidth {
		b = strconv.AppendInt(b, int64(d.width), 10)
	}
	if d.hasPrec {
		b = append(b, '.')
		b = strconv.AppendInt(b, int64(d.prec), 10)
	}
	return string(append(b, verb))
}

// padded writes body honouring width and the '-' flag.
func (d *directive) padded(s *sink, n int, body func()) {
	fill := 0
	if d.hasWidth && d.width > n {
		fill = d.width - n
	}
	if !d.minus {
		s.pad(fill, ' ')
	}
	body()
	if d.minus {
		s.pad(fill, ' ')
	}
}

type state struct {
	args []any
	next int
}

func (st *state) arg() (any, bool) {
	if st.next >= len(st.args) {
		return nil, false
	}
	a := st.args[st.next]
	st.next++
	return a, true
}

// intArg consumes the next argument as a '*' width or precision.
func (st *state) intArg() int64 {
	a, _ := st.arg()
	v, _ := toInt64(a)
	return v
}

// run formats into s and returns the untruncated output length.
func run(s *sink, mode Mode, format string, args []any) int {
	st := &state{args: args}
	for i := 0; i < len(format); {
		c := format[i]
		switch {
		case c == '%':
			i = directiveAt(s, st, format, i+1)
		case c == common.Pipe && mode == PipeMode:
			if v, next, ok := scanPipe(format, i); ok {
				s.byte(v)
				i = next
				continue
			}
			s.byte(c)
			i++
		default:
			s.byte(c)
			i++
		}
	}
	return s.idx
}

// directiveAt parses and expands the directive starting after a '%' at
// format[i-1]. It returns the index following the directive.
func directiveAt(s *sink, st *state, format string, i int) int {
	start := i - 1
	d := directive{}

flags:
	for ; i < len(format); i++ {
		switch format[i] {
		case '-':
			d.minus = true
			d.flags = append(d.flags, '-')
		case '+', ' ', '#', '0':
			d.flags = append(d.flags, format[i])
		default:
			break flags
		}
	}

	if i < len(format) && format[i] == '*' {
		w := max(min(st.intArg(), maxWidth), -maxWidth)
		if w < 0 {
			w = -w
			if !d.minus {
				d.minus = true
				d.flags = append(d.flags, '-')
			}
		}
		d.width, d.hasWidth = int(w), true
		i++
	} else {
		for ; i < len(format) && isDigit(format[i]); i++ {
			d.width = min(d.width*10+int(format[i]-'0'), maxWidth)
			d.hasWidth = true
		}
	}

	if i < len(format) && format[i] == '.' {
		i++
		d.hasPrec = true
		if i < len(format) && format[i] == '*' {
			p := st.intArg()
			if p < 0 {
				d.hasPrec = false
			} else {
				d.prec = int(min(p, maxWidth))
			}
			i++
		} else {
			for ; i < len(format) && isDigit(format[i]); i++ {
				d.prec = min(d.prec*10+int(format[i]-'0'), maxWidth)
			}
		}
	}

	// C length modifiers carry no meaning for typed Go arguments.
	for i < len(format) && isLengthModifier(format[i]) {
		i++
	}

	if i >= len(format) {
		s.string(format[start:])
		return i
	}
	d.verb = format[i]
	i++
	expand(s, st, &d)
	return i
}

func expand(s *sink, st *state, d *directive) {
	if d.verb == '%' {
		s.byte('%')
		return
	}
	a, ok := st.arg()
	if !ok {
		s.string("%!" + string(d.verb) + "(MISSING)")
		return
	}

	switch d.verb {
	case 'm':
		switch v := a.(type) {
		case string:
			unescapeInto(v, s.byte)
		case []byte:
			unescapeInto(string(v), s.byte)
		default:
			unescapeInto(fmt.Sprint(v), s.byte)
		}
	case 'c':
		v, _ := toInt64(a)
		d.padded(s, 1, func() { s.byte(byte(v)) })
	case 'w':
		v, _ := toInt64(a)
		var w [2]byte
		common.Order.PutUint16(w[:], uint16(v))
		s.byte(w[0])
		s.byte(w[1])
	case 's':
		str := toString(a)
		if d.hasPrec && d.prec < len(str) {
			str = str[:d.prec]
		}
		d.padded(s, len(str), func() { s.string(str) })
	case 'i':
		d.number(s, 'd', a)
	case 'u':
		d.number(s, 'd', toUnsigned(a))
	case 'x', 'X', 'o':
		d.number(s, d.verb, toUnsigned(a))
	default:
		d.number(s, d.verb, a)
	}
}

// number formats a through fmt. Widths past the content size are padded
// here rather than materialized by fmt.
func (d *directive) number(s *sink, verb byte, a any) {
	if d.hasPrec && d.prec > maxPrec {
		d.prec = maxPrec
	}
	if !d.hasWidth || d.width <= common.ContentSize {
		s.string(fmt.Sprintf(d.verbFormat(verb), a))
		return
	}
	bare := *d
	bare.hasWidth = false
	body := fmt.Sprintf(bare.verbFormat(verb), a)
	fill := d.width - len(body)
	switch {
	case fill <= 0:
		s.string(body)
	case d.minus:
		s.string(body)
		s.pad(fill, ' ')
	case d.zeroFill(verb):
		p := signLen(body, bytes.IndexByte(d.flags, '#') >= 0)
		s.string(body[:p])
		s.pad(fill, '0')
		s.string(body[p:])
	default:
		s.pad(fill, ' ')
		s.string(body)
	}
}

// zeroFill reports whether fmt would pad with zeros. Integer verbs ignore
// the '0' flag once a precision is given.
func (d *directive) zeroFill(verb byte) bool {
	if bytes.IndexByte(d.flags, '0') < 0 {
		return false
	}
	switch verb {
	case 'd', 'x', 'X', 'o', 'b', 'c':
		return !d.hasPrec
	}
	return true
}

// signLen is the length of the sign and radix prefix zeros go after.
func signLen(body string, alt bool) int {
	p := 0
	if p < len(body) && (body[p] == '+' || body[p] == '-' || body[p] == ' ') {
		p++
	}
	if alt && len(body) >= p+2 && body[p] == '0' && (body[p+1] == 'x' || body[p+1] == 'X') {
		p += 2
	}
	return p
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'j', 'z', 't', 'L':
		return true
	}
	return false
}

func toString(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// toInt64 converts integer-like arguments.
func toInt64(a any) (int64, bool) {
	switch v := a.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uintptr:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		if len(v) > 0 {
			return int64(v[0]), true
		}
	}
	return 0, false
}

// toUnsigned reinterprets signed integers the way C's %u and %x do.
func toUnsigned(a any) any {
	switch v := a.(type) {
	case int:
		return uint(v)
	case int8:
		return uint8(v)
	case int16:
		return uint16(v)
	case int32:
		return uint32(v)
	case int64:
		return uint64(v)
	}
	return a
}
