// Package msgfmt is a printf for message content.
//
// Conventional directives (%d, %s, %x, %f, ...) behave as in C printf; the
// numeric ones are rendered by package fmt. Three directives are specific to
// message content:
//
//	%c  one raw byte from an integer argument
//	%w  two raw bytes, big-endian, from an integer argument
//	%m  a string argument decoded with pipe escapes ("|191|" -> 0xBF)
//
// %c and %w exist for control codes that take arguments, see the *ArgC and
// *ArgW constants of package ccode.
//
// The plain functions (Printf, Sprintf, ...) also decode pipe escapes in the
// format string. The NoPipe* functions print '|' in the format string
// literally and only decode %m arguments.
//
// Output never exceeds its bound: the count argument for the n-variants,
// len(buf) capped at the content size for Sprintf, and the content size for
// the functions without a buffer. Excess output is dropped silently; every
// function returns the length the output would have had without a bound.
// The buffer variants terminate what they wrote with an End byte when count
// is at least 1, overwriting the last byte if the output was truncated.
package msgfmt

import (
	"io"
	"os"
	"sync"

	"github.com/rawbytedev/eztr/internal/common"
)

var (
	output   io.Writer = os.Stdout
	outputMu sync.Mutex
)

// SetOutput sets the destination of Printf and friends. It defaults to
// os.Stdout.
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}

func vsnprintf(mode Mode, buf []byte, count int, format string, args []any) int {
	if count > len(buf) {
		count = len(buf)
	}
	if count < 0 {
		count = 0
	}
	s := &sink{max: count, put: func(i int, c byte) { buf[i] = c }}
	n := run(s, mode, format, args)
	if count > 0 {
		buf[min(n, count-1)] = common.End
	}
	return n
}

func vprintf(mode Mode, line bool, format string, args []any) int {
	out := make([]byte, 0, 64)
	s := &sink{max: common.ContentSize, put: func(_ int, c byte) { out = append(out, c) }}
	n := run(s, mode, format, args)
	if line {
		out = append(out, '\n')
		n++
	}
	outputMu.Lock()
	defer outputMu.Unlock()
	_, _ = output.Write(out)
	return n
}

func fctprintf(mode Mode, out func(c byte), format string, args []any) int {
	s := &sink{max: common.ContentSize, put: func(_ int, c byte) { out(c) }}
	return run(s, mode, format, args)
}

// Printf writes formatted content to the output set with SetOutput.
func Printf(format string, args ...any) int {
	return vprintf(PipeMode, false, format, args)
}

// PrintfLine is Printf followed by a newline.
func PrintfLine(format string, args ...any) int {
	return vprintf(PipeMode, true, format, args)
}

// Sprintf formats into buf, writing at most min(len(buf), ContentSize) bytes.
func Sprintf(buf []byte, format string, args ...any) int {
	return vsnprintf(PipeMode, buf, common.Bound(len(buf)), format, args)
}

// Snprintf formats into buf, writing at most count bytes.
func Snprintf(buf []byte, count int, format string, args ...any) int {
	return vsnprintf(PipeMode, buf, count, format, args)
}

// Vsnprintf is Snprintf with an argument slice.
func Vsnprintf(buf []byte, count int, format string, args []any) int {
	return vsnprintf(PipeMode, buf, count, format, args)
}

// Vprintf is Printf with an argument slice.
func Vprintf(format string, args []any) int {
	return vprintf(PipeMode, false, format, args)
}

// Fctprintf hands each output byte to out.
func Fctprintf(out func(c byte), format string, args ...any) int {
	return fctprintf(PipeMode, out, format, args)
}

// NoPipePrintf is Printf without pipe decoding of the format string.
func NoPipePrintf(format string, args ...any) int {
	return vprintf(NoPipeMode, false, format, args)
}

// NoPipePrintfLine is PrintfLine without pipe decoding of the format string.
func NoPipePrintfLine(format string, args ...any) int {
	return vprintf(NoPipeMode, true, format, args)
}

// NoPipeSprintf is Sprintf without pipe decoding of the format string.
func NoPipeSprintf(buf []byte, format string, args ...any) int {
	return vsnprintf(NoPipeMode, buf, common.Bound(len(buf)), format, args)
}

// NoPipeSnprintf is Snprintf without pipe decoding of the format string.
func NoPipeSnprintf(buf []byte, count int, format string, args ...any) int {
	return vsnprintf(NoPipeMode, buf, count, format, args)
}

// NoPipeVsnprintf is Vsnprintf without pipe decoding of the format string.
func NoPipeVsnprintf(buf []byte, count int, format string, args []any) int {
	return vsnprintf(NoPipeMode, buf, count, format, args)
}

// NoPipeVprintf is Vprintf without pipe decoding of the format string.
func NoPipeVprintf(format string, args []any) int {
	return vprintf(NoPipeMode, false, format, args)
}

// NoPipeFctprintf is Fctprintf without pipe decoding of the format string.
func NoPipeFctprintf(out func(c byte), format string, args ...any) int {
	return fctprintf(NoPipeMode, out, format, args)
}

// Format formats with the given mode into a new slice of at most
// ContentSize bytes. No terminator is appended.
func Format(mode Mode, format string, args ...any) []byte {
	out := make([]byte, 0, len(format))
	s := &sink{max: common.ContentSize, put: func(_ int, c byte) { out = append(out, c) }}
	run(s, mode, format, args)
	return out
}
