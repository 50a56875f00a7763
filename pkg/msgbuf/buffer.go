// Package msgbuf implements the 1280-byte message buffer: an 11-byte header
// followed by End-terminated content.
//
// Header fields are always accessed by byte offset in host (big-endian)
// order; Buffer never overlays a Go struct on the raw bytes.
package msgbuf

import (
	"sync"

	"github.com/rawbytedev/eztr/internal/common"
	"github.com/rawbytedev/eztr/pkg/msgfmt"
	"github.com/rawbytedev/eztr/pkg/scontent"
)

const (
	Size        = common.BufferSize
	HeaderSize  = common.HeaderSize
	ContentSize = common.ContentSize
	NoValue     = common.NoValue
)

// Buffer is a message buffer. The zero value is all zero bytes, which is not
// a valid message; use Create.
type Buffer struct {
	raw [Size]byte
}

var pool = sync.Pool{
	New: func() any { return new(Buffer) },
}

// Create returns a buffer with the default header and empty content. The
// caller owns it until Destroy.
func Create() *Buffer {
	b := pool.Get().(*Buffer)
	clear(b.raw[:])
	b.WriteDefaultHeader()
	scontent.SetEmpty(b.Content())
	return b
}

// CreateFromString is Create followed by Copy.
func CreateFromString(src string) *Buffer {
	b := Create()
	Copy(b, []byte(src))
	return b
}

// CreateFromStringN is Create followed by NCopy.
func CreateFromStringN(src string, n int) *Buffer {
	b := Create()
	NCopy(b, []byte(src), n)
	return b
}

// Destroy releases b. b must not be used afterwards.
func Destroy(b *Buffer) {
	if b == nil {
		return
	}
	pool.Put(b)
}

// Clone returns a new buffer holding a full copy of b.
func (b *Buffer) Clone() *Buffer {
	c := pool.Get().(*Buffer)
	c.raw = b.raw
	return c
}

// Copy copies a raw message into dst: the header verbatim, then content up
// to its End byte or the content capacity. It returns the number of bytes
// written, header and End byte included.
func Copy(dst *Buffer, src []byte) int {
	return NCopy(dst, src, ContentSize)
}

// NCopy is Copy with at most n content bytes. Like scontent.NCopy, content
// stopped by n is left unterminated.
func NCopy(dst *Buffer, src []byte, n int) int {
	h := copy(dst.raw[:HeaderSize], src)
	if h < HeaderSize {
		return h
	}
	return h + scontent.NCopy(dst.Content(), src[HeaderSize:], n)
}

// Bytes returns the whole buffer. The slice aliases b.
func (b *Buffer) Bytes() []byte { return b.raw[:] }

// Content returns the content region. The slice aliases b.
func (b *Buffer) Content() []byte { return b.raw[HeaderSize:] }

// ContentLen returns the content length without the End byte.
func (b *Buffer) ContentLen() int { return scontent.Len(b.Content()) }

// Len returns the message length: header plus content, without End.
func (b *Buffer) Len() int { return HeaderSize + b.ContentLen() }

// Sprintf formats into the content region using the pipe-escaping formatter.
func (b *Buffer) Sprintf(format string, args ...any) int {
	return msgfmt.Vsnprintf(b.Content(), ContentSize, format, args)
}

// NoPipeSprintf formats into the content region leaving '|' in format as-is.
func (b *Buffer) NoPipeSprintf(format string, args ...any) int {
	return msgfmt.NoPipeVsnprintf(b.Content(), ContentSize, format, args)
}
