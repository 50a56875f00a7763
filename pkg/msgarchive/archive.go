// Package msgarchive stores many message buffers in one blob.
//
// Layout, little-endian:
//
//	0   magic   "EZTR"
//	4   version uint16
//	6   flags   uint16 (bit 0: body is zstd compressed)
//	8   count   uint32
//	12  bodyLen uint32, stored size of the body
//	16  body
//	    crc32   uint32, IEEE, over bytes 4 up to the checksum
//
// The body holds count entries of text id (uint16), length (uint16) and the
// message bytes up to and including the End byte. Bytes after End are not
// kept.
package msgarchive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/rawbytedev/eztr/pkg/msgbuf"
)

const (
	Magic      = "EZTR"
	Version    = 1
	HeaderSize = 16
	FlagZstd   = 0x0001

	entryHeaderSize = 4
	crcSize         = 4
)

var (
	ErrBadMagic  = errors.New("bad archive magic")
	ErrVersion   = errors.New("unsupported archive version")
	ErrChecksum  = errors.New("archive checksum mismatch")
	ErrTruncated = errors.New("archive truncated")
	ErrCorrupt   = errors.New("corrupt archive body")
)

type Header struct {
	Version uint16
	Flags   uint16
	Count   uint32
	BodyLen uint32
}

// Entry is one archived message. Decoded entries own their buffers; see
// Release.
type Entry struct {
	TextID uint16
	Buffer *msgbuf.Buffer
}

type Options struct {
	// Compress stores the body zstd compressed.
	Compress bool
	// Level is the zstd level. Zero means zstd.SpeedDefault.
	Level zstd.EncoderLevel
}

func encodeHeader(buf []byte, h Header) []byte {
	buf = append(buf, Magic...)
	buf = binary.LittleEndian.AppendUint16(buf, h.Version)
	buf = binary.LittleEndian.AppendUint16(buf, h.Flags)
	buf = binary.LittleEndian.AppendUint32(buf, h.Count)
	return binary.LittleEndian.AppendUint32(buf, h.BodyLen)
}

// ParseHeader reads the archive header from the front of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if string(data[:4]) != Magic {
		return Header{}, fmt.Errorf("magic %q: %w", data[:4], ErrBadMagic)
	}
	h := Header{
		Version: binary.LittleEndian.Uint16(data[4:]),
		Flags:   binary.LittleEndian.Uint16(data[6:]),
		Count:   binary.LittleEndian.Uint32(data[8:]),
		BodyLen: binary.LittleEndian.Uint32(data[12:]),
	}
	if h.Version != Version {
		return h, fmt.Errorf("version %d: %w", h.Version, ErrVersion)
	}
	return h, nil
}

// Encode serializes entries.
func Encode(entries []Entry, opts Options) ([]byte, error) {
	body := make([]byte, 0, len(entries)*(entryHeaderSize+64))
	for _, e := range entries {
		if e.Buffer == nil {
			return nil, fmt.Errorf("entry 0x%04X: nil buffer", e.TextID)
		}
		n := min(e.Buffer.Len()+1, msgbuf.Size)
		body = binary.LittleEndian.AppendUint16(body, e.TextID)
		body = binary.LittleEndian.AppendUint16(body, uint16(n))
		body = append(body, e.Buffer.Bytes()[:n]...)
	}
	raw := len(body)

	h := Header{Version: Version, Count: uint32(len(entries))}
	if opts.Compress {
		level := opts.Level
		if level == 0 {
			level = zstd.SpeedDefault
		}
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		body = enc.EncodeAll(body, nil)
		enc.Close()
		h.Flags |= FlagZstd
	}
	h.BodyLen = uint32(len(body))

	out := encodeHeader(make([]byte, 0, HeaderSize+len(body)+crcSize), h)
	out = append(out, body...)
	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(out[4:]))

	Logger().Debug("archive encoded",
		zap.Int("entries", len(entries)),
		zap.Int("body", raw),
		zap.Int("stored", len(body)),
		zap.Bool("zstd", opts.Compress))
	return out, nil
}

// Decode parses an archive produced by Encode.
func Decode(data []byte) ([]Entry, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	end := HeaderSize + int(h.BodyLen)
	if len(data) < end+crcSize {
		return nil, fmt.Errorf("body of %d bytes: %w", h.BodyLen, ErrTruncated)
	}
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[4:end]) != want {
		return nil, ErrChecksum
	}

	body := data[HeaderSize:end]
	if h.Flags&FlagZstd != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		body, err = dec.DecodeAll(body, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("decompress: %w: %w", ErrCorrupt, err)
		}
	}

	entries := make([]Entry, 0, min(int(h.Count), 1024))
	for i := range h.Count {
		if len(body) < entryHeaderSize {
			Release(entries)
			return nil, fmt.Errorf("entry %d: %w", i, ErrTruncated)
		}
		id := binary.LittleEndian.Uint16(body)
		n := int(binary.LittleEndian.Uint16(body[2:]))
		body = body[entryHeaderSize:]
		if n > msgbuf.Size || n > len(body) {
			Release(entries)
			return nil, fmt.Errorf("entry %d: length %d: %w", i, n, ErrCorrupt)
		}
		b := msgbuf.Create()
		msgbuf.Copy(b, body[:n])
		entries = append(entries, Entry{TextID: id, Buffer: b})
		body = body[n:]
	}
	if len(body) != 0 {
		Release(entries)
		return nil, fmt.Errorf("%d trailing bytes: %w", len(body), ErrCorrupt)
	}
	Logger().Debug("archive decoded", zap.Int("entries", len(entries)))
	return entries, nil
}

// Write encodes entries to w.
func Write(w io.Writer, entries []Entry, opts Options) error {
	data, err := Encode(entries, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Read decodes the archive held in r.
func Read(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Release destroys the buffers of entries.
func Release(entries []Entry) {
	for _, e := range entries {
		msgbuf.Destroy(e.Buffer)
	}
}
