package eztr

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rawbytedev/eztr/pkg/msgbuf"
)

// DumpMode selects what Dump prints for each displayed message.
type DumpMode uint8

const (
	DumpOff DumpMode = iota
	// DumpOn prints the header and content up to End and runs the
	// OnDumpBuffer hooks.
	DumpOn
	// DumpFull prints the whole content region and runs the
	// OnDumpBufferFull hooks.
	DumpFull
)

func (m DumpMode) String() string {
	switch m {
	case DumpOff:
		return "off"
	case DumpOn:
		return "on"
	case DumpFull:
		return "full"
	}
	return fmt.Sprintf("dump_mode(%d)", uint8(m))
}

// DumpHook receives dumped messages. length is the message length for
// DumpOn and the buffer size for DumpFull. buf must not be retained.
type DumpHook func(category string, textID uint16, length int, buf *msgbuf.Buffer)

// OnDumpBuffer adds a hook run for every message dumped in DumpOn mode.
func (r *Registry) OnDumpBuffer(h DumpHook) {
	r.mu.Lock()
	r.dumpHooks = append(r.dumpHooks, h)
	r.mu.Unlock()
}

// OnDumpBufferFull adds a hook run for every message dumped in DumpFull mode.
func (r *Registry) OnDumpBufferFull(h DumpHook) {
	r.mu.Lock()
	r.fullHooks = append(r.fullHooks, h)
	r.mu.Unlock()
}

// Load returns a copy of the message stored for textID after running its
// callback with play, and dumps it. The caller owns the buffer. ok is false
// when nothing is stored for textID.
func (r *Registry) Load(textID uint16, play any) (buf *msgbuf.Buffer, ok bool) {
	r.mu.RLock()
	m, found := r.messages[textID]
	if found {
		buf = m.buf.Clone()
	}
	r.mu.RUnlock()
	if !found {
		return nil, false
	}
	if m.cb != nil {
		m.cb(buf, textID, play)
	}
	r.ReportVerbose("message loaded", zap.Uint16("text_id", textID), zap.Int("len", buf.Len()))
	r.Dump(r.opts.Category, textID, buf)
	return buf, true
}

// Dump prints buf according to the registry's DumpMode and runs the matching
// hooks. Hosts call it for messages the registry does not store.
func (r *Registry) Dump(category string, textID uint16, buf *msgbuf.Buffer) {
	if buf == nil || r.opts.DumpMode == DumpOff {
		return
	}
	r.mu.RLock()
	hooks, length := r.dumpHooks, buf.Len()
	if r.opts.DumpMode == DumpFull {
		hooks, length = r.fullHooks, msgbuf.Size
	}
	r.mu.RUnlock()

	out := r.opts.Output
	var err error
	if _, err = fmt.Fprintf(out, "[%s] 0x%04X (%d bytes)\n", category, textID, length); err == nil {
		if r.opts.DumpMode == DumpFull {
			err = buf.PrintFull(out)
		} else {
			err = buf.Print(out)
		}
	}
	if err != nil {
		r.ReportWarning("dump output failed", zap.Uint16("text_id", textID), zap.Error(err))
	}
	for _, h := range hooks {
		h(category, textID, length, buf)
	}
}
