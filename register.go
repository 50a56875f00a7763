package eztr

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rawbytedev/eztr/pkg/msgbuf"
	"github.com/rawbytedev/eztr/pkg/msgfmt"
)

// ReplaceBuffer replaces the vanilla message textID with a copy of buf.
func (r *Registry) ReplaceBuffer(textID uint16, buf *msgbuf.Buffer, cb Callback) error {
	if err := r.vanilla("ReplaceBuffer", textID); err != nil {
		return err
	}
	if buf == nil {
		return r.reject("ReplaceBuffer", textID, ErrNilBuffer)
	}
	r.store(textID, buf.Clone(), cb)
	return nil
}

// ReplaceText replaces the vanilla message textID. content is a format
// string for args; pipeEscape selects the pipe-decoding formatter over the
// NoPipe one.
func (r *Registry) ReplaceText(textID uint16, h msgbuf.Header, pipeEscape bool, content string, cb Callback, args ...any) error {
	if err := r.vanilla("ReplaceText", textID); err != nil {
		return err
	}
	r.store(textID, buildText(h, pipeEscape, content, args), cb)
	return nil
}

// ReplaceTextEmpty replaces the vanilla message textID with an empty one,
// leaving cb to build it at display time.
func (r *Registry) ReplaceTextEmpty(textID uint16, cb Callback) error {
	if err := r.vanilla("ReplaceTextEmpty", textID); err != nil {
		return err
	}
	if cb == nil {
		return r.reject("ReplaceTextEmpty", textID, ErrNoCallback)
	}
	r.store(textID, msgbuf.Create(), cb)
	return nil
}

// AddCustomBuffer stores a copy of buf as the custom message of h,
// allocating h's text id on first use.
func (r *Registry) AddCustomBuffer(h *Handle, buf *msgbuf.Buffer, cb Callback) error {
	if buf == nil {
		return r.reject("AddCustomBuffer", 0, ErrNilBuffer)
	}
	id, err := r.custom("AddCustomBuffer", h)
	if err != nil {
		return err
	}
	r.store(id, buf.Clone(), cb)
	return nil
}

// AddCustomText is ReplaceText for the custom message of h.
func (r *Registry) AddCustomText(h *Handle, hdr msgbuf.Header, pipeEscape bool, content string, cb Callback, args ...any) error {
	id, err := r.custom("AddCustomText", h)
	if err != nil {
		return err
	}
	r.store(id, buildText(hdr, pipeEscape, content, args), cb)
	return nil
}

// AddCustomTextEmpty is ReplaceTextEmpty for the custom message of h.
func (r *Registry) AddCustomTextEmpty(h *Handle, cb Callback) error {
	if cb == nil {
		return r.reject("AddCustomTextEmpty", 0, ErrNoCallback)
	}
	id, err := r.custom("AddCustomTextEmpty", h)
	if err != nil {
		return err
	}
	r.store(id, msgbuf.Create(), cb)
	return nil
}

// ReplaceCustomBuffer calls AddCustomBuffer.
//
// Deprecated: use AddCustomBuffer.
func (r *Registry) ReplaceCustomBuffer(h *Handle, buf *msgbuf.Buffer, cb Callback) error {
	return r.AddCustomBuffer(h, buf, cb)
}

// ReplaceCustomText calls AddCustomText.
//
// Deprecated: use AddCustomText.
func (r *Registry) ReplaceCustomText(h *Handle, hdr msgbuf.Header, pipeEscape bool, content string, cb Callback, args ...any) error {
	return r.AddCustomText(h, hdr, pipeEscape, content, cb, args...)
}

// ReplaceCustomTextEmpty calls AddCustomTextEmpty.
//
// Deprecated: use AddCustomTextEmpty.
func (r *Registry) ReplaceCustomTextEmpty(h *Handle, cb Callback) error {
	return r.AddCustomTextEmpty(h, cb)
}

func buildText(h msgbuf.Header, pipeEscape bool, content string, args []any) *msgbuf.Buffer {
	b := msgbuf.Create()
	b.WriteHeader(h)
	if pipeEscape {
		msgfmt.Vsnprintf(b.Content(), msgbuf.ContentSize, content, args)
	} else {
		msgfmt.NoPipeVsnprintf(b.Content(), msgbuf.ContentSize, content, args)
	}
	return b
}

func (r *Registry) inInit() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initializing
}

func (r *Registry) reject(op string, textID uint16, err error) error {
	r.ReportError(op+" rejected", zap.Uint16("text_id", textID), zap.Error(err))
	return fmt.Errorf("%s 0x%04X: %w", op, textID, err)
}

func (r *Registry) vanilla(op string, textID uint16) error {
	if !r.inInit() {
		return r.reject(op, textID, ErrOutsideInit)
	}
	if textID > HighestID {
		return r.reject(op, textID, ErrNotVanilla)
	}
	return nil
}

func (r *Registry) custom(op string, h *Handle) (uint16, error) {
	if !r.inInit() {
		return 0, r.reject(op, 0, ErrOutsideInit)
	}
	id, err := r.customID(h)
	if err != nil {
		r.ReportError(op+" rejected", zap.Stringer("handle", h), zap.Error(err))
		return 0, fmt.Errorf("%s %s: %w", op, h, err)
	}
	return id, nil
}

// store takes ownership of buf.
func (r *Registry) store(textID uint16, buf *msgbuf.Buffer, cb Callback) {
	r.mu.Lock()
	old, replaced := r.messages[textID]
	r.messages[textID] = &message{buf: buf, cb: cb}
	r.mu.Unlock()

	if replaced {
		msgbuf.Destroy(old.buf)
		r.ReportWarning("message declared more than once, the later declaration wins",
			zap.Uint16("text_id", textID))
	}
	r.ReportVerbose("message stored",
		zap.Uint16("text_id", textID),
		zap.Int("len", buf.Len()),
		zap.Bool("callback", cb != nil))
}
