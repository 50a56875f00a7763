package msgtable

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rawbytedev/eztr"
	"github.com/rawbytedev/eztr/pkg/msgbuf"
)

// Callbacks maps the callback names used in tables to functions.
type Callbacks map[string]eztr.Callback

// Declare registers every message of t with r. It must run inside one of
// r's init functions. Entries are declared in order; the failures of all
// entries are joined in the returned error.
func (t *Table) Declare(r *eztr.Registry, cbs Callbacks) error {
	var errs []error
	for i := range t.Messages {
		e := &t.Messages[i]
		if err := t.declare(r, e, cbs); err != nil {
			errs = append(errs, fmt.Errorf("%s message %s: %w", t.Mod, e.name(), err))
		}
	}
	return errors.Join(errs...)
}

// InitFunc returns an init function declaring t. Failures are logged.
func (t *Table) InitFunc(cbs Callbacks) eztr.InitFunc {
	return func(r *eztr.Registry) {
		if err := t.Declare(r, cbs); err != nil {
			Logger().Error("table declaration failed", zap.String("mod", t.Mod), zap.Error(err))
		}
	}
}

func (t *Table) declare(r *eztr.Registry, e *Entry, cbs Callbacks) error {
	var cb eztr.Callback
	if e.Callback != "" {
		var ok bool
		if cb, ok = cbs[e.Callback]; !ok {
			return fmt.Errorf("%q: %w", e.Callback, ErrUnknownCallback)
		}
	}

	if e.TextID != nil {
		if e.Empty {
			return r.ReplaceTextEmpty(*e.TextID, cb)
		}
		return r.ReplaceText(*e.TextID, e.Header, e.PipeEscape, e.Content, cb, e.Args...)
	}

	h, err := t.handle(r, e)
	if err != nil {
		return err
	}
	if e.Empty {
		return r.AddCustomTextEmpty(h, cb)
	}
	return r.AddCustomText(h, e.Header, e.PipeEscape, e.Content, cb, e.Args...)
}

func (t *Table) handle(r *eztr.Registry, e *Entry) (*eztr.Handle, error) {
	if e.Import != "" {
		mod, name, _ := strings.Cut(e.Import, ":")
		return r.ImportHandle(mod, name)
	}
	if e.Local {
		return r.DefineLocalHandle(t.Mod, e.Handle), nil
	}
	return r.DefineHandle(t.Mod, e.Handle), nil
}

// FromRegistry builds a table of every message stored in r. Callbacks are
// not representable and are dropped.
func FromRegistry(r *eztr.Registry, mod string) *Table {
	t := &Table{Mod: mod}
	for _, id := range r.TextIDs() {
		buf, _, ok := r.Stored(id)
		if !ok {
			continue
		}
		t.Messages = append(t.Messages, EntryFor(id, buf))
		msgbuf.Destroy(buf)
	}
	return t
}
