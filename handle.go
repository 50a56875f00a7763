package eztr

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Handle names a custom message. Its text id is allocated by the registry
// the first time a message is added through it and never changes after.
type Handle struct {
	Mod      string
	Name     string
	exported bool
}

func (h *Handle) String() string {
	if h == nil {
		return "<nil>"
	}
	return h.Mod + ":" + h.Name
}

type handleKey struct{ mod, name string }

// DefineHandle returns the exported handle mod:name, creating it on first
// use. Other mods can reach it with ImportHandle.
func (r *Registry) DefineHandle(mod, name string) *Handle {
	return r.defineHandle(mod, name, true)
}

// DefineLocalHandle is DefineHandle for a handle ImportHandle cannot see.
func (r *Registry) DefineLocalHandle(mod, name string) *Handle {
	return r.defineHandle(mod, name, false)
}

func (r *Registry) defineHandle(mod, name string, exported bool) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := handleKey{mod, name}
	if h, ok := r.handles[key]; ok {
		return h
	}
	h := &Handle{Mod: mod, Name: name, exported: exported}
	r.handles[key] = h
	return h
}

// ImportHandle looks up an exported handle defined by another mod.
func (r *Registry) ImportHandle(mod, name string) (*Handle, error) {
	r.mu.RLock()
	h, ok := r.handles[handleKey{mod, name}]
	r.mu.RUnlock()
	if !ok || !h.exported {
		return nil, fmt.Errorf("import %s:%s: %w", mod, name, ErrUnknownHandle)
	}
	return h, nil
}

// HandleID returns the text id assigned to h.
func (r *Registry) HandleID(h *Handle) (uint16, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.ids[h]
	return id, ok
}

// AssignID sets h's text id. Only the first assignment succeeds; later ones
// leave the id unchanged and return ErrDuplicateAssignment. The id must lie in
// HighestID+1..LastCustomID and must not belong to another handle.
func (r *Registry) AssignID(h *Handle, id uint16) error {
	r.mu.Lock()
	err := r.assignLocked(h, id)
	r.mu.Unlock()
	r.reportAssign(h, id, err)
	return err
}

func (r *Registry) assignLocked(h *Handle, id uint16) error {
	if h == nil || r.handles[handleKey{h.Mod, h.Name}] != h {
		return fmt.Errorf("assign %s: %w", h, ErrUnknownHandle)
	}
	if old, ok := r.ids[h]; ok {
		return fmt.Errorf("assign %s: id 0x%04X kept: %w", h, old, ErrDuplicateAssignment)
	}
	if id <= HighestID || id > LastCustomID {
		return fmt.Errorf("assign %s: id 0x%04X: %w", h, id, ErrIDRange)
	}
	if o, taken := r.owners[id]; taken && o != h {
		return fmt.Errorf("assign %s: id 0x%04X owned by %s: %w", h, id, o, ErrIDTaken)
	}
	r.ids[h] = id
	r.owners[id] = h
	return nil
}

func (r *Registry) reportAssign(h *Handle, id uint16, err error) {
	switch {
	case errors.Is(err, ErrDuplicateAssignment):
		r.ReportDebug("custom message handle: the text id has already been set and will not be updated",
			zap.Stringer("handle", h), zap.Uint16("text_id", id))
		return
	case err != nil:
		r.ReportError("custom message handle: assignment failed", zap.Stringer("handle", h), zap.Error(err))
		return
	}
	r.ReportDebug("custom message handle: assignment of text id was successful",
		zap.Stringer("handle", h), zap.Uint16("text_id", id))
}

// customID returns h's id, allocating one when h has none yet.
func (r *Registry) customID(h *Handle) (uint16, error) {
	r.mu.Lock()
	if id, ok := r.ids[h]; ok {
		r.mu.Unlock()
		return id, nil
	}
	for r.nextCustom <= uint32(LastCustomID) && r.owners[uint16(r.nextCustom)] != nil {
		r.nextCustom++
	}
	if r.nextCustom > uint32(LastCustomID) {
		r.mu.Unlock()
		return 0, fmt.Errorf("allocate id for %s: %w", h, ErrAllocation)
	}
	id := uint16(r.nextCustom)
	err := r.assignLocked(h, id)
	if err == nil {
		r.nextCustom++
	}
	r.mu.Unlock()
	r.reportAssign(h, id, err)
	return id, err
}
