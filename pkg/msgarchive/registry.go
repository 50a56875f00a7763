package msgarchive

import (
	"errors"

	"go.uber.org/zap"

	"github.com/rawbytedev/eztr"
)

// FromRegistry returns a copy of every message stored in r, ordered by text
// id. Release the entries when done.
func FromRegistry(r *eztr.Registry) []Entry {
	ids := r.TextIDs()
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		if buf, _, ok := r.Stored(id); ok {
			entries = append(entries, Entry{TextID: id, Buffer: buf})
		}
	}
	return entries
}

// Apply replaces the vanilla messages of r with the archived ones. It must
// run inside one of r's init functions. Custom ids have no handle to attach
// to and are skipped.
func Apply(r *eztr.Registry, entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if e.TextID > eztr.HighestID {
			Logger().Debug("custom message skipped", zap.Uint16("text_id", e.TextID))
			continue
		}
		if err := r.ReplaceBuffer(e.TextID, e.Buffer, nil); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
