// Package msgtable reads message declarations from YAML files and applies
// them to a registry.
//
// A table looks like:
//
//	mod: my_mod
//	messages:
//	  - text_id: 0x0C38
//	    header:
//	      text_box_y_pos: 48
//	    content: "Sorry, we only do swords.|224|"
//	  - handle: greeting
//	    content: "Hello %s!"
//	    args: [stranger]
//	  - text_id: 0x0C39
//	    empty: true
//	    callback: shop_reply
//
// Header fields left out keep their msgbuf.DefaultHeader values and
// pipe_escape defaults to true. Raw bytes belong in pipe escapes ("|191|"):
// YAML's own "\xNN" escapes produce UTF-8 runes, not bytes.
package msgtable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/eztr/pkg/msgbuf"
	"github.com/rawbytedev/eztr/pkg/msgfmt"
)

var (
	ErrInvalidEntry    = errors.New("invalid table entry")
	ErrUnknownCallback = errors.New("unknown callback")
)

type Table struct {
	Mod      string  `yaml:"mod"`
	Messages []Entry `yaml:"messages"`
}

// Entry declares one message. Exactly one of TextID (a vanilla message) and
// Handle (a custom message) is set; Import names a handle of another mod as
// "mod:name" and may stand in for Handle.
type Entry struct {
	TextID     *uint16       `yaml:"text_id,omitempty"`
	Handle     string        `yaml:"handle,omitempty"`
	Import     string        `yaml:"import,omitempty"`
	Local      bool          `yaml:"local,omitempty"`
	Header     msgbuf.Header `yaml:"header"`
	PipeEscape bool          `yaml:"pipe_escape"`
	Content    string        `yaml:"content"`
	Args       []any         `yaml:"args,omitempty,flow"`
	Empty      bool          `yaml:"empty,omitempty"`
	Callback   string        `yaml:"callback,omitempty"`
}

func (e *Entry) UnmarshalYAML(n *yaml.Node) error {
	type plain Entry
	p := plain{Header: msgbuf.DefaultHeader(), PipeEscape: true}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

func (e *Entry) validate() error {
	targets := 0
	for _, set := range []bool{e.TextID != nil, e.Handle != "", e.Import != ""} {
		if set {
			targets++
		}
	}
	switch {
	case targets != 1:
		return fmt.Errorf("need exactly one of text_id, handle, import: %w", ErrInvalidEntry)
	case e.Import != "" && !strings.Contains(e.Import, ":"):
		return fmt.Errorf("import %q is not mod:name: %w", e.Import, ErrInvalidEntry)
	case e.Empty && e.Callback == "":
		return fmt.Errorf("empty message without callback: %w", ErrInvalidEntry)
	case e.Empty && e.Content != "":
		return fmt.Errorf("empty message with content: %w", ErrInvalidEntry)
	}
	return nil
}

func (e *Entry) name() string {
	switch {
	case e.TextID != nil:
		return fmt.Sprintf("0x%04X", *e.TextID)
	case e.Import != "":
		return e.Import
	}
	return e.Handle
}

// Decode reads and validates a table.
func Decode(r io.Reader) (*Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	for i := range t.Messages {
		if err := t.Messages[i].validate(); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
	}
	Logger().Debug("table decoded", zap.String("mod", t.Mod), zap.Int("messages", len(t.Messages)))
	return &t, nil
}

// Load reads the table file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode writes t as YAML.
func (t *Table) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

// EntryFor renders a stored message as an entry for textID. The content is
// pipe-escaped with '%' doubled so it formats back to the same bytes.
func EntryFor(textID uint16, buf *msgbuf.Buffer) Entry {
	content := msgfmt.Escape(buf.Content()[:buf.ContentLen()])
	id := textID
	return Entry{
		TextID:     &id,
		Header:     buf.Header(),
		PipeEscape: true,
		Content:    strings.ReplaceAll(content, "%", "%%"),
	}
}
