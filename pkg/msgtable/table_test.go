package msgtable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/eztr"
	"github.com/rawbytedev/eztr/pkg/ccode"
	"github.com/rawbytedev/eztr/pkg/msgbuf"
)

func declared(t *testing.T, tables []*Table, cbs Callbacks) *eztr.Registry {
	t.Helper()
	r := eztr.New(eztr.Options{})
	for _, tb := range tables {
		r.OnInit(func(r *eztr.Registry) {
			require.NoError(t, tb.Declare(r, cbs))
		})
	}
	require.NoError(t, r.Init())
	return r
}

func loaded(t *testing.T, r *eztr.Registry, id uint16) *msgbuf.Buffer {
	t.Helper()
	b, ok := r.Load(id, nil)
	require.True(t, ok, "no message 0x%04X", id)
	return b
}

func text(b *msgbuf.Buffer) string { return string(b.Content()[:b.ContentLen()]) }

func TestLoadFile(t *testing.T) {
	tb, err := Load("testdata/shop.yaml")
	require.NoError(t, err)
	require.Equal(t, "sword_shop", tb.Mod)
	require.Len(t, tb.Messages, 4)

	first := tb.Messages[0]
	require.Equal(t, uint16(0x0C38), *first.TextID)
	require.Equal(t, uint8(48), first.Header.TextBoxYPos)
	require.Equal(t, msgbuf.NoValue, first.Header.NextMessageID)
	require.True(t, first.PipeEscape)

	require.Equal(t, msgbuf.DefaultHeader(), tb.Messages[1].Header)
	require.False(t, tb.Messages[1].PipeEscape)
	require.Equal(t, ccode.IconGreenRupee, tb.Messages[2].Header.DisplayIcon)
	require.Equal(t, []any{"stranger", 20}, tb.Messages[2].Args)

	_, err = Load("testdata/missing.yaml")
	require.Error(t, err)
}

func TestDeclare(t *testing.T) {
	tb, err := Load("testdata/shop.yaml")
	require.NoError(t, err)
	cbs := Callbacks{
		"dynamic": func(b *msgbuf.Buffer, id uint16, _ any) { b.Sprintf("dynamic 0x%04X", id) },
	}
	r := declared(t, []*Table{tb}, cbs)

	b := loaded(t, r, 0x0C38)
	require.Equal(t, "Sorry, but we do only swords and\x11cutlery.\xe0", text(b))
	require.Equal(t, uint8(48), b.TextBoxYPos())

	require.Equal(t, "50% off|17|", text(loaded(t, r, 0x0C39)))
	require.Equal(t, "dynamic 0x0C3A", text(loaded(t, r, 0x0C3A)))

	h, err := r.ImportHandle("sword_shop", "greeting")
	require.NoError(t, err)
	id, ok := r.HandleID(h)
	require.True(t, ok)
	g := loaded(t, r, id)
	require.Equal(t, "Hello stranger, 20 rupees!", text(g))
	require.Equal(t, uint16(20), g.FirstItemRupees())
}

func TestImportAcrossTables(t *testing.T) {
	base, err := Decode(strings.NewReader(`
mod: base
messages:
  - handle: shared
    content: "old"
  - handle: hidden
    local: true
    content: "secret"
`))
	require.NoError(t, err)
	patch, err := Decode(strings.NewReader(`
mod: patch
messages:
  - import: "base:shared"
    content: "new"
`))
	require.NoError(t, err)

	r := declared(t, []*Table{base, patch}, nil)
	h, err := r.ImportHandle("base", "shared")
	require.NoError(t, err)
	id, _ := r.HandleID(h)
	require.Equal(t, "new", text(loaded(t, r, id)))

	_, err = r.ImportHandle("base", "hidden")
	require.ErrorIs(t, err, eztr.ErrUnknownHandle)
}

func TestDeclareErrors(t *testing.T) {
	tb, err := Decode(strings.NewReader(`
mod: broken
messages:
  - text_id: 1
    callback: nope
  - import: "ghost:handle"
  - text_id: 0x354D
  - text_id: 2
`))
	require.NoError(t, err)

	r := eztr.New(eztr.Options{})
	var declErr error
	r.OnInit(func(r *eztr.Registry) { declErr = tb.Declare(r, nil) })
	require.NoError(t, r.Init())

	require.ErrorIs(t, declErr, ErrUnknownCallback)
	require.ErrorIs(t, declErr, eztr.ErrUnknownHandle)
	require.ErrorIs(t, declErr, eztr.ErrNotVanilla)
	require.Equal(t, []uint16{2}, r.TextIDs())
}

func TestInitFunc(t *testing.T) {
	tb, err := Load("testdata/shop.yaml")
	require.NoError(t, err)
	r := eztr.New(eztr.Options{})
	r.OnInit(tb.InitFunc(nil))
	require.NoError(t, r.Init())
	// the dynamic entry fails for lack of its callback, the rest is declared
	require.Len(t, r.TextIDs(), 3)
}

func TestDecodeInvalid(t *testing.T) {
	cases := map[string]string{
		"no target":     "messages:\n  - content: x\n",
		"two targets":   "messages:\n  - text_id: 1\n    handle: h\n",
		"bad import":    "messages:\n  - import: nomod\n",
		"no callback":   "messages:\n  - text_id: 1\n    empty: true\n",
		"empty content": "messages:\n  - text_id: 1\n    empty: true\n    callback: c\n    content: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, ErrInvalidEntry)
		})
	}

	_, err := Decode(strings.NewReader("mod: m\ncolour: red\n"))
	require.Error(t, err)
	_, err = Decode(strings.NewReader("messages:\n  - text_id: 1\n    header:\n      display_icon: sparkles\n"))
	require.Error(t, err)
}

func TestRegistryRoundTrip(t *testing.T) {
	src, err := Decode(strings.NewReader(`
mod: trip
messages:
  - text_id: 0x0010
    header:
      text_box_type: bombers_notebook
      next_message_id: 0x0011
    content: "100%% |1|pure|124||200|"
  - text_id: 0x0011
    pipe_escape: false
    content: "a|b"
`))
	require.NoError(t, err)
	r1 := declared(t, []*Table{src}, nil)

	var out bytes.Buffer
	require.NoError(t, FromRegistry(r1, "trip").Encode(&out))
	back, err := Decode(&out)
	require.NoError(t, err)
	r2 := declared(t, []*Table{back}, nil)

	require.Equal(t, r1.TextIDs(), r2.TextIDs())
	for _, id := range r1.TextIDs() {
		a, b := loaded(t, r1, id), loaded(t, r2, id)
		require.Equal(t, a.Bytes()[:a.Len()+1], b.Bytes()[:b.Len()+1], "message 0x%04X", id)
	}
	require.Equal(t, "100% \x01pure|\xc8", text(loaded(t, r2, 0x0010)))
}
