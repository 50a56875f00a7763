package eztr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rawbytedev/eztr/pkg/ccode"
	"github.com/rawbytedev/eztr/pkg/msgbuf"
)

func newTestRegistry(t *testing.T, opts Options) (*Registry, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(VerboseLevel)
	opts.Logger = zap.New(core)
	if opts.Output == nil {
		opts.Output = &bytes.Buffer{}
	}
	return New(opts), logs
}

// initWith runs fn as the registry's only init function.
func initWith(t *testing.T, r *Registry, fn InitFunc) {
	t.Helper()
	r.OnInit(fn)
	require.NoError(t, r.Init())
}

func content(b *msgbuf.Buffer) string {
	return string(b.Content()[:b.ContentLen()])
}

func TestRegistrationOutsideInit(t *testing.T) {
	r, logs := newTestRegistry(t, Options{})
	err := r.ReplaceText(0x0C38, msgbuf.DefaultHeader(), true, "x", nil)
	require.ErrorIs(t, err, ErrOutsideInit)
	err = r.AddCustomTextEmpty(r.DefineHandle("mod", "h"), func(*msgbuf.Buffer, uint16, any) {})
	require.ErrorIs(t, err, ErrOutsideInit)
	require.Equal(t, 2, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	require.Empty(t, r.TextIDs())

	initWith(t, r, func(*Registry) {})
	require.ErrorIs(t, r.ReplaceTextEmpty(1, func(*msgbuf.Buffer, uint16, any) {}), ErrOutsideInit)
	require.ErrorIs(t, r.Init(), ErrInitialized)
}

func TestReplaceTextAndLoad(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	hdr := msgbuf.DefaultHeader()
	hdr.TextBoxYPos = 48
	initWith(t, r, func(r *Registry) {
		require.NoError(t, r.ReplaceText(0x0C38, hdr, true,
			"Sorry|17|%d swords."+ccode.Event2+ccode.End, nil, 2))
		require.NoError(t, r.ReplaceText(0x0C39, hdr, false, "a|17|b", nil))
	})

	b, ok := r.Load(0x0C38, nil)
	require.True(t, ok)
	defer msgbuf.Destroy(b)
	require.Equal(t, hdr, b.Header())
	require.Equal(t, "Sorry\x112 swords.\xe0", content(b))

	b.Content()[0] = 'X'
	again, ok := r.Load(0x0C38, nil)
	require.True(t, ok)
	defer msgbuf.Destroy(again)
	require.Equal(t, byte('S'), again.Content()[0])

	raw, ok := r.Load(0x0C39, nil)
	require.True(t, ok)
	require.Equal(t, "a|17|b", content(raw))

	_, ok = r.Load(0x0001, nil)
	require.False(t, ok)
	require.Equal(t, []uint16{0x0C38, 0x0C39}, r.TextIDs())
}

func TestCallbackRewritesCopy(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	var gotID uint16
	cb := func(b *msgbuf.Buffer, textID uint16, play any) {
		gotID = textID
		b.Sprintf("Hello %s", play.(string))
	}
	initWith(t, r, func(r *Registry) {
		require.NoError(t, r.ReplaceTextEmpty(0x0100, cb))
	})

	b, ok := r.Load(0x0100, "Link")
	require.True(t, ok)
	require.Equal(t, uint16(0x0100), gotID)
	require.Equal(t, "Hello Link", content(b))

	stored, hasCB, ok := r.Stored(0x0100)
	require.True(t, ok)
	require.True(t, hasCB)
	require.Equal(t, 0, stored.ContentLen())
	require.Equal(t, msgbuf.DefaultHeader(), stored.Header())
}

func TestRegistrationErrors(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	initWith(t, r, func(r *Registry) {
		assert.ErrorIs(t, r.ReplaceText(HighestID+1, msgbuf.DefaultHeader(), true, "x", nil), ErrNotVanilla)
		assert.ErrorIs(t, r.ReplaceTextEmpty(1, nil), ErrNoCallback)
		assert.ErrorIs(t, r.AddCustomTextEmpty(r.DefineHandle("m", "h"), nil), ErrNoCallback)
		assert.ErrorIs(t, r.ReplaceBuffer(1, nil, nil), ErrNilBuffer)
		assert.ErrorIs(t, r.AddCustomBuffer(r.DefineHandle("m", "h"), nil, nil), ErrNilBuffer)
		assert.ErrorIs(t, r.AddCustomText(&Handle{Mod: "m", Name: "stray"}, msgbuf.DefaultHeader(), true, "x", nil), ErrUnknownHandle)
		assert.ErrorIs(t, r.AddCustomText(nil, msgbuf.DefaultHeader(), true, "x", nil), ErrUnknownHandle)
	})
	require.Empty(t, r.TextIDs())
}

func TestLaterDeclarationWins(t *testing.T) {
	r, logs := newTestRegistry(t, Options{})
	r.OnInit(func(r *Registry) {
		require.NoError(t, r.ReplaceText(5, msgbuf.DefaultHeader(), true, "first", nil))
	})
	r.OnInit(func(r *Registry) {
		require.NoError(t, r.ReplaceText(5, msgbuf.DefaultHeader(), true, "second", nil))
	})
	require.NoError(t, r.Init())

	b, _, ok := r.Stored(5)
	require.True(t, ok)
	require.Equal(t, "second", content(b))
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestInitRunsNestedInits(t *testing.T) {
	r, logs := newTestRegistry(t, Options{})
	var order []string
	r.OnInit(func(r *Registry) {
		order = append(order, "outer")
		r.OnInit(func(r *Registry) {
			order = append(order, "nested")
			require.NoError(t, r.ReplaceText(7, msgbuf.DefaultHeader(), true, "late", nil))
		})
	})
	r.OnInit(func(*Registry) { order = append(order, "second") })
	require.NoError(t, r.Init())

	require.Equal(t, []string{"outer", "second", "nested"}, order)
	require.Equal(t, []uint16{7}, r.TextIDs())

	r.OnInit(func(*Registry) { order = append(order, "after") })
	require.Len(t, order, 3)
	require.Equal(t, 1, logs.FilterMessageSnippet("registered after init").Len())
}

func TestReplaceBufferStoresCopy(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	src := msgbuf.Create()
	src.Sprintf("original")
	initWith(t, r, func(r *Registry) {
		require.NoError(t, r.ReplaceBuffer(7, src, nil))
	})
	src.Sprintf("changed")

	b, ok := r.Load(7, nil)
	require.True(t, ok)
	require.Equal(t, "original", content(b))
}

func TestCustomMessages(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	first := r.DefineHandle("mod_a", "greeting")
	second := r.DefineLocalHandle("mod_a", "farewell")
	require.Same(t, first, r.DefineHandle("mod_a", "greeting"))

	initWith(t, r, func(r *Registry) {
		require.NoError(t, r.AddCustomText(first, msgbuf.DefaultHeader(), true, "hi", nil))
		require.NoError(t, r.AddCustomTextEmpty(second, func(b *msgbuf.Buffer, _ uint16, _ any) { b.Sprintf("bye") }))
		require.NoError(t, r.ReplaceCustomText(first, msgbuf.DefaultHeader(), true, "hello", nil))

		buf := msgbuf.CreateFromString("\x00\x00\xfe\xff\xff\xff\xff\xff\xff\x00\x00yo\xbf")
		other := r.DefineHandle("mod_b", "shout")
		require.NoError(t, r.ReplaceCustomBuffer(other, buf, nil))
		require.NoError(t, r.ReplaceCustomTextEmpty(other, func(*msgbuf.Buffer, uint16, any) {}))
	})

	id, ok := r.HandleID(first)
	require.True(t, ok)
	require.Equal(t, HighestID+1, id)
	id2, ok := r.HandleID(second)
	require.True(t, ok)
	require.Equal(t, HighestID+2, id2)

	b, ok := r.Load(id, nil)
	require.True(t, ok)
	require.Equal(t, "hello", content(b))
	b, ok = r.Load(id2, nil)
	require.True(t, ok)
	require.Equal(t, "bye", content(b))
	require.Len(t, r.TextIDs(), 3)
}

func TestHandleSetOnce(t *testing.T) {
	r, logs := newTestRegistry(t, Options{})
	h := r.DefineHandle("mod", "once")

	require.NoError(t, r.AssignID(h, 0x4000))
	err := r.AssignID(h, 0x5000)
	require.ErrorIs(t, err, ErrDuplicateAssignment)

	id, ok := r.HandleID(h)
	require.True(t, ok)
	require.Equal(t, uint16(0x4000), id)
	require.Equal(t, 1, logs.FilterMessageSnippet("already been set").Len())
	require.Equal(t, 1, logs.FilterMessageSnippet("was successful").Len())

	_, ok = r.HandleID(r.DefineHandle("mod", "unset"))
	require.False(t, ok)
	require.ErrorIs(t, r.AssignID(&Handle{Mod: "mod", Name: "once"}, 1), ErrUnknownHandle)
}

func TestAllocationSkipsAssignedIDs(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	manual := r.DefineHandle("mod", "manual")
	require.NoError(t, r.AssignID(manual, HighestID+1))

	auto := r.DefineHandle("mod", "auto")
	initWith(t, r, func(r *Registry) {
		require.NoError(t, r.AddCustomText(auto, msgbuf.DefaultHeader(), true, "x", nil))
	})
	id, _ := r.HandleID(auto)
	require.Equal(t, HighestID+2, id)
}

func TestAssignRejectsForeignIDs(t *testing.T) {
	r, logs := newTestRegistry(t, Options{})
	first := r.DefineHandle("mod_a", "first")
	second := r.DefineHandle("mod_b", "second")
	require.NoError(t, r.AssignID(first, 0x4000))

	require.ErrorIs(t, r.AssignID(second, 0x4000), ErrIDTaken)
	for _, id := range []uint16{0, 0x0C38, HighestID, 0xFFFF} {
		require.ErrorIs(t, r.AssignID(second, id), ErrIDRange, "id 0x%04X", id)
	}
	_, ok := r.HandleID(second)
	require.False(t, ok)
	require.Equal(t, 5, logs.FilterMessageSnippet("assignment failed").Len())

	require.NoError(t, r.AssignID(second, LastCustomID))
	id, _ := r.HandleID(first)
	require.Equal(t, uint16(0x4000), id)
}

func TestAllocationExhausted(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	r.nextCustom = uint32(LastCustomID)
	last := r.DefineHandle("mod", "last")
	over := r.DefineHandle("mod", "over")
	initWith(t, r, func(r *Registry) {
		require.NoError(t, r.AddCustomText(last, msgbuf.DefaultHeader(), true, "x", nil))
		err := r.AddCustomText(over, msgbuf.DefaultHeader(), true, "y", nil)
		require.ErrorIs(t, err, ErrAllocation)
	})
	id, _ := r.HandleID(last)
	require.Equal(t, LastCustomID, id)
	_, ok := r.HandleID(over)
	require.False(t, ok)
}

func TestImportHandle(t *testing.T) {
	r, _ := newTestRegistry(t, Options{})
	exported := r.DefineHandle("mod_a", "shared")
	r.DefineLocalHandle("mod_a", "private")

	h, err := r.ImportHandle("mod_a", "shared")
	require.NoError(t, err)
	require.Same(t, exported, h)

	_, err = r.ImportHandle("mod_a", "private")
	require.ErrorIs(t, err, ErrUnknownHandle)
	_, err = r.ImportHandle("mod_b", "shared")
	require.True(t, errors.Is(err, ErrUnknownHandle))
	require.Equal(t, "mod_a:shared", h.String())
}

func TestDumpModes(t *testing.T) {
	tests := []struct {
		mode     DumpMode
		wantLen  func(b *msgbuf.Buffer) int
		wantText string
	}{
		{DumpOff, nil, ""},
		{DumpOn, func(b *msgbuf.Buffer) int { return b.Len() }, "[Game] 0x0010 (15 bytes)\n"},
		{DumpFull, func(*msgbuf.Buffer) int { return msgbuf.Size }, "[Game] 0x0010 (1280 bytes)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var out bytes.Buffer
			r, _ := newTestRegistry(t, Options{DumpMode: tt.mode, Output: &out})
			var summary, full []int
			r.OnDumpBuffer(func(cat string, id uint16, n int, b *msgbuf.Buffer) {
				assert.Equal(t, DefaultCategory, cat)
				assert.Equal(t, uint16(0x10), id)
				summary = append(summary, n)
			})
			r.OnDumpBufferFull(func(_ string, _ uint16, n int, _ *msgbuf.Buffer) {
				full = append(full, n)
			})
			initWith(t, r, func(r *Registry) {
				require.NoError(t, r.ReplaceText(0x10, msgbuf.DefaultHeader(), true, "Test", nil))
			})

			b, ok := r.Load(0x10, nil)
			require.True(t, ok)
			switch tt.mode {
			case DumpOff:
				require.Empty(t, out.String())
				require.Empty(t, summary)
				require.Empty(t, full)
			case DumpOn:
				require.Equal(t, []int{tt.wantLen(b)}, summary)
				require.Empty(t, full)
				require.True(t, bytes.HasPrefix(out.Bytes(), []byte(tt.wantText)))
				require.Contains(t, out.String(), `"Test"`)
			case DumpFull:
				require.Equal(t, []int{tt.wantLen(b)}, full)
				require.Empty(t, summary)
				require.True(t, bytes.HasPrefix(out.Bytes(), []byte(tt.wantText)))
				require.Contains(t, out.String(), `"Test|191||0|`)
			}
		})
	}
}

func TestDumpVanillaMessage(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRegistry(t, Options{DumpMode: DumpOn, Output: &out, Category: "Vanilla"})
	var cats []string
	r.OnDumpBuffer(func(cat string, _ uint16, _ int, _ *msgbuf.Buffer) { cats = append(cats, cat) })

	b := msgbuf.Create()
	r.Dump("Game", 0x20, b)
	r.Dump("Game", 0x21, nil)
	require.Equal(t, []string{"Game"}, cats)
	require.Contains(t, out.String(), "[Game] 0x0020 (11 bytes)")
}

func TestReportLevels(t *testing.T) {
	r, logs := newTestRegistry(t, Options{})
	r.ReportFatal("f")
	r.ReportError("e")
	r.ReportWarning("w")
	r.ReportInfo("i")
	r.ReportDebug("d")
	r.ReportVerbose("v")

	entries := logs.All()
	require.Len(t, entries, 6)
	want := []zapcore.Level{
		zapcore.ErrorLevel, zapcore.ErrorLevel, zapcore.WarnLevel,
		zapcore.InfoLevel, zapcore.DebugLevel, VerboseLevel,
	}
	for i, e := range entries {
		assert.Equal(t, want[i], e.Level, e.Message)
	}
	require.Equal(t, "fatal", entries[0].ContextMap()["severity"])
	require.NotContains(t, entries[1].ContextMap(), "severity")
	require.Equal(t, "warning", LevelWarning.String())
	require.Equal(t, "unknown", Level(42).String())
}

func TestPackageLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	r := New(Options{})
	require.NoError(t, r.Init())
	require.Equal(t, 1, logs.FilterMessage("init complete").Len())
}
