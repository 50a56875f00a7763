package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/eztr"
	"github.com/rawbytedev/eztr/pkg/msgarchive"
	"github.com/rawbytedev/eztr/pkg/msgbuf"
	"github.com/rawbytedev/eztr/pkg/msgfmt"
	"github.com/rawbytedev/eztr/pkg/msgtable"
)

const shopTable = "../../pkg/msgtable/testdata/shop.yaml"

func runOut(t *testing.T, cfg config) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	return out.String()
}

func TestRunPrint(t *testing.T) {
	out := runOut(t, config{tables: []string{shopTable}, ids: []uint16{0x0C38, 0x0C39}})
	require.Equal(t, 2, strings.Count(out, "text_box_type:"))
	require.Contains(t, out, "0x0C38 (")
	require.Contains(t, out, "text_box_y_pos:     48\n")
	require.NotContains(t, out, "0x0C3A")

	out = runOut(t, config{tables: []string{shopTable}, ids: []uint16{0x0C39}, mode: modeCCode})
	require.True(t, strings.HasPrefix(out, "0x0C39 ("))
	require.Contains(t, out, "reg.ReplaceText(\n\t0x0C39,\n")
	require.Contains(t, out, "\t\"50%% off|17|\\xbf\",\n")
}

func TestRunArchiveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.eztr")
	require.Empty(t, runOut(t, config{tables: []string{shopTable}, out: path, zstd: true}))

	out := runOut(t, config{archive: path, asJSON: true})
	var got []jsonEntry
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	// the custom greeting has no handle in the reading registry
	require.Len(t, got, 3)
	require.Equal(t, uint16(0x0C38), got[0].TextID)
	require.Equal(t, uint8(48), got[0].Header.TextBoxYPos)
	require.Equal(t, msgfmt.Escape([]byte("Sorry, but we do only swords and\x11cutlery.\xe0")), got[0].Content)
	require.Equal(t, uint16(0x0C3A), got[2].TextID)
	require.Empty(t, got[2].Content)
}

func TestRunYAML(t *testing.T) {
	out := runOut(t, config{tables: []string{shopTable}, asYAML: true, mod: "export"})
	tb, err := msgtable.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "export", tb.Mod)
	require.Len(t, tb.Messages, 4)
}

func TestRunDump(t *testing.T) {
	out := runOut(t, config{tables: []string{shopTable}, dump: eztr.DumpOn, category: "Shop", ids: []uint16{0x0C38}})
	require.True(t, strings.HasPrefix(out, "[Shop] 0x0C38 ("))
	require.Contains(t, out, "content:")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(config{tables: []string{"testdata/missing.yaml"}}, &out))
	require.Error(t, run(config{archive: "testdata/missing.eztr"}, &out))
}

func TestParseFlags(t *testing.T) {
	ids, err := parseIDs("0x0C38, 12")
	require.NoError(t, err)
	require.Equal(t, []uint16{0x0C38, 12}, ids)
	_, err = parseIDs("0x10000")
	require.Error(t, err)

	m, err := parseMode("full-ccode")
	require.NoError(t, err)
	require.Equal(t, modeFullCCode, m)
	require.Equal(t, modePrint, modeFullCCode.next())
	_, err = parseMode("raw")
	require.Error(t, err)

	d, err := parseDumpMode("full")
	require.NoError(t, err)
	require.Equal(t, eztr.DumpFull, d)
	_, err = parseDumpMode("loud")
	require.Error(t, err)
}

func TestBrowser(t *testing.T) {
	var entries []msgarchive.Entry
	for i, s := range []string{"one", "two", "three"} {
		b := msgbuf.Create()
		b.Sprintf("%s", s)
		entries = append(entries, msgarchive.Entry{TextID: uint16(i + 1), Buffer: b})
	}
	defer msgarchive.Release(entries)

	m := newBrowserModel(entries, modePrint)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	require.Contains(t, m.View(), "> 0x0001")
	require.Contains(t, m.View(), `"one"`)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.selected)
	require.Contains(t, m.View(), `"three"`)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, m.selected)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, modeFull, m.mode)
	require.Contains(t, m.View(), "full")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
