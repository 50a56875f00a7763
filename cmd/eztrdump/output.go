package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rawbytedev/eztr/pkg/msgarchive"
)

type printMode int

const (
	modePrint printMode = iota
	modeFull
	modeCCode
	modeFullCCode
)

var modeNames = [...]string{"print", "full", "ccode", "full-ccode"}

func (m printMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func parseMode(s string) (printMode, error) {
	for i, name := range modeNames {
		if name == s {
			return printMode(i), nil
		}
	}
	return modePrint, fmt.Errorf("unknown mode %q", s)
}

func (m printMode) next() printMode {
	return (m + 1) % printMode(len(modeNames))
}

func (m printMode) write(w io.Writer, e msgarchive.Entry) error {
	switch m {
	case modeFull:
		return e.Buffer.PrintFull(w)
	case modeCCode:
		return e.Buffer.PrintCCode(w, e.TextID)
	case modeFullCCode:
		return e.Buffer.PrintFullCCode(w, e.TextID)
	}
	return e.Buffer.Print(w)
}

func (m printMode) render(e msgarchive.Entry) string {
	var b bytes.Buffer
	if err := m.write(&b, e); err != nil {
		return errorStyle.Render(err.Error())
	}
	return b.String()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func title(e msgarchive.Entry) string {
	return fmt.Sprintf("0x%04X (%d bytes)", e.TextID, e.Buffer.Len())
}

// writeEntries prints every entry under a title line, styled when color is
// set.
func writeEntries(w io.Writer, entries []msgarchive.Entry, mode printMode, color bool) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		t := title(e)
		if color {
			t = titleStyle.Render(t)
		}
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
		if err := mode.write(w, e); err != nil {
			return err
		}
	}
	return nil
}
