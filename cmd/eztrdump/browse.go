package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rawbytedev/eztr/pkg/msgarchive"
)

// listRows is the number of text ids shown above the message.
const listRows = 8

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Mode key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	Mode: key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "mode")),
	Quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Up, k.Down, k.Mode, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ") + " • pgup/pgdn scroll"
}

type browserModel struct {
	entries  []msgarchive.Entry
	selected int
	mode     printMode
	view     viewport.Model
	ready    bool
}

func newBrowserModel(entries []msgarchive.Entry, mode printMode) *browserModel {
	return &browserModel{entries: entries, mode: mode}
}

func (m *browserModel) Init() tea.Cmd { return nil }

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, list, blank line and help
		h := max(msg.Height-listRows-4, 1)
		if !m.ready {
			m.view = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.view.Width, m.view.Height = msg.Width, h
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, keys.Mode):
			m.mode = m.mode.next()
			m.refresh()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *browserModel) refresh() {
	if !m.ready || len(m.entries) == 0 {
		return
	}
	m.view.SetContent(m.mode.render(m.entries[m.selected]))
	m.view.GotoTop()
}

func (m *browserModel) View() string {
	if len(m.entries) == 0 {
		return errorStyle.Render("No messages.\n\nPress q to quit.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("EZTR messages"))
	fmt.Fprintf(&b, " %d messages, %s\n", len(m.entries), m.mode)

	first := min(max(m.selected-listRows/2, 0), max(len(m.entries)-listRows, 0))
	for i := first; i < min(first+listRows, len(m.entries)); i++ {
		line := title(m.entries[i])
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + idStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.ready {
		b.WriteString(m.view.View())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(keys.help()))
	return b.String()
}

func runBrowser(entries []msgarchive.Entry, mode printMode) error {
	p := tea.NewProgram(newBrowserModel(entries, mode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
