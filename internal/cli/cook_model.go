package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mise/internal/cli/formatter"
	"github.com/alexanderramin/mise/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// cookKeyMap binds the cook walker's controls.
type cookKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Done key.Binding
	Quit key.Binding
}

func defaultCookKeyMap() cookKeyMap {
	return cookKeyMap{
		Next: key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→", "next")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←", "back")),
		Done: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "done, next")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// cookModel walks through a manifest's prep steps one at a time. Completion
// is tracked by step id, which stays stable across rebuilds of the same
// manifest.
type cookModel struct {
	manifest *domain.PrepManifest
	steps    []domain.PrepStep
	keys     cookKeyMap

	cursor int
	done   map[string]bool
}

func newCookModel(manifest *domain.PrepManifest, steps []domain.PrepStep) *cookModel {
	return &cookModel{
		manifest: manifest,
		steps:    steps,
		keys:     defaultCookKeyMap(),
		done:     make(map[string]bool, len(steps)),
	}
}

func (m *cookModel) Init() tea.Cmd { return nil }

func (m *cookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Next):
		if m.cursor < len(m.steps)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Prev):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Done):
		if len(m.steps) == 0 {
			return m, tea.Quit
		}
		m.done[m.steps[m.cursor].ID] = true
		if m.allDone() {
			return m, tea.Quit
		}
		if m.cursor < len(m.steps)-1 {
			m.cursor++
		}
	}

	return m, nil
}

func (m *cookModel) allDone() bool {
	for _, s := range m.steps {
		if !m.done[s.ID] {
			return false
		}
	}
	return true
}

func (m *cookModel) doneCount() int {
	n := 0
	for _, s := range m.steps {
		if m.done[s.ID] {
			n++
		}
	}
	return n
}

func (m *cookModel) View() string {
	var b strings.Builder

	b.WriteString("\n" + formatter.Header("Cook mode") + "\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%d of %d steps done", m.doneCount(), len(m.steps))) + "\n\n")

	for i, step := range m.steps {
		mark := formatter.StyleDim.Render("○")
		text := step.Text
		if m.done[step.ID] {
			mark = formatter.StyleGreen.Render("●")
			text = formatter.Dim(text)
		}
		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			text = formatter.Bold(step.Text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, text))
	}

	b.WriteString("\n" + formatter.Dim("enter: done · ←/→: move · q: quit") + "\n")
	return b.String()
}
