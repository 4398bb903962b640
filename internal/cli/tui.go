package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ArchetypeListModel - Interactive archetype selection
// =============================================================================

// ArchetypeListModel is the bubbletea model for interactive archetype selection.
type ArchetypeListModel struct {
	Archetypes []kolam.Archetype
	Cursor     int
	Selected   *kolam.Archetype
}

// NewArchetypeListModel creates a list over every supported archetype.
func NewArchetypeListModel() ArchetypeListModel {
	return ArchetypeListModel{Archetypes: kolam.Archetypes()}
}

func (m ArchetypeListModel) Init() tea.Cmd {
	return nil
}

func (m ArchetypeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Archetypes)-1 {
				m.Cursor++
			}
		case "enter":
			a := m.Archetypes[m.Cursor]
			m.Selected = &a
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ArchetypeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Archetype"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, a := range m.Archetypes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, a, listDimStyle.Render(a.Element()))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(strings.Repeat("-", 40)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(wrap(m.Archetypes[m.Cursor].Note(), 60)))
	b.WriteString("\n")

	return b.String()
}

// pickArchetype runs the picker. ok is false when the user quits without
// choosing.
func pickArchetype() (kolam.Archetype, bool, error) {
	final, err := tea.NewProgram(NewArchetypeListModel()).Run()
	if err != nil {
		return "", false, fmt.Errorf("archetype picker: %w", err)
	}
	m, ok := final.(ArchetypeListModel)
	if !ok || m.Selected == nil {
		return "", false, nil
	}
	return *m.Selected, true, nil
}

// =============================================================================
// Helpers
// =============================================================================

// wrap breaks s on spaces so no line exceeds width runes where possible.
func wrap(s string, width int) string {
	var b strings.Builder
	n := 0
	for i, w := range strings.Fields(s) {
		if i > 0 {
			if n+1+len([]rune(w)) > width {
				b.WriteString("\n")
				n = 0
			} else {
				b.WriteString(" ")
				n++
			}
		}
		b.WriteString(w)
		n += len([]rune(w))
	}
	return b.String()
}
