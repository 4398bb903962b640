package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kolamstudio/kolam/pkg/kolam"
)

func press(t *testing.T, m ArchetypeListModel, keys ...tea.KeyMsg) (ArchetypeListModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(ArchetypeListModel)
	}
	return m, cmd
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyJ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestArchetypeListNavigation(t *testing.T) {
	m := NewArchetypeListModel()
	if len(m.Archetypes) != len(kolam.Archetypes()) {
		t.Fatalf("got %d archetypes, want %d", len(m.Archetypes), len(kolam.Archetypes()))
	}

	m, _ = press(t, m, keyUp)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top, want 0", m.Cursor)
	}

	m, _ = press(t, m, keyDown, keyJ)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}

	for range m.Archetypes {
		m, _ = press(t, m, keyDown)
	}
	if m.Cursor != len(m.Archetypes)-1 {
		t.Errorf("Cursor = %d, want clamped to %d", m.Cursor, len(m.Archetypes)-1)
	}
}

func TestArchetypeListSelect(t *testing.T) {
	m, cmd := press(t, NewArchetypeListModel(), keyDown, keyEnter)
	if m.Selected == nil || *m.Selected != m.Archetypes[1] {
		t.Fatalf("Selected = %v, want %s", m.Selected, m.Archetypes[1])
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestArchetypeListQuit(t *testing.T) {
	m, cmd := press(t, NewArchetypeListModel(), keyQ)
	if m.Selected != nil {
		t.Errorf("Selected = %v after quit, want nil", *m.Selected)
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestArchetypeListView(t *testing.T) {
	m, _ := press(t, NewArchetypeListModel(), keyDown)
	view := m.View()
	for _, a := range m.Archetypes {
		if !strings.Contains(view, string(a)) {
			t.Errorf("view missing %s", a)
		}
	}
	if !strings.Contains(view, "▸ "+string(m.Archetypes[1])) {
		t.Error("view does not mark the cursor row")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Errorf("wrap() = %q", got)
	}
	if wrap("", 10) != "" {
		t.Error("wrap of empty string should be empty")
	}
}
