package viewer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func cfgWith(title, content string) Config {
	cfg := DefaultConfig()
	cfg.Title = title
	cfg.Content = content
	return cfg
}

func sized(m Model, w, h int) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func TestModel_QuitKey(t *testing.T) {
	m := New(cfgWith("t", "hello"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_ViewEmptyUntilSized(t *testing.T) {
	m := New(cfgWith("t", "hello"))
	if m.Ready() || m.View() != "" {
		t.Fatalf("unsized model must render nothing")
	}
	m = sized(m, 20, 5)
	if !m.Ready() {
		t.Fatalf("expected ready after WindowSizeMsg")
	}
	if !strings.Contains(ansi.Strip(m.View()), "hello") {
		t.Fatalf("view=%q", m.View())
	}
}

func TestModel_HeaderTruncatesTitle(t *testing.T) {
	m := New(Config{
		Title:      "a very long title that cannot fit",
		Content:    "x",
		TitleStyle: lipgloss.NewStyle().Bold(true),
	})
	m = sized(m, 16, 4)

	head := ansi.Strip(strings.SplitN(m.View(), "\n", 2)[0])
	if w := lipgloss.Width(head); w != 16 {
		t.Fatalf("header width=%d, want 16: %q", w, head)
	}
	if !strings.Contains(head, "…") {
		t.Fatalf("expected ellipsis in %q", head)
	}
}

func TestModel_TopBottom(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	m := sized(New(cfgWith("", strings.Join(lines, "\n"))), 10, 6)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	m = next.(Model)
	if !m.vp.AtBottom() {
		t.Fatalf("expected bottom after G")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(Model)
	if !m.vp.AtTop() {
		t.Fatalf("expected top after g")
	}
}
