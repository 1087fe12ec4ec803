// Package viewer is a small read-only pager for rendered richtext output.
package viewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// KeyMap defines the pager key bindings. Scrolling keys are handled by the
// embedded viewport.
type KeyMap struct {
	Quit        key.Binding
	Top, Bottom key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

type Config struct {
	Title string
	// Content is already rendered; ANSI sequences pass through untouched.
	Content    string
	KeyMap     KeyMap
	TitleStyle lipgloss.Style
}

func DefaultConfig() Config {
	return Config{
		KeyMap:     DefaultKeyMap(),
		TitleStyle: lipgloss.NewStyle().Bold(true).Reverse(true),
	}
}

type Model struct {
	cfg   Config
	vp    viewport.Model
	ready bool
	width int
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{cfg: cfg}
}

func (m Model) Init() tea.Cmd { return nil }

// Ready reports whether the first window size has been received.
func (m Model) Ready() bool { return m.ready }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - 1
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, h)
			m.vp.SetContent(m.cfg.Content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = h
		}
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.cfg.KeyMap.Quit):
			return m, tea.Quit
		case !m.ready:
			return m, nil
		case key.Matches(msg, m.cfg.KeyMap.Top):
			m.vp.GotoTop()
			return m, nil
		case key.Matches(msg, m.cfg.KeyMap.Bottom):
			m.vp.GotoBottom()
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return m.header() + "\n" + m.vp.View()
}

func (m Model) header() string {
	pct := fmt.Sprintf(" %3.f%%", m.vp.ScrollPercent()*100)
	avail := m.width - runewidth.StringWidth(pct)
	if avail < 0 {
		avail = 0
	}
	title := runewidth.Truncate(m.cfg.Title, avail, "…")
	title = runewidth.FillRight(title, avail)
	return m.cfg.TitleStyle.Render(title) + pct
}

// Run shows cfg in a full-screen pager until the user quits.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	_, err := tea.NewProgram(New(cfg), opts...).Run()
	return err
}
