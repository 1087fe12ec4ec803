// Package term renders a styled.Text for ANSI terminals.
//
// Each run of bytes with one style set is drawn with the lipgloss style built
// from the Theme entries of its styles. Styles missing from the Theme are drawn
// plain. Stripping the escape sequences from the output yields the content.
package term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/richtext/styled"
)

// Theme maps style names to the lipgloss style that draws them.
type Theme map[styled.Style]lipgloss.Style

func DefaultTheme() Theme {
	return Theme{
		styled.Bold:        lipgloss.NewStyle().Bold(true),
		styled.Italic:      lipgloss.NewStyle().Italic(true),
		styled.Underline:   lipgloss.NewStyle().Underline(true),
		styled.Strike:      lipgloss.NewStyle().Strikethrough(true),
		styled.Code:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
		styled.Subscript:   lipgloss.NewStyle().Foreground(lipgloss.Color("146")).Faint(true),
		styled.Superscript: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	}
}

// With returns a copy of th that also draws name with s.
func (th Theme) With(name styled.Style, s lipgloss.Style) Theme {
	out := make(Theme, len(th)+1)
	for k, v := range th {
		out[k] = v
	}
	out[name] = s
	return out
}

type Renderer struct {
	lg    *lipgloss.Renderer
	theme Theme
}

// NewRenderer renders with a fixed colour profile, independent of any
// terminal. termenv.Ascii disables styling altogether.
func NewRenderer(profile termenv.Profile, theme Theme) *Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(profile)
	return &Renderer{lg: lg, theme: theme}
}

// NewRendererFor detects the colour profile of w.
func NewRendererFor(w io.Writer, theme Theme) *Renderer {
	return &Renderer{lg: lipgloss.NewRenderer(w), theme: theme}
}

func (r *Renderer) Profile() termenv.Profile { return r.lg.ColorProfile() }

func (r *Renderer) Render(t *styled.Text) string {
	var sb strings.Builder
	for _, seg := range t.Segments() {
		style, ok := r.styleFor(seg.Styles)
		// lipgloss pads multi-line input to a common width, so lines are
		// rendered one at a time.
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line == "" {
				continue
			}
			if !ok {
				sb.WriteString(line)
				continue
			}
			sb.WriteString(style.Render(line))
		}
	}
	return sb.String()
}

func (r *Renderer) styleFor(names []styled.Style) (lipgloss.Style, bool) {
	style := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	found := false
	for _, name := range names {
		s, ok := r.theme[name]
		if !ok {
			continue
		}
		style = style.Inherit(s)
		found = true
	}
	return style, found
}
