package term

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/richtext/styled"
)

func sample(t *testing.T) *styled.Text {
	t.Helper()
	txt := styled.New("Hi there\n\tcode  here")
	if err := txt.BoldRange(0, 1); err != nil {
		t.Fatalf("BoldRange: %v", err)
	}
	if err := txt.CodeRange(10, 13); err != nil {
		t.Fatalf("CodeRange: %v", err)
	}
	if err := txt.UnderlineRange(5, 12); err != nil {
		t.Fatalf("UnderlineRange: %v", err)
	}
	return txt
}

func TestRender_AsciiProfileIsPlain(t *testing.T) {
	txt := sample(t)
	r := NewRenderer(termenv.Ascii, DefaultTheme())

	if got, want := r.Render(txt), txt.String(); got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_ANSIStripsToContent(t *testing.T) {
	txt := sample(t)
	r := NewRenderer(termenv.ANSI256, DefaultTheme())

	out := r.Render(txt)
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected escape sequences in %q", out)
	}
	if got, want := ansi.Strip(out), txt.String(); got != want {
		t.Fatalf("stripped=%q, want %q", got, want)
	}
	if r.Profile() != termenv.ANSI256 {
		t.Fatalf("profile=%v, want ANSI256", r.Profile())
	}
}

func TestRender_UnstyledTextHasNoEscapes(t *testing.T) {
	r := NewRenderer(termenv.ANSI256, DefaultTheme())
	if got, want := r.Render(styled.New("plain\ttext")), "plain\ttext"; got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRender_UnknownStyleIsPlain(t *testing.T) {
	txt := styled.New("abc")
	if err := txt.SetStyleRange("mystery", 0, 2); err != nil {
		t.Fatalf("SetStyleRange: %v", err)
	}

	r := NewRenderer(termenv.ANSI256, DefaultTheme())
	if got := r.Render(txt); got != "abc" {
		t.Fatalf("render=%q, want plain", got)
	}

	themed := NewRenderer(termenv.ANSI256, DefaultTheme().With("mystery", lipgloss.NewStyle().Reverse(true)))
	out := themed.Render(txt)
	if out == "abc" || ansi.Strip(out) != "abc" {
		t.Fatalf("themed render=%q", out)
	}
}

func TestTheme_WithCopies(t *testing.T) {
	base := DefaultTheme()
	_ = base.With("extra", lipgloss.NewStyle())
	if _, ok := base["extra"]; ok {
		t.Fatalf("With must not modify the receiver")
	}
}
